package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// TicketRepository is the lookup surface the booking service needs
// from ticket storage.
type TicketRepository interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID uint64) (*TicketWithType, error)
}

// TicketWithType is the composed read model for a ticket joined with
// its ticket type. The eligibility rules read the type's flags, so the
// two rows are always fetched together.
type TicketWithType struct {
	model.Ticket
	Type model.TicketType
}

// TicketRepo provides access to the tickets and ticket_types tables.
type TicketRepo struct{ DB *sql.DB }

func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{DB: db} }

// FindByEnrollmentID returns the ticket belonging to the enrollment,
// joined with its type, or sql.ErrNoRows when none exists.
func (r *TicketRepo) FindByEnrollmentID(ctx context.Context, enrollmentID uint64) (*TicketWithType, error) {
	const q = `SELECT t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
	                  tt.id, tt.name, tt.price_cents, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at
	           FROM tickets t
	           JOIN ticket_types tt ON tt.id = t.ticket_type_id
	           WHERE t.enrollment_id = ?
	           LIMIT 1`
	var tw TicketWithType
	err := r.DB.QueryRowContext(ctx, q, enrollmentID).Scan(
		&tw.ID, &tw.EnrollmentID, &tw.TicketTypeID, &tw.Status, &tw.CreatedAt, &tw.UpdatedAt,
		&tw.Type.ID, &tw.Type.Name, &tw.Type.PriceCents, &tw.Type.IsRemote, &tw.Type.IncludesHotel,
		&tw.Type.CreatedAt, &tw.Type.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tw, nil
}

// ListTypes returns all ticket types ordered by id.
func (r *TicketRepo) ListTypes(ctx context.Context) ([]model.TicketType, error) {
	const q = `SELECT id, name, price_cents, is_remote, includes_hotel, created_at, updated_at
	           FROM ticket_types ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	types := make([]model.TicketType, 0)
	for rows.Next() {
		var tt model.TicketType
		if err := rows.Scan(&tt.ID, &tt.Name, &tt.PriceCents, &tt.IsRemote, &tt.IncludesHotel,
			&tt.CreatedAt, &tt.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, tt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return types, nil
}

// GetType returns a single ticket type by id, or sql.ErrNoRows.
func (r *TicketRepo) GetType(ctx context.Context, id uint64) (*model.TicketType, error) {
	const q = `SELECT id, name, price_cents, is_remote, includes_hotel, created_at, updated_at
	           FROM ticket_types WHERE id = ?`
	var tt model.TicketType
	err := r.DB.QueryRowContext(ctx, q, id).Scan(
		&tt.ID, &tt.Name, &tt.PriceCents, &tt.IsRemote, &tt.IncludesHotel, &tt.CreatedAt, &tt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tt, nil
}

// Create inserts a RESERVED ticket for the enrollment and returns the
// stored row joined with its type.
func (r *TicketRepo) Create(ctx context.Context, enrollmentID, ticketTypeID uint64) (*TicketWithType, error) {
	const ins = `INSERT INTO tickets (enrollment_id, ticket_type_id, status) VALUES (?,?,?)`
	res, err := r.DB.ExecContext(ctx, ins, enrollmentID, ticketTypeID, model.TicketStatusReserved)
	if err != nil {
		return nil, err
	}
	if _, err := res.LastInsertId(); err != nil {
		return nil, err
	}
	return r.FindByEnrollmentID(ctx, enrollmentID)
}
