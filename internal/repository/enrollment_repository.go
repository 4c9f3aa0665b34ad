package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// EnrollmentRepository is the lookup surface the booking service needs
// from enrollment storage.
type EnrollmentRepository interface {
	FindByUserID(ctx context.Context, userID uint64) (*model.Enrollment, error)
}

// EnrollmentRepo provides access to the enrollments table. Each user
// has at most one enrollment (unique key on user_id).
type EnrollmentRepo struct{ DB *sql.DB }

func NewEnrollmentRepo(db *sql.DB) *EnrollmentRepo { return &EnrollmentRepo{DB: db} }

const enrollmentCols = "id, user_id, name, cpf, birthday, phone, street, city, state, post_code, created_at, updated_at"

// FindByUserID returns the enrollment owned by the user, or
// sql.ErrNoRows when the user has not enrolled.
func (r *EnrollmentRepo) FindByUserID(ctx context.Context, userID uint64) (*model.Enrollment, error) {
	const q = "SELECT " + enrollmentCols + " FROM enrollments WHERE user_id=? LIMIT 1"
	var e model.Enrollment
	err := r.DB.QueryRowContext(ctx, q, userID).Scan(
		&e.ID, &e.UserID, &e.Name, &e.CPF, &e.Birthday, &e.Phone,
		&e.Street, &e.City, &e.State, &e.PostCode, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Upsert creates the user's enrollment or replaces its fields when one
// already exists. The generated or existing ID is written back to the
// provided record.
func (r *EnrollmentRepo) Upsert(ctx context.Context, e *model.Enrollment) error {
	const q = `INSERT INTO enrollments (user_id, name, cpf, birthday, phone, street, city, state, post_code)
	           VALUES (?,?,?,?,?,?,?,?,?)
	           ON DUPLICATE KEY UPDATE
	             name=VALUES(name), cpf=VALUES(cpf), birthday=VALUES(birthday), phone=VALUES(phone),
	             street=VALUES(street), city=VALUES(city), state=VALUES(state), post_code=VALUES(post_code)`
	if _, err := r.DB.ExecContext(ctx, q,
		e.UserID, e.Name, e.CPF, e.Birthday, e.Phone, e.Street, e.City, e.State, e.PostCode,
	); err != nil {
		return err
	}
	// LastInsertId is unreliable for ON DUPLICATE KEY UPDATE, so query
	// the row back to populate the ID and timestamps.
	stored, err := r.FindByUserID(ctx, e.UserID)
	if err != nil {
		return err
	}
	*e = *stored
	return nil
}
