package repository

import (
	"context"
	"database/sql"
)

// BookingRepository is the persistence surface the booking service
// composes. Absent rows are reported as sql.ErrNoRows.
type BookingRepository interface {
	FindByUserID(ctx context.Context, userID uint64) (*BookingDetail, error)
	FindByID(ctx context.Context, bookingID, userID uint64) (*BookingDetail, error)
	Create(ctx context.Context, userID, roomID uint64) (uint64, error)
	UpdateRoom(ctx context.Context, bookingID, roomID uint64) error
}

// BookingDetail is the composed read model for a booking joined with
// its room. Only the booking id is exposed at the top level; the
// booking's own user id, room id and timestamps are internal and never
// serialized.
type BookingDetail struct {
	ID   uint64   `json:"id"`
	Room RoomInfo `json:"room"`
}

// BookingRepo provides access to the bookings table.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

const bookingWithRoomQ = `SELECT b.id,
                                 r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
                          FROM bookings b
                          JOIN rooms r ON r.id = b.room_id`

// FindByUserID returns the first booking owned by the user, joined
// with its room, or sql.ErrNoRows when the user has none.
func (r *BookingRepo) FindByUserID(ctx context.Context, userID uint64) (*BookingDetail, error) {
	const q = bookingWithRoomQ + ` WHERE b.user_id = ? ORDER BY b.id LIMIT 1`
	var d BookingDetail
	err := r.DB.QueryRowContext(ctx, q, userID).Scan(
		&d.ID,
		&d.Room.ID, &d.Room.Name, &d.Room.Capacity, &d.Room.HotelID, &d.Room.CreatedAt, &d.Room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// FindByID returns a booking by id restricted to the given owner,
// joined with its room, or sql.ErrNoRows.
func (r *BookingRepo) FindByID(ctx context.Context, bookingID, userID uint64) (*BookingDetail, error) {
	const q = bookingWithRoomQ + ` WHERE b.id = ? AND b.user_id = ? LIMIT 1`
	var d BookingDetail
	err := r.DB.QueryRowContext(ctx, q, bookingID, userID).Scan(
		&d.ID,
		&d.Room.ID, &d.Room.Name, &d.Room.Capacity, &d.Room.HotelID, &d.Room.CreatedAt, &d.Room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a booking linking the user to the room and returns
// the generated booking id.
func (r *BookingRepo) Create(ctx context.Context, userID, roomID uint64) (uint64, error) {
	const q = `INSERT INTO bookings (user_id, room_id) VALUES (?,?)`
	res, err := r.DB.ExecContext(ctx, q, userID, roomID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// UpdateRoom reassigns the booking identified by bookingID to roomID.
func (r *BookingRepo) UpdateRoom(ctx context.Context, bookingID, roomID uint64) error {
	const q = `UPDATE bookings SET room_id = ? WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, q, roomID, bookingID)
	return err
}
