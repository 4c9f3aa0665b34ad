package repository

import (
	"context"
	"database/sql"
	"time"
)

// RoomRepository is the lookup surface the booking service needs from
// room storage.
type RoomRepository interface {
	FindWithOccupancy(ctx context.Context, roomID uint64) (*RoomWithOccupancy, error)
}

// RoomInfo mirrors a rooms row in API responses. Room records are
// returned whole, timestamps included, inside hotel and booking
// payloads.
type RoomInfo struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Capacity  uint32    `json:"capacity"`
	HotelID   uint64    `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomWithOccupancy composes a room row with the current count of
// bookings referencing it. Occupancy is computed at read time; it is
// never stored.
type RoomWithOccupancy struct {
	RoomInfo
	Occupancy uint32
}

// RoomRepo provides read access to the rooms table.
type RoomRepo struct{ DB *sql.DB }

func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{DB: db} }

// FindWithOccupancy returns the room and the number of bookings
// currently referencing it, or sql.ErrNoRows when the room does not
// exist.
func (r *RoomRepo) FindWithOccupancy(ctx context.Context, roomID uint64) (*RoomWithOccupancy, error) {
	const q = `SELECT r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at,
	                  COUNT(b.id)
	           FROM rooms r
	           LEFT JOIN bookings b ON b.room_id = r.id
	           WHERE r.id = ?
	           GROUP BY r.id`
	var ro RoomWithOccupancy
	err := r.DB.QueryRowContext(ctx, q, roomID).Scan(
		&ro.ID, &ro.Name, &ro.Capacity, &ro.HotelID, &ro.CreatedAt, &ro.UpdatedAt,
		&ro.Occupancy,
	)
	if err != nil {
		return nil, err
	}
	return &ro, nil
}
