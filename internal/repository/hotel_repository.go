package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// HotelWithRooms composes a hotel row with all of its rooms. It is
// returned by GetWithRooms for the hotel detail endpoint.
type HotelWithRooms struct {
	ID    uint64     `json:"id"`
	Name  string     `json:"name"`
	Image string     `json:"image"`
	Rooms []RoomInfo `json:"rooms"`
}

// HotelRepo provides read access to the hotels and rooms tables.
type HotelRepo struct{ DB *sql.DB }

func NewHotelRepo(db *sql.DB) *HotelRepo { return &HotelRepo{DB: db} }

// List returns all hotels ordered by id.
func (r *HotelRepo) List(ctx context.Context) ([]model.Hotel, error) {
	const q = `SELECT id, name, image, created_at, updated_at FROM hotels ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	hotels := make([]model.Hotel, 0)
	for rows.Next() {
		var h model.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Image, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return hotels, nil
}

// GetWithRooms returns a hotel and its rooms, or sql.ErrNoRows when
// the hotel does not exist. A hotel with no rooms yields an empty
// rooms slice, not an error.
func (r *HotelRepo) GetWithRooms(ctx context.Context, hotelID uint64) (*HotelWithRooms, error) {
	const q = `SELECT id, name, image FROM hotels WHERE id = ?`
	var h HotelWithRooms
	if err := r.DB.QueryRowContext(ctx, q, hotelID).Scan(&h.ID, &h.Name, &h.Image); err != nil {
		return nil, err
	}
	const roomQ = `SELECT id, name, capacity, hotel_id, created_at, updated_at
	               FROM rooms WHERE hotel_id = ? ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, roomQ, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	h.Rooms = make([]RoomInfo, 0)
	for rows.Next() {
		var ri RoomInfo
		if err := rows.Scan(&ri.ID, &ri.Name, &ri.Capacity, &ri.HotelID, &ri.CreatedAt, &ri.UpdatedAt); err != nil {
			return nil, err
		}
		h.Rooms = append(h.Rooms, ri)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &h, nil
}
