package model

import "time"

// Hotel represents a partner hotel offered to event attendees. A
// hotel contains multiple rooms. This struct corresponds to a row in
// the `hotels` table.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – hotel name.
//  Image     – URL of the hotel's cover image.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Hotel struct {
	ID        uint64    // hotels.id
	Name      string    // hotels.name
	Image     string    // hotels.image
	CreatedAt time.Time // hotels.created_at
	UpdatedAt time.Time // hotels.updated_at
}

// Room is a bookable room inside a hotel. Capacity is fixed when the
// room is created; occupancy is derived from the count of bookings
// referencing the room and is never stored.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – room name or number.
//  Capacity  – maximum number of guests (positive).
//  HotelID   – hotel the room belongs to.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Room struct {
	ID        uint64    // rooms.id
	Name      string    // rooms.name
	Capacity  uint32    // rooms.capacity
	HotelID   uint64    // rooms.hotel_id
	CreatedAt time.Time // rooms.created_at
	UpdatedAt time.Time // rooms.updated_at
}
