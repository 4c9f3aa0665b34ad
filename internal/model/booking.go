package model

import "time"

// Booking links a user to the room they occupy. A user holds at most
// one active booking; lookups retrieve the first booking for the user.
// Bookings are never deleted, only reassigned to another room.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – user who made the booking.
//  RoomID    – room currently assigned.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Booking struct {
	ID        uint64    // bookings.id
	UserID    uint64    // bookings.user_id
	RoomID    uint64    // bookings.room_id
	CreatedAt time.Time // bookings.created_at
	UpdatedAt time.Time // bookings.updated_at
}
