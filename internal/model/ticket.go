package model

import "time"

// Ticket status values as stored in the tickets.status enum column.
// A ticket starts out RESERVED when created and becomes PAID once the
// payment is settled by an external process.
const (
	TicketStatusReserved = "RESERVED"
	TicketStatusPaid     = "PAID"
)

// TicketType is a category of event ticket. The IsRemote and
// IncludesHotel flags gate hotel booking eligibility: only holders of
// an in-person, hotel-inclusive ticket may book a room.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – display name of the ticket type.
//  PriceCents    – ticket price in cents.
//  IsRemote      – true when the ticket is for remote attendance.
//  IncludesHotel – true when the ticket entitles the holder to
//                  hotel accommodation.
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type TicketType struct {
	ID            uint64    // ticket_types.id
	Name          string    // ticket_types.name
	PriceCents    uint32    // ticket_types.price_cents
	IsRemote      bool      // ticket_types.is_remote
	IncludesHotel bool      // ticket_types.includes_hotel
	CreatedAt     time.Time // ticket_types.created_at
	UpdatedAt     time.Time // ticket_types.updated_at
}

// Ticket belongs to an enrollment and references a ticket type.
//
// Fields:
//  ID           – primary key identifier.
//  EnrollmentID – enrollment owning the ticket.
//  TicketTypeID – type of the ticket.
//  Status       – RESERVED or PAID.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type Ticket struct {
	ID           uint64    // tickets.id
	EnrollmentID uint64    // tickets.enrollment_id
	TicketTypeID uint64    // tickets.ticket_type_id
	Status       string    // tickets.status
	CreatedAt    time.Time // tickets.created_at
	UpdatedAt    time.Time // tickets.updated_at
}
