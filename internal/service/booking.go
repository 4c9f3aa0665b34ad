package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/event-hotel-booking/internal/model"
	"github.com/iliyamo/event-hotel-booking/internal/repository"
)

// BookingService orchestrates the get/create/update booking
// operations. Every method takes the already-authenticated user id as
// its first argument; authentication itself happens in middleware.
//
// Capacity verification and the booking write are separate statements
// with no surrounding transaction, so two concurrent creates against
// the last free spot in a room can both pass the check and over-book
// it. This check-then-act window is a known limitation.
type BookingService struct {
	bookings    repository.BookingRepository
	rooms       repository.RoomRepository
	enrollments repository.EnrollmentRepository
	tickets     repository.TicketRepository
}

// NewBookingService constructs a BookingService with its repositories.
func NewBookingService(
	bookings repository.BookingRepository,
	rooms repository.RoomRepository,
	enrollments repository.EnrollmentRepository,
	tickets repository.TicketRepository,
) *BookingService {
	if bookings == nil || rooms == nil || enrollments == nil || tickets == nil {
		panic("nil repository passed to NewBookingService")
	}
	return &BookingService{
		bookings:    bookings,
		rooms:       rooms,
		enrollments: enrollments,
		tickets:     tickets,
	}
}

// GetBooking returns the user's booking with its room. The projection
// exposes only the booking id and the full room record; the booking's
// own user id, room id and timestamps are stripped. Returns
// ErrNotFound when the user has no booking.
func (s *BookingService) GetBooking(ctx context.Context, userID uint64) (*repository.BookingDetail, error) {
	booking, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}

// CreateBooking books a room for the user. Ticket eligibility is
// verified first, then room capacity, so an ineligible ticket is
// reported before any problem with the room. Returns the new booking
// id.
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID uint64) (uint64, error) {
	if err := s.verifyEligibility(ctx, userID); err != nil {
		return 0, err
	}
	if err := s.verifyRoomAvailable(ctx, roomID); err != nil {
		return 0, err
	}
	return s.bookings.Create(ctx, userID, roomID)
}

// UpdateBooking moves a booking to another room. The user must hold
// some booking (ErrNotFound otherwise) and the target room must have
// vacancy; ticket eligibility is not re-checked on update. The row
// mutated is the one identified by bookingID as supplied by the
// caller; its ownership is not verified against userID.
func (s *BookingService) UpdateBooking(ctx context.Context, userID, roomID, bookingID uint64) (uint64, error) {
	if _, err := s.bookings.FindByUserID(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	if err := s.verifyRoomAvailable(ctx, roomID); err != nil {
		return 0, err
	}
	if err := s.bookings.UpdateRoom(ctx, bookingID, roomID); err != nil {
		return 0, err
	}
	return bookingID, nil
}

// verifyEligibility checks that the user holds a paid, in-person,
// hotel-inclusive ticket. A missing enrollment is ErrNotFound; a
// missing or disqualifying ticket is ErrForbidden. Pure read-and-
// decide, no side effects.
func (s *BookingService) verifyEligibility(ctx context.Context, userID uint64) error {
	enrollment, err := s.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	ticket, err := s.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrForbidden
		}
		return err
	}
	if ticket.Status == model.TicketStatusReserved || ticket.Type.IsRemote || !ticket.Type.IncludesHotel {
		return ErrForbidden
	}
	return nil
}

// verifyRoomAvailable checks that the room exists and has a free spot.
// The comparison is a strict equality against capacity, mirroring the
// occupancy invariant: bookings only ever raise occupancy up to
// capacity, never past it.
func (s *BookingService) verifyRoomAvailable(ctx context.Context, roomID uint64) error {
	room, err := s.rooms.FindWithOccupancy(ctx, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if room.Occupancy == room.Capacity {
		return ErrForbidden
	}
	return nil
}
