package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/iliyamo/event-hotel-booking/internal/model"
	"github.com/iliyamo/event-hotel-booking/internal/repository"
)

// Mock repositories with injectable behavior per test.

type mockBookingRepo struct {
	findByUserID func(ctx context.Context, userID uint64) (*repository.BookingDetail, error)
	findByID     func(ctx context.Context, bookingID, userID uint64) (*repository.BookingDetail, error)
	create       func(ctx context.Context, userID, roomID uint64) (uint64, error)
	updateRoom   func(ctx context.Context, bookingID, roomID uint64) error
}

func (m *mockBookingRepo) FindByUserID(ctx context.Context, userID uint64) (*repository.BookingDetail, error) {
	return m.findByUserID(ctx, userID)
}
func (m *mockBookingRepo) FindByID(ctx context.Context, bookingID, userID uint64) (*repository.BookingDetail, error) {
	return m.findByID(ctx, bookingID, userID)
}
func (m *mockBookingRepo) Create(ctx context.Context, userID, roomID uint64) (uint64, error) {
	return m.create(ctx, userID, roomID)
}
func (m *mockBookingRepo) UpdateRoom(ctx context.Context, bookingID, roomID uint64) error {
	return m.updateRoom(ctx, bookingID, roomID)
}

type mockRoomRepo struct {
	findWithOccupancy func(ctx context.Context, roomID uint64) (*repository.RoomWithOccupancy, error)
}

func (m *mockRoomRepo) FindWithOccupancy(ctx context.Context, roomID uint64) (*repository.RoomWithOccupancy, error) {
	return m.findWithOccupancy(ctx, roomID)
}

type mockEnrollmentRepo struct {
	findByUserID func(ctx context.Context, userID uint64) (*model.Enrollment, error)
}

func (m *mockEnrollmentRepo) FindByUserID(ctx context.Context, userID uint64) (*model.Enrollment, error) {
	return m.findByUserID(ctx, userID)
}

type mockTicketRepo struct {
	findByEnrollmentID func(ctx context.Context, enrollmentID uint64) (*repository.TicketWithType, error)
}

func (m *mockTicketRepo) FindByEnrollmentID(ctx context.Context, enrollmentID uint64) (*repository.TicketWithType, error) {
	return m.findByEnrollmentID(ctx, enrollmentID)
}

// Fixture helpers.

func eligibleTicket() *repository.TicketWithType {
	t := &repository.TicketWithType{}
	t.ID = 7
	t.EnrollmentID = 3
	t.Status = model.TicketStatusPaid
	t.Type = model.TicketType{ID: 2, Name: "presential + hotel", IsRemote: false, IncludesHotel: true}
	return t
}

func enrollment() *model.Enrollment {
	return &model.Enrollment{ID: 3, UserID: 1, Name: "Jo Doe"}
}

func roomWith(capacity, occupancy uint32) *repository.RoomWithOccupancy {
	r := &repository.RoomWithOccupancy{}
	r.ID = 10
	r.Name = "101"
	r.Capacity = capacity
	r.HotelID = 5
	r.Occupancy = occupancy
	return r
}

// newService builds a service where every path succeeds; individual
// tests override the mocks they care about.
func newService(b *mockBookingRepo, r *mockRoomRepo, e *mockEnrollmentRepo, t *mockTicketRepo) *BookingService {
	if b == nil {
		b = &mockBookingRepo{
			findByUserID: func(ctx context.Context, userID uint64) (*repository.BookingDetail, error) {
				return &repository.BookingDetail{ID: 20, Room: roomWith(3, 1).RoomInfo}, nil
			},
			create: func(ctx context.Context, userID, roomID uint64) (uint64, error) {
				return 21, nil
			},
			updateRoom: func(ctx context.Context, bookingID, roomID uint64) error {
				return nil
			},
		}
	}
	if r == nil {
		r = &mockRoomRepo{
			findWithOccupancy: func(ctx context.Context, roomID uint64) (*repository.RoomWithOccupancy, error) {
				return roomWith(3, 1), nil
			},
		}
	}
	if e == nil {
		e = &mockEnrollmentRepo{
			findByUserID: func(ctx context.Context, userID uint64) (*model.Enrollment, error) {
				return enrollment(), nil
			},
		}
	}
	if t == nil {
		t = &mockTicketRepo{
			findByEnrollmentID: func(ctx context.Context, enrollmentID uint64) (*repository.TicketWithType, error) {
				return eligibleTicket(), nil
			},
		}
	}
	return NewBookingService(b, r, e, t)
}

func TestGetBookingNotFound(t *testing.T) {
	b := &mockBookingRepo{
		findByUserID: func(ctx context.Context, userID uint64) (*repository.BookingDetail, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := newService(b, nil, nil, nil)

	_, err := svc.GetBooking(context.Background(), 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetBookingReturnsIDAndRoom(t *testing.T) {
	b := &mockBookingRepo{
		findByUserID: func(ctx context.Context, userID uint64) (*repository.BookingDetail, error) {
			if userID != 1 {
				t.Fatalf("unexpected user id %d", userID)
			}
			return &repository.BookingDetail{ID: 42, Room: roomWith(3, 2).RoomInfo}, nil
		},
	}
	svc := newService(b, nil, nil, nil)

	got, err := svc.GetBooking(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 42 {
		t.Fatalf("expected booking id 42, got %d", got.ID)
	}
	if got.Room.ID != 10 || got.Room.Name != "101" {
		t.Fatalf("unexpected room: %+v", got.Room)
	}
}

func TestCreateBookingNoEnrollment(t *testing.T) {
	e := &mockEnrollmentRepo{
		findByUserID: func(ctx context.Context, userID uint64) (*model.Enrollment, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := newService(nil, nil, e, nil)

	_, err := svc.CreateBooking(context.Background(), 1, 10)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateBookingNoTicket(t *testing.T) {
	tk := &mockTicketRepo{
		findByEnrollmentID: func(ctx context.Context, enrollmentID uint64) (*repository.TicketWithType, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := newService(nil, nil, nil, tk)

	_, err := svc.CreateBooking(context.Background(), 1, 10)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateBookingIneligibleTickets(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*repository.TicketWithType)
	}{
		{"reserved status", func(tk *repository.TicketWithType) { tk.Status = model.TicketStatusReserved }},
		{"remote ticket", func(tk *repository.TicketWithType) { tk.Type.IsRemote = true }},
		{"no hotel included", func(tk *repository.TicketWithType) { tk.Type.IncludesHotel = false }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ticket := eligibleTicket()
			tc.mutate(ticket)
			tk := &mockTicketRepo{
				findByEnrollmentID: func(ctx context.Context, enrollmentID uint64) (*repository.TicketWithType, error) {
					return ticket, nil
				},
			}
			svc := newService(nil, nil, nil, tk)

			_, err := svc.CreateBooking(context.Background(), 1, 10)
			if !errors.Is(err, ErrForbidden) {
				t.Fatalf("expected ErrForbidden, got %v", err)
			}
		})
	}
}

// An ineligible ticket must be reported before the room is even looked
// up: eligibility runs first.
func TestCreateBookingChecksEligibilityBeforeRoom(t *testing.T) {
	roomLookups := 0
	r := &mockRoomRepo{
		findWithOccupancy: func(ctx context.Context, roomID uint64) (*repository.RoomWithOccupancy, error) {
			roomLookups++
			return nil, sql.ErrNoRows
		},
	}
	ticket := eligibleTicket()
	ticket.Status = model.TicketStatusReserved
	tk := &mockTicketRepo{
		findByEnrollmentID: func(ctx context.Context, enrollmentID uint64) (*repository.TicketWithType, error) {
			return ticket, nil
		},
	}
	svc := newService(nil, r, nil, tk)

	_, err := svc.CreateBooking(context.Background(), 1, 9999)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if roomLookups != 0 {
		t.Fatalf("room looked up %d times before eligibility failed", roomLookups)
	}
}

func TestCreateBookingRoomNotFound(t *testing.T) {
	r := &mockRoomRepo{
		findWithOccupancy: func(ctx context.Context, roomID uint64) (*repository.RoomWithOccupancy, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := newService(nil, r, nil, nil)

	_, err := svc.CreateBooking(context.Background(), 1, 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateBookingRoomFull(t *testing.T) {
	r := &mockRoomRepo{
		findWithOccupancy: func(ctx context.Context, roomID uint64) (*repository.RoomWithOccupancy, error) {
			return roomWith(3, 3), nil
		},
	}
	svc := newService(nil, r, nil, nil)

	_, err := svc.CreateBooking(context.Background(), 1, 10)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateBookingLastSpot(t *testing.T) {
	r := &mockRoomRepo{
		findWithOccupancy: func(ctx context.Context, roomID uint64) (*repository.RoomWithOccupancy, error) {
			return roomWith(3, 2), nil
		},
	}
	b := &mockBookingRepo{
		create: func(ctx context.Context, userID, roomID uint64) (uint64, error) {
			if userID != 1 || roomID != 10 {
				t.Fatalf("create called with user=%d room=%d", userID, roomID)
			}
			return 55, nil
		},
	}
	svc := newService(b, r, nil, nil)

	id, err := svc.CreateBooking(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 55 {
		t.Fatalf("expected booking id 55, got %d", id)
	}
}

func TestUpdateBookingWithoutExistingBooking(t *testing.T) {
	b := &mockBookingRepo{
		findByUserID: func(ctx context.Context, userID uint64) (*repository.BookingDetail, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := newService(b, nil, nil, nil)

	_, err := svc.UpdateBooking(context.Background(), 1, 10, 20)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateBookingRoomNotFound(t *testing.T) {
	r := &mockRoomRepo{
		findWithOccupancy: func(ctx context.Context, roomID uint64) (*repository.RoomWithOccupancy, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := newService(nil, r, nil, nil)

	_, err := svc.UpdateBooking(context.Background(), 1, 9999, 20)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateBookingRoomFull(t *testing.T) {
	r := &mockRoomRepo{
		findWithOccupancy: func(ctx context.Context, roomID uint64) (*repository.RoomWithOccupancy, error) {
			return roomWith(2, 2), nil
		},
	}
	svc := newService(nil, r, nil, nil)

	_, err := svc.UpdateBooking(context.Background(), 1, 10, 20)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUpdateBookingReturnsSuppliedID(t *testing.T) {
	var updatedBooking, updatedRoom uint64
	b := &mockBookingRepo{
		findByUserID: func(ctx context.Context, userID uint64) (*repository.BookingDetail, error) {
			return &repository.BookingDetail{ID: 20, Room: roomWith(3, 1).RoomInfo}, nil
		},
		updateRoom: func(ctx context.Context, bookingID, roomID uint64) error {
			updatedBooking, updatedRoom = bookingID, roomID
			return nil
		},
	}
	svc := newService(b, nil, nil, nil)

	id, err := svc.UpdateBooking(context.Background(), 1, 11, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 20 {
		t.Fatalf("expected booking id 20, got %d", id)
	}
	if updatedBooking != 20 || updatedRoom != 11 {
		t.Fatalf("update targeted booking=%d room=%d", updatedBooking, updatedRoom)
	}
}

// The update path trusts the path parameter: the row mutated is the one
// the caller names, even when it differs from the booking the user
// actually holds, and ticket eligibility is never consulted.
func TestUpdateBookingTrustsSuppliedID(t *testing.T) {
	var updatedBooking uint64
	b := &mockBookingRepo{
		findByUserID: func(ctx context.Context, userID uint64) (*repository.BookingDetail, error) {
			return &repository.BookingDetail{ID: 20, Room: roomWith(3, 1).RoomInfo}, nil
		},
		updateRoom: func(ctx context.Context, bookingID, roomID uint64) error {
			updatedBooking = bookingID
			return nil
		},
	}
	ticketLookups := 0
	tk := &mockTicketRepo{
		findByEnrollmentID: func(ctx context.Context, enrollmentID uint64) (*repository.TicketWithType, error) {
			ticketLookups++
			return eligibleTicket(), nil
		},
	}
	svc := newService(b, nil, nil, tk)

	id, err := svc.UpdateBooking(context.Background(), 1, 11, 999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 999 || updatedBooking != 999 {
		t.Fatalf("expected supplied id 999 to flow through, got id=%d updated=%d", id, updatedBooking)
	}
	if ticketLookups != 0 {
		t.Fatalf("eligibility consulted %d times on update", ticketLookups)
	}
}
