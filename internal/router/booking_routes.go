package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hotel-booking/internal/handler"
	"github.com/iliyamo/event-hotel-booking/internal/middleware"
)

// RegisterBooking wires the enrollment, ticket and booking endpoints under
// the protected /v1 prefix.  Every route here requires a valid access token;
// the authenticated user id is what scopes enrollments, tickets and bookings.
func RegisterBooking(e *echo.Echo, en *handler.EnrollmentHandler, t *handler.TicketHandler, b *handler.BookingHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))

	// Enrollment is the personal/contact record a user must file before
	// buying a ticket.  POST both creates and updates it.
	g.GET("/enrollments", en.GetEnrollment)
	g.POST("/enrollments", en.UpsertEnrollment)

	// Ticket purchase flow: browse types, inspect the current ticket,
	// reserve a new one.
	g.GET("/ticket-types", t.ListTicketTypes)
	g.GET("/tickets", t.GetTicket)
	g.POST("/tickets", t.CreateTicket)

	// Room booking.  A user holds at most one booking; PUT moves it to a
	// different room.
	g.GET("/booking", b.GetBooking)
	g.POST("/booking", b.CreateBooking)
	g.PUT("/booking/:bookingId", b.UpdateBooking)
}
