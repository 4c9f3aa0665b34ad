package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hotel-booking/internal/service"
)

// BookingHandler exposes the booking endpoints. All methods assume
// JWT authentication has already been performed by middleware and may
// return 401 Unauthorized if the user id cannot be extracted from the
// context. Request bodies are validated here; business rules live in
// the service.
type BookingHandler struct {
	Service *service.BookingService
}

// NewBookingHandler constructs a BookingHandler. The service must be
// non-nil.
func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	if svc == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Service: svc}
}

// bookingReq carries the target room for create and update requests.
// A pointer distinguishes a missing roomId from a zero one; zero is
// numeric and flows through to the room lookup like any other id.
type bookingReq struct {
	RoomID *uint64 `json:"roomId"`
}

// GetBooking handles GET /v1/booking. It returns the user's booking
// with its room, or 404 when the user has none.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	booking, err := h.Service.GetBooking(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch booking"})
	}
	return c.JSON(http.StatusOK, booking)
}

// CreateBooking handles POST /v1/booking. The body must contain a
// numeric roomId. Eligibility failures map to 403, missing entities
// to 404, and the created booking id is returned on success.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body bookingReq
	if err := c.Bind(&body); err != nil || body.RoomID == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roomId is required"})
	}
	bookingID, err := h.Service.CreateBooking(c.Request().Context(), userID, *body.RoomID)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"bookingId": bookingID})
}

// UpdateBooking handles PUT /v1/booking/:bookingId. The path parameter
// and the roomId body field must both be numeric.
func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil || bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var body bookingReq
	if err := c.Bind(&body); err != nil || body.RoomID == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roomId is required"})
	}
	updatedID, err := h.Service.UpdateBooking(c.Request().Context(), userID, *body.RoomID, bookingID)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"bookingId": updatedID})
}

// bookingError maps the service's domain errors onto HTTP statuses.
// Anything that is not one of the two domain sentinels is an opaque
// server fault.
func bookingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
}
