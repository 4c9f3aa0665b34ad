package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hotel-booking/internal/repository"
)

// TicketHandler exposes the ticket endpoints. Tickets are created
// RESERVED; payment settlement happens outside this service, so there
// is no endpoint that marks a ticket PAID.
type TicketHandler struct {
	Tickets     *repository.TicketRepo
	Enrollments *repository.EnrollmentRepo
}

func NewTicketHandler(tickets *repository.TicketRepo, enrollments *repository.EnrollmentRepo) *TicketHandler {
	if tickets == nil || enrollments == nil {
		panic("nil repository passed to NewTicketHandler")
	}
	return &TicketHandler{Tickets: tickets, Enrollments: enrollments}
}

type ticketTypeResp struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	PriceCents    uint32 `json:"priceCents"`
	IsRemote      bool   `json:"isRemote"`
	IncludesHotel bool   `json:"includesHotel"`
}

type ticketResp struct {
	ID         uint64         `json:"id"`
	Status     string         `json:"status"`
	TicketType ticketTypeResp `json:"ticketType"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toTicketResp(tw *repository.TicketWithType) ticketResp {
	return ticketResp{
		ID:     tw.ID,
		Status: tw.Status,
		TicketType: ticketTypeResp{
			ID:            tw.Type.ID,
			Name:          tw.Type.Name,
			PriceCents:    tw.Type.PriceCents,
			IsRemote:      tw.Type.IsRemote,
			IncludesHotel: tw.Type.IncludesHotel,
		},
		CreatedAt: tw.CreatedAt,
	}
}

// ListTicketTypes handles GET /v1/ticket-types.
func (h *TicketHandler) ListTicketTypes(c echo.Context) error {
	types, err := h.Tickets.ListTypes(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load ticket types"})
	}
	items := make([]ticketTypeResp, 0, len(types))
	for _, tt := range types {
		items = append(items, ticketTypeResp{
			ID:            tt.ID,
			Name:          tt.Name,
			PriceCents:    tt.PriceCents,
			IsRemote:      tt.IsRemote,
			IncludesHotel: tt.IncludesHotel,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetTicket handles GET /v1/tickets and returns the user's ticket, or
// 404 when the user has no enrollment or no ticket.
func (h *TicketHandler) GetTicket(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx := c.Request().Context()
	enrollment, err := h.Enrollments.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "enrollment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load enrollment"})
	}
	ticket, err := h.Tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load ticket"})
	}
	return c.JSON(http.StatusOK, toTicketResp(ticket))
}

type createTicketReq struct {
	TicketTypeID *uint64 `json:"ticketTypeId"`
}

// CreateTicket handles POST /v1/tickets. It creates a RESERVED ticket
// for the user's enrollment. Missing enrollment or unknown ticket type
// map to 404.
func (h *TicketHandler) CreateTicket(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createTicketReq
	if err := c.Bind(&req); err != nil || req.TicketTypeID == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticketTypeId is required"})
	}
	ctx := c.Request().Context()
	enrollment, err := h.Enrollments.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "enrollment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load enrollment"})
	}
	if _, err := h.Tickets.GetType(ctx, *req.TicketTypeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket type not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load ticket type"})
	}
	ticket, err := h.Tickets.Create(ctx, enrollment.ID, *req.TicketTypeID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create ticket"})
	}
	return c.JSON(http.StatusCreated, toTicketResp(ticket))
}
