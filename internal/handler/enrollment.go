package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hotel-booking/internal/model"
	"github.com/iliyamo/event-hotel-booking/internal/repository"
)

// EnrollmentHandler exposes the event enrollment endpoints. An
// enrollment is the attendee's registration record and a prerequisite
// for holding a ticket.
type EnrollmentHandler struct {
	Enrollments *repository.EnrollmentRepo
}

func NewEnrollmentHandler(enrollments *repository.EnrollmentRepo) *EnrollmentHandler {
	if enrollments == nil {
		panic("nil repository passed to NewEnrollmentHandler")
	}
	return &EnrollmentHandler{Enrollments: enrollments}
}

type enrollmentReq struct {
	Name     string `json:"name"`
	CPF      string `json:"cpf"`
	Birthday string `json:"birthday"` // YYYY-MM-DD
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	PostCode string `json:"postCode"`
}

type enrollmentResp struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	CPF      string `json:"cpf"`
	Birthday string `json:"birthday"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	PostCode string `json:"postCode"`
}

func toEnrollmentResp(e *model.Enrollment) enrollmentResp {
	return enrollmentResp{
		ID:       e.ID,
		Name:     e.Name,
		CPF:      e.CPF,
		Birthday: e.Birthday.Format("2006-01-02"),
		Phone:    e.Phone,
		Street:   e.Street,
		City:     e.City,
		State:    e.State,
		PostCode: e.PostCode,
	}
}

// UpsertEnrollment handles POST /v1/enrollments. It creates the
// user's enrollment or overwrites its fields when one already exists.
func (h *EnrollmentHandler) UpsertEnrollment(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req enrollmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.CPF = strings.TrimSpace(req.CPF)
	if req.Name == "" || req.CPF == "" || req.Phone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, cpf and phone are required"})
	}
	birthday, err := time.Parse("2006-01-02", req.Birthday)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid birthday"})
	}

	e := model.Enrollment{
		UserID:   userID,
		Name:     req.Name,
		CPF:      req.CPF,
		Birthday: birthday,
		Phone:    req.Phone,
		Street:   req.Street,
		City:     req.City,
		State:    req.State,
		PostCode: req.PostCode,
	}
	if err := h.Enrollments.Upsert(c.Request().Context(), &e); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save enrollment"})
	}
	return c.JSON(http.StatusOK, toEnrollmentResp(&e))
}

// GetEnrollment handles GET /v1/enrollments and returns the user's
// enrollment, or 404 when the user has not enrolled.
func (h *EnrollmentHandler) GetEnrollment(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	e, err := h.Enrollments.FindByUserID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "enrollment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load enrollment"})
	}
	return c.JSON(http.StatusOK, toEnrollmentResp(e))
}
