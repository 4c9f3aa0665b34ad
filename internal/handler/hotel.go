package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hotel-booking/internal/repository"
)

// HotelHandler exposes the hotel browse endpoints. These are
// read-only listings and sit behind the response cache middleware.
type HotelHandler struct {
	Hotels *repository.HotelRepo
}

func NewHotelHandler(hotels *repository.HotelRepo) *HotelHandler {
	if hotels == nil {
		panic("nil repository passed to NewHotelHandler")
	}
	return &HotelHandler{Hotels: hotels}
}

// hotelResp mirrors a hotels row for list responses.
type hotelResp struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// ListHotels handles GET /v1/hotels and returns all partner hotels.
func (h *HotelHandler) ListHotels(c echo.Context) error {
	hotels, err := h.Hotels.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load hotels"})
	}
	items := make([]hotelResp, 0, len(hotels))
	for _, ht := range hotels {
		items = append(items, hotelResp{ID: ht.ID, Name: ht.Name, Image: ht.Image})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetHotel handles GET /v1/hotels/:id and returns the hotel with its
// rooms, or 404 when the hotel does not exist.
func (h *HotelHandler) GetHotel(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || hotelID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	hotel, err := h.Hotels.GetWithRooms(c.Request().Context(), hotelID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load hotel"})
	}
	return c.JSON(http.StatusOK, hotel)
}
