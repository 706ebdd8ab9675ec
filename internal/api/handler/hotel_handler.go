package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/hotel-booking/internal/core/ports"
)

// HotelHandler serves the public hotel catalog. Reads are public; an
// authenticated caller viewing a hotel additionally gets it recorded in
// their recently-viewed list.
type HotelHandler struct {
	service ports.HotelService
}

func NewHotelHandler(service ports.HotelService) *HotelHandler {
	return &HotelHandler{service: service}
}

// List handles GET /api/hotels.
//
// @Summary      List hotels
// @Tags         hotels
// @Produce      json
// @Success      200  {array}  domain.Hotel
// @Router       /api/hotels [get]
func (h *HotelHandler) List(c echo.Context) error {
	city := c.QueryParam("city")
	state := c.QueryParam("state")
	if city != "" || state != "" {
		hotels, err := h.service.Search(c.Request().Context(), city, state)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, hotels)
	}

	hotels, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hotels)
}

// Get handles GET /api/hotels/:id.
//
// @Summary      Get hotel details
// @Tags         hotels
// @Produce      json
// @Param        id  path  string  true  "Hotel ID"
// @Success      200  {object}  domain.Hotel
// @Failure      404  {object}  errorResponse
// @Router       /api/hotels/{id} [get]
func (h *HotelHandler) Get(c echo.Context) error {
	hotel, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	// Viewing history is best-effort bookkeeping; it never fails the read.
	if p, ok := ctxOptionalPrincipal(c); ok {
		_ = h.service.RecordView(c.Request().Context(), p.UserID, hotel.ID)
	}

	return c.JSON(http.StatusOK, hotel)
}

// Rooms handles GET /api/hotels/:id/rooms.
//
// @Summary      List a hotel's room types
// @Tags         hotels
// @Produce      json
// @Param        id  path  string  true  "Hotel ID"
// @Success      200  {array}  domain.RoomType
// @Failure      404  {object}  errorResponse
// @Router       /api/hotels/{id}/rooms [get]
func (h *HotelHandler) Rooms(c echo.Context) error {
	rooms, err := h.service.Rooms(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// RecentlyViewed handles GET /api/users/recently-viewed.
//
// @Summary      Hotels the caller viewed recently, newest first
// @Tags         hotels
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Hotel
// @Router       /api/users/recently-viewed [get]
func (h *HotelHandler) RecentlyViewed(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	hotels, err := h.service.ViewedHotels(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hotels)
}
