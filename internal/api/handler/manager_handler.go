package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/hotel-booking/internal/core/domain"
	"github.com/stayhub/hotel-booking/internal/core/ports"
)

// ManagerHandler serves the hotel-manager surface: catalog writes for owned
// hotels and booking oversight. Role gating happens in the router; ownership
// is enforced by the services.
type ManagerHandler struct {
	hotels   ports.HotelService
	bookings ports.BookingService
}

func NewManagerHandler(hotels ports.HotelService, bookings ports.BookingService) *ManagerHandler {
	return &ManagerHandler{hotels: hotels, bookings: bookings}
}

type hotelRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description,omitempty"`
	City        string   `json:"city"        validate:"required"`
	State       string   `json:"state,omitempty"`
	Address     string   `json:"address"     validate:"required"`
	StarRating  int      `json:"star_rating" validate:"gte=0,max=5"`
	Amenities   []string `json:"amenities,omitempty"`
	Images      []string `json:"images,omitempty"`
}

type roomTypeRequest struct {
	Name       string   `json:"name"        validate:"required"`
	PriceCents int64    `json:"price_cents" validate:"required,gt=0"`
	Capacity   int      `json:"capacity"    validate:"required,gte=1"`
	TotalRooms int      `json:"total_rooms" validate:"required,gte=1"`
	Amenities  []string `json:"amenities,omitempty"`
}

type bookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=CANCELLED COMPLETED"`
}

func (r hotelRequest) toInput() ports.HotelInput {
	return ports.HotelInput{
		Name:        r.Name,
		Description: r.Description,
		City:        r.City,
		State:       r.State,
		Address:     r.Address,
		StarRating:  r.StarRating,
		Amenities:   r.Amenities,
		Images:      r.Images,
	}
}

func (r roomTypeRequest) toInput() ports.RoomTypeInput {
	return ports.RoomTypeInput{
		Name:       r.Name,
		PriceCents: r.PriceCents,
		Capacity:   r.Capacity,
		TotalRooms: r.TotalRooms,
		Amenities:  r.Amenities,
	}
}

// MyHotels handles GET /api/manager/hotels.
func (h *ManagerHandler) MyHotels(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	hotels, err := h.hotels.ListOwnerHotels(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hotels)
}

// HotelBookings handles GET /api/manager/hotels/:id/bookings.
func (h *ManagerHandler) HotelBookings(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	caller := ports.Caller{ID: p.UserID, Role: p.Role}
	views, err := h.bookings.ListForHotel(c.Request().Context(), c.Param("id"), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponses(views))
}

// CreateHotel handles POST /api/manager/hotels.
func (h *ManagerHandler) CreateHotel(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req hotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hotel, err := h.hotels.CreateHotel(c.Request().Context(), req.toInput(), p.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, hotel)
}

// UpdateHotel handles PUT /api/manager/hotels/:id.
func (h *ManagerHandler) UpdateHotel(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req hotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hotel, err := h.hotels.UpdateHotel(c.Request().Context(), c.Param("id"), req.toInput(), p.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hotel)
}

// AddRoomType handles POST /api/manager/hotels/:id/rooms.
func (h *ManagerHandler) AddRoomType(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req roomTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rt, err := h.hotels.AddRoomType(c.Request().Context(), c.Param("id"), req.toInput(), p.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, rt)
}

// UpdateRoomType handles PUT /api/manager/hotels/:id/rooms/:roomTypeId.
func (h *ManagerHandler) UpdateRoomType(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req roomTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rt, err := h.hotels.UpdateRoomType(c.Request().Context(), c.Param("id"), c.Param("roomTypeId"), req.toInput(), p.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rt)
}

// SetBookingStatus handles PATCH /api/manager/bookings/:id/status. Drives
// the administrative COMPLETED transition after checkout.
func (h *ManagerHandler) SetBookingStatus(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req bookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.bookings.SetStatus(
		c.Request().Context(),
		c.Param("id"),
		domain.BookingStatus(req.Status),
		ports.Caller{ID: p.UserID, Role: p.Role},
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponse(view))
}
