package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/hotel-booking/internal/core/domain"
	"github.com/stayhub/hotel-booking/internal/core/ports"
)

// BookingHandler handles HTTP requests for the reservation engine.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /api/bookings.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return fmt.Errorf("%w: check_in_date must be YYYY-MM-DD", domain.ErrInvalidDates)
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return fmt.Errorf("%w: check_out_date must be YYYY-MM-DD", domain.ErrInvalidDates)
	}

	view, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		UserID:         p.UserID,
		HotelID:        req.HotelID,
		RoomTypeID:     req.RoomTypeID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Adults:         req.Adults,
		Children:       req.Children,
		Rooms:          req.Rooms,
		GuestFirstName: req.GuestFirstName,
		GuestLastName:  req.GuestLastName,
		GuestEmail:     req.GuestEmail,
		GuestPhone:     req.GuestPhone,
		PaymentMethod:  req.PaymentMethod,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toBookingResponse(view))
}

// Update handles PUT /api/bookings/:id. Absent fields are left untouched.
//
// @Summary      Update a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Booking ID"
// @Param        body  body      updateBookingRequest  true  "Fields to change"
// @Success      200   {object}  bookingResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/bookings/{id} [put]
func (h *BookingHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.UpdateBookingInput{
		Adults:   req.Adults,
		Children: req.Children,
		Rooms:    req.Rooms,
	}
	if req.CheckIn != nil {
		d, err := parseDate(*req.CheckIn)
		if err != nil {
			return fmt.Errorf("%w: check_in_date must be YYYY-MM-DD", domain.ErrInvalidDates)
		}
		in.CheckIn = &d
	}
	if req.CheckOut != nil {
		d, err := parseDate(*req.CheckOut)
		if err != nil {
			return fmt.Errorf("%w: check_out_date must be YYYY-MM-DD", domain.ErrInvalidDates)
		}
		in.CheckOut = &d
	}

	view, err := h.service.Update(c.Request().Context(), c.Param("id"), in, p.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponse(view))
}

// Cancel handles DELETE /api/bookings/:id. The booking record survives;
// only its status changes.
//
// @Summary      Cancel a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Booking ID"
// @Success      200  {object}  statusMessageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/bookings/{id} [delete]
func (h *BookingHandler) Cancel(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Cancel(c.Request().Context(), c.Param("id"), p.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusMessageResponse{Status: "Success", Message: "Booking cancelled successfully"})
}

// MyBookings handles GET /api/bookings/my-bookings.
//
// @Summary      List the caller's bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  bookingResponse
// @Router       /api/bookings/my-bookings [get]
func (h *BookingHandler) MyBookings(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListForUser(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponses(views))
}

// ListAll handles GET /api/bookings (admin only, gated in the router).
//
// @Summary      List all bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  bookingResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) ListAll(c echo.Context) error {
	views, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponses(views))
}
