package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/hotel-booking/internal/core/domain"
	"github.com/stayhub/hotel-booking/internal/core/ports"
)

// AdminHandler serves the administrative surface: account oversight, payment
// views, and complaint resolution. All routes are ADMIN-gated in the router.
type AdminHandler struct {
	users      ports.UserRepository
	bookings   ports.BookingService
	complaints ports.ComplaintService
}

func NewAdminHandler(users ports.UserRepository, bookings ports.BookingService, complaints ports.ComplaintService) *AdminHandler {
	return &AdminHandler{users: users, bookings: bookings, complaints: complaints}
}

type resolveComplaintRequest struct {
	Status    string  `json:"status" validate:"required,oneof=OPEN RESOLVED"`
	AdminNote *string `json:"admin_note,omitempty"`
}

// ListUsers handles GET /api/users. The optional status query narrows to
// suspended or active accounts.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	if status := c.QueryParam("status"); status != "" {
		users, err := h.users.ListByStatus(c.Request().Context(), status)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, users)
	}

	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// SuspendUser handles PATCH /api/admin/users/:id/suspend. The account's live
// tokens stop working on their next request because the authenticator
// re-resolves account state per request.
func (h *AdminHandler) SuspendUser(c echo.Context) error {
	if err := h.users.UpdateStatus(c.Request().Context(), c.Param("id"), domain.StatusSuspended); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusMessageResponse{Status: "Success", Message: "User suspended"})
}

// ActivateUser handles PATCH /api/admin/users/:id/activate.
func (h *AdminHandler) ActivateUser(c echo.Context) error {
	if err := h.users.UpdateStatus(c.Request().Context(), c.Param("id"), domain.StatusActive); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusMessageResponse{Status: "Success", Message: "User activated"})
}

// Payments handles GET /api/admin/payments with an optional payment status
// filter (PENDING, COMPLETED, FAILED).
func (h *AdminHandler) Payments(c echo.Context) error {
	status := c.QueryParam("status")
	var (
		views []ports.BookingView
		err   error
	)
	if status == "" {
		views, err = h.bookings.ListAll(c.Request().Context())
	} else {
		views, err = h.bookings.ListByPaymentStatus(c.Request().Context(), domain.PaymentStatus(status))
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponses(views))
}

// ListComplaints handles GET /api/admin/complaints.
func (h *AdminHandler) ListComplaints(c echo.Context) error {
	complaints, err := h.complaints.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, complaints)
}

// ResolveComplaint handles PATCH /api/admin/complaints/:id.
func (h *AdminHandler) ResolveComplaint(c echo.Context) error {
	var req resolveComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	complaint, err := h.complaints.Resolve(c.Request().Context(), c.Param("id"), ports.ComplaintUpdate{
		Status:    domain.ComplaintStatus(req.Status),
		AdminNote: req.AdminNote,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, complaint)
}
