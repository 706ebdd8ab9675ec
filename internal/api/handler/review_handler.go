package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/hotel-booking/internal/core/ports"
)

type ReviewHandler struct {
	reviews    ports.ReviewService
	complaints ports.ComplaintService
}

func NewReviewHandler(reviews ports.ReviewService, complaints ports.ComplaintService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, complaints: complaints}
}

type createReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}

type createComplaintRequest struct {
	Subject    string `json:"subject" validate:"required"`
	Details    string `json:"details" validate:"required"`
	BookingRef string `json:"booking_reference,omitempty"`
}

// CreateReview handles POST /api/hotels/:id/reviews.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.reviews.Create(c.Request().Context(), c.Param("id"), req.Rating, req.Comment, p.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

// HotelReviews handles GET /api/hotels/:id/reviews (public).
func (h *ReviewHandler) HotelReviews(c echo.Context) error {
	reviews, err := h.reviews.ListByHotel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// MyReviews handles GET /api/users/my-reviews.
func (h *ReviewHandler) MyReviews(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	reviews, err := h.reviews.ListByUser(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// CreateComplaint handles POST /api/complaints.
func (h *ReviewHandler) CreateComplaint(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	complaint, err := h.complaints.Create(c.Request().Context(), req.Subject, req.Details, req.BookingRef, p.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, complaint)
}

// MyComplaints handles GET /api/complaints.
func (h *ReviewHandler) MyComplaints(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	complaints, err := h.complaints.ListOwn(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, complaints)
}
