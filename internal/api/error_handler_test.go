package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/stayhub/hotel-booking/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, resp.Error
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrBookingNotFound, http.StatusNotFound},
		{domain.ErrHotelNotFound, http.StatusNotFound},
		{domain.ErrRoomTypeNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrNotOwner, http.StatusForbidden},
		{domain.ErrNotHotelOwner, http.StatusForbidden},
		{domain.ErrAccountSuspended, http.StatusForbidden},
		{domain.ErrInvalidDates, http.StatusBadRequest},
		{domain.ErrInvalidOccupancy, http.StatusBadRequest},
		{domain.ErrInvalidRating, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrInvalidToken, http.StatusUnauthorized},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrRoomUnavailable, http.StatusConflict},
		{domain.ErrBookingCancelled, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			code, msg := render(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if msg == "" {
				t.Fatal("expected an error message")
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("%w: check-in cannot be in the past", domain.ErrInvalidDates)
	code, msg := render(t, wrapped)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for wrapped ErrInvalidDates, got %d", code)
	}
	if msg != wrapped.Error() {
		t.Fatalf("expected wrapped message, got %q", msg)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := render(t, echo.NewHTTPError(http.StatusUnauthorized, "authentication required"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if msg != "authentication required" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_UnknownError(t *testing.T) {
	code, msg := render(t, errors.New("driver: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal details must not leak, got %q", msg)
	}
}
