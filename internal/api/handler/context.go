package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/hotel-booking/internal/api/middleware"
)

// principal is the request-scoped identity established by the Authenticate
// middleware. It lives exactly as long as the request.
type principal struct {
	UserID string
	Email  string
	Role   string
}

// ctxPrincipal extracts the principal injected by the Authenticate middleware.
// A populated role proves the middleware ran and resolved the account; role
// gates upstream guarantee this for protected routes, so a miss here means a
// route was wired without its gate.
func ctxPrincipal(c echo.Context) (principal, error) {
	p := principal{}
	p.UserID, _ = c.Get(middleware.CtxUserID).(string)
	p.Email, _ = c.Get(middleware.CtxUserEmail).(string)
	p.Role, _ = c.Get(middleware.CtxUserRole).(string)
	if p.UserID == "" || p.Role == "" {
		return principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}

// ctxOptionalPrincipal returns the principal when one is present and a zero
// value otherwise; used by public routes that behave differently for
// authenticated callers.
func ctxOptionalPrincipal(c echo.Context) (principal, bool) {
	p := principal{}
	p.UserID, _ = c.Get(middleware.CtxUserID).(string)
	p.Email, _ = c.Get(middleware.CtxUserEmail).(string)
	p.Role, _ = c.Get(middleware.CtxUserRole).(string)
	return p, p.UserID != ""
}
