package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/hotel-booking/internal/core/ports"
)

// Context keys under which the authenticated principal is stored for the
// lifetime of a request.
const (
	CtxUserID    = "user_id"
	CtxUserEmail = "user_email"
	CtxUserRole  = "user_role"
	CtxToken     = "token"
)

// Authenticate converts a bearer credential into a request-scoped principal.
//
// It never rejects a request: a missing, malformed, or invalid token simply
// leaves the request anonymous, and the role gates decide whether anonymous
// access is acceptable for the route. This fail-open-to-anonymous,
// fail-closed-at-authorization split keeps the rejection decision in one
// place.
//
// On a valid token the subject is re-resolved against the user store: the
// account must still exist and be active, and the role attached to the
// principal is the account's current role, not the token's claim. A role
// downgrade or suspension therefore takes effect on the user's next request,
// for the remaining lifetime of any previously issued token.
func Authenticate(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			raw := strings.TrimSpace(parts[1])
			// A signed-claims token always contains segment delimiters;
			// anything else is not worth a verification attempt.
			if raw == "" || !strings.Contains(raw, ".") {
				return next(c)
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				return next(c)
			}

			user, err := users.FindByEmail(c.Request().Context(), claims.Email)
			if err != nil || !user.Active() {
				return next(c)
			}

			c.Set(CtxUserID, user.ID)
			c.Set(CtxUserEmail, user.Email)
			c.Set(CtxUserRole, user.Role)
			c.Set(CtxToken, raw)

			return next(c)
		}
	}
}
