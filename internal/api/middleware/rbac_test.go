package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/hotel-booking/internal/core/domain"
)

func runGate(t *testing.T, mw echo.MiddlewareFunc, role string) (int, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set(CtxUserRole, role)
	}

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code, called
}

func TestRequireAuth(t *testing.T) {
	if code, called := runGate(t, RequireAuth(), domain.RoleCustomer); code != http.StatusOK || !called {
		t.Fatalf("authenticated request rejected: %d", code)
	}
	if code, called := runGate(t, RequireAuth(), ""); code != http.StatusUnauthorized || called {
		t.Fatalf("anonymous request must get 401, got %d", code)
	}
}

func TestRequireRole_Allowed(t *testing.T) {
	gate := RequireRole(domain.RoleCustomer, domain.RoleAdmin)

	for _, role := range []string{domain.RoleCustomer, domain.RoleAdmin} {
		if code, called := runGate(t, gate, role); code != http.StatusOK || !called {
			t.Fatalf("role %s must be admitted, got %d", role, code)
		}
	}
}

func TestRequireRole_AnonymousGets401(t *testing.T) {
	gate := RequireRole(domain.RoleAdmin)

	code, called := runGate(t, gate, "")
	if called {
		t.Fatal("handler must not run for anonymous request")
	}
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous, got %d", code)
	}
}

func TestRequireRole_WrongRoleGets403(t *testing.T) {
	gate := RequireRole(domain.RoleAdmin)

	code, called := runGate(t, gate, domain.RoleCustomer)
	if called {
		t.Fatal("handler must not run for wrong role")
	}
	if code != http.StatusForbidden {
		t.Fatalf("expected 403 for wrong role, got %d", code)
	}
}
