package ports

import (
	"context"

	"github.com/stayhub/hotel-booking/internal/core/domain"
)

// RegisterInput carries the fields collected at signup. Role is not part of
// the input: self-registration always produces a CUSTOMER account.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login returns a signed bearer token alongside the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
