package ports

import (
	"context"

	"github.com/stayhub/hotel-booking/internal/core/domain"
)

// UserRepository defines the credential-store lookups the core depends on.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	ListByStatus(ctx context.Context, status string) ([]*domain.User, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
