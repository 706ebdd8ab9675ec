package ports

import (
	"context"
	"time"

	"github.com/stayhub/hotel-booking/internal/core/domain"
)

type HotelRepository interface {
	Create(ctx context.Context, h *domain.Hotel) (*domain.Hotel, error)
	FindByID(ctx context.Context, id string) (*domain.Hotel, error)
	Update(ctx context.Context, h *domain.Hotel) error
	List(ctx context.Context) ([]*domain.Hotel, error)
	// Search matches city and state case-insensitively; empty arguments are
	// not filtered on.
	Search(ctx context.Context, city, state string) ([]*domain.Hotel, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Hotel, error)
}

type RoomTypeRepository interface {
	Create(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error)
	FindByID(ctx context.Context, id string) (*domain.RoomType, error)
	Update(ctx context.Context, rt *domain.RoomType) error
	ListByHotel(ctx context.Context, hotelID string) ([]*domain.RoomType, error)
}

// CatalogCache is a read-through cache for hot catalog queries.
type CatalogCache interface {
	// Get reports whether key was present and, if so, unmarshals into dst.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// RecentlyViewed records the hotels a user has looked at, newest first,
// capped to a small fixed window.
type RecentlyViewed interface {
	Record(ctx context.Context, userID, hotelID string) error
	List(ctx context.Context, userID string) ([]string, error)
}
