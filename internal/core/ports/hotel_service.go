package ports

import (
	"context"

	"github.com/stayhub/hotel-booking/internal/core/domain"
)

// HotelInput carries the writable fields of a hotel.
type HotelInput struct {
	Name        string
	Description string
	City        string
	State       string
	Address     string
	StarRating  int
	Amenities   []string
	Images      []string
}

// RoomTypeInput carries the writable fields of a room type.
type RoomTypeInput struct {
	Name       string
	PriceCents int64
	Capacity   int
	TotalRooms int
	Amenities  []string
}

// HotelService covers public catalog reads and manager-owned catalog writes.
// Manager operations verify that the caller owns the hotel.
type HotelService interface {
	List(ctx context.Context) ([]*domain.Hotel, error)
	Search(ctx context.Context, city, state string) ([]*domain.Hotel, error)
	Get(ctx context.Context, hotelID string) (*domain.Hotel, error)
	Rooms(ctx context.Context, hotelID string) ([]*domain.RoomType, error)

	CreateHotel(ctx context.Context, in HotelInput, ownerID string) (*domain.Hotel, error)
	UpdateHotel(ctx context.Context, hotelID string, in HotelInput, ownerID string) (*domain.Hotel, error)
	ListOwnerHotels(ctx context.Context, ownerID string) ([]*domain.Hotel, error)
	AddRoomType(ctx context.Context, hotelID string, in RoomTypeInput, ownerID string) (*domain.RoomType, error)
	UpdateRoomType(ctx context.Context, hotelID, roomTypeID string, in RoomTypeInput, ownerID string) (*domain.RoomType, error)

	// RecordView notes that userID looked at hotelID; ViewedHotels returns
	// those hotels newest first.
	RecordView(ctx context.Context, userID, hotelID string) error
	ViewedHotels(ctx context.Context, userID string) ([]*domain.Hotel, error)
}
