package domain

import (
	"errors"
	"time"
)

var ErrHotelNotFound = errors.New("hotel not found")
var ErrRoomTypeNotFound = errors.New("room type not found")
var ErrNotHotelOwner = errors.New("hotel belongs to another manager")

// Hotel is a catalog property. OwnerID links to the HOTEL_MANAGER account
// that manages it; catalog reads never expose it.
type Hotel struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	City        string    `json:"city" bson:"city"`
	State       string    `json:"state,omitempty" bson:"state,omitempty"`
	Address     string    `json:"address" bson:"address"`
	StarRating  int       `json:"star_rating" bson:"star_rating"`
	Rating      float64   `json:"rating" bson:"rating"`
	RatingCount int       `json:"rating_count" bson:"rating_count"`
	Amenities   []string  `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Images      []string  `json:"images,omitempty" bson:"images,omitempty"`
	OwnerID     string    `json:"-" bson:"owner_id,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// RoomType is a bookable room category within a hotel. Read-only from the
// reservation engine's perspective; PriceCents is the per-night rate in cents.
type RoomType struct {
	ID         string   `json:"id" bson:"_id,omitempty"`
	HotelID    string   `json:"hotel_id" bson:"hotel_id"`
	Name       string   `json:"name" bson:"name"`
	PriceCents int64    `json:"price_cents" bson:"price_cents"`
	Capacity   int      `json:"capacity" bson:"capacity"`
	TotalRooms int      `json:"total_rooms" bson:"total_rooms"`
	Amenities  []string `json:"amenities,omitempty" bson:"amenities,omitempty"`
}
