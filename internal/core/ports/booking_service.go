package ports

import (
	"context"
	"time"

	"github.com/stayhub/hotel-booking/internal/core/domain"
)

// CreateBookingInput carries all data needed to create a booking. UserID is
// the authenticated caller's identity, never a request field.
type CreateBookingInput struct {
	UserID     string
	HotelID    string
	RoomTypeID string
	CheckIn    time.Time
	CheckOut   time.Time
	Adults     int
	Children   int
	Rooms      int
	// Guest overrides; empty fields default to the caller's profile.
	GuestFirstName string
	GuestLastName  string
	GuestEmail     string
	GuestPhone     string
	PaymentMethod  string
}

// UpdateBookingInput has pointer fields so partial updates can distinguish
// "not supplied" (nil, field untouched) from an explicit new value.
type UpdateBookingInput struct {
	CheckIn  *time.Time
	CheckOut *time.Time
	Adults   *int
	Children *int
	Rooms    *int
}

// BookingView is the response projection returned to callers. It carries the
// requester's own guest details and resolved hotel/room names but no internal
// identifiers of other parties.
type BookingView struct {
	ID             string
	Reference      string
	HotelName      string
	HotelCity      string
	RoomTypeName   string
	CheckIn        time.Time
	CheckOut       time.Time
	Adults         int
	Children       int
	Rooms          int
	TotalCents     int64
	Status         domain.BookingStatus
	PaymentStatus  domain.PaymentStatus
	PaymentMethod  string
	TransactionID  string
	GuestFirstName string
	GuestLastName  string
	GuestEmail     string
	GuestPhone     string
	BookedAt       time.Time
}

// Caller identifies the authenticated principal driving an operation.
type Caller struct {
	ID   string
	Role string
}

// BookingService defines the reservation engine's use-case operations.
// Ownership checks happen here; role checks happen upstream in the
// authorization middleware.
type BookingService interface {
	Create(ctx context.Context, in CreateBookingInput) (*BookingView, error)
	Update(ctx context.Context, bookingID string, in UpdateBookingInput, callerID string) (*BookingView, error)
	Cancel(ctx context.Context, bookingID, callerID string) error
	ListForUser(ctx context.Context, userID string) ([]BookingView, error)
	ListAll(ctx context.Context) ([]BookingView, error)
	// ListForHotel returns a hotel's bookings. Admins may read any hotel;
	// hotel managers only hotels they own.
	ListForHotel(ctx context.Context, hotelID string, caller Caller) ([]BookingView, error)
	ListByPaymentStatus(ctx context.Context, status domain.PaymentStatus) ([]BookingView, error)
	// SetStatus drives administrative transitions (e.g. COMPLETED after
	// checkout). Admins may touch any booking; hotel managers only bookings
	// of hotels they own.
	SetStatus(ctx context.Context, bookingID string, next domain.BookingStatus, caller Caller) (*BookingView, error)
}
