package ports

import (
	"context"
	"time"

	"github.com/stayhub/hotel-booking/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings. Bookings are
// never deleted; cancellation is a status write.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	ListByHotel(ctx context.Context, hotelID string) ([]*domain.Booking, error)
	ListByPaymentStatus(ctx context.Context, status domain.PaymentStatus) ([]*domain.Booking, error)
	// CountOverlappingRooms sums the room counts of non-cancelled bookings of
	// the given room type whose stay overlaps [checkIn, checkOut) under the
	// half-open interval test. A non-empty excludeBookingID leaves that
	// booking out of the sum, for re-checks while moving an existing booking.
	CountOverlappingRooms(ctx context.Context, hotelID, roomTypeID string, checkIn, checkOut time.Time, excludeBookingID string) (int64, error)
}

// RoomHold is a short-lived exclusive hold on a room type and date range,
// taken for the duration of the availability-check-then-write window so two
// concurrent requests touching overlapping ranges cannot both pass the
// overlap guard. Overlapping but non-identical ranges must contend.
type RoomHold interface {
	// Acquire returns false without error when another request holds any part
	// of the range.
	Acquire(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (bool, error)
	Release(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) error
}
