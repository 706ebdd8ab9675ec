package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// PaymentStatus represents the settlement state of a booking's payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// validTransitions defines the allowed booking state machine transitions.
// CANCELLED is terminal: nothing leaves it.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingConfirmed: {BookingCancelled, BookingCompleted},
}

var ErrBookingNotFound = errors.New("booking not found")
var ErrBookingCancelled = errors.New("booking is cancelled")
var ErrInvalidDates = errors.New("invalid booking dates")
var ErrInvalidOccupancy = errors.New("invalid occupancy counts")
var ErrRoomUnavailable = errors.New("room type not available for requested dates")
var ErrNotOwner = errors.New("booking belongs to another user")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking is the core aggregate root of the reservation engine.
//
// Money is carried as integer cents (TotalCents) so that price arithmetic is
// exact; dates are UTC-midnight day values so that night counts are calendar
// arithmetic, not elapsed time.
type Booking struct {
	ID             string        `json:"id" bson:"_id,omitempty"`
	Reference      string        `json:"booking_reference" bson:"booking_reference"`
	UserID         string        `json:"user_id" bson:"user_id"`
	HotelID        string        `json:"hotel_id" bson:"hotel_id"`
	RoomTypeID     string        `json:"room_type_id" bson:"room_type_id"`
	CheckIn        time.Time     `json:"check_in" bson:"check_in"`
	CheckOut       time.Time     `json:"check_out" bson:"check_out"`
	Adults         int           `json:"adults" bson:"adults"`
	Children       int           `json:"children" bson:"children"`
	Rooms          int           `json:"rooms" bson:"rooms"`
	TotalCents     int64         `json:"total_cents" bson:"total_cents"`
	Status         BookingStatus `json:"status" bson:"status"`
	PaymentStatus  PaymentStatus `json:"payment_status" bson:"payment_status"`
	PaymentMethod  string        `json:"payment_method" bson:"payment_method"`
	TransactionID  string        `json:"transaction_id" bson:"transaction_id"`
	GuestFirstName string        `json:"guest_first_name" bson:"guest_first_name"`
	GuestLastName  string        `json:"guest_last_name" bson:"guest_last_name"`
	GuestEmail     string        `json:"guest_email" bson:"guest_email"`
	GuestPhone     string        `json:"guest_phone" bson:"guest_phone"`
	BookedAt       time.Time     `json:"booked_at" bson:"booked_at"`
}

// Nights returns the number of nights covered by the stay. Both endpoints are
// expected to be UTC-midnight day values (see DateOnly), making this exact
// calendar arithmetic.
func (b *Booking) Nights() int {
	return NightsBetween(b.CheckIn, b.CheckOut)
}

// NightsBetween counts calendar nights between two UTC-midnight dates.
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn) / (24 * time.Hour))
}

// DateOnly truncates t to a UTC-midnight day value. All booking dates pass
// through this before any arithmetic so DST and timezone offsets cannot
// drift night counts.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether the booking's stay shares any night with the
// half-open interval [checkIn, checkOut). Back-to-back stays where one guest
// checks out the morning another checks in do not overlap.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn)
}
