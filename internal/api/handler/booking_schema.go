package handler

import (
	"fmt"
	"time"
)

// dateLayout is the wire format for stay dates. Dates are calendar days, not
// instants; parsing yields UTC midnight.
const dateLayout = "2006-01-02"

type createBookingRequest struct {
	HotelID    string `json:"hotel_id"      validate:"required"`
	RoomTypeID string `json:"room_type_id"  validate:"required"`
	CheckIn    string `json:"check_in_date"  validate:"required"`
	CheckOut   string `json:"check_out_date" validate:"required"`
	Adults     int    `json:"adults"   validate:"gte=0"`
	Children   int    `json:"children" validate:"gte=0"`
	Rooms      int    `json:"rooms"    validate:"gte=0"`

	// Guest overrides; blank fields fall back to the caller's profile.
	GuestFirstName string `json:"guest_first_name,omitempty"`
	GuestLastName  string `json:"guest_last_name,omitempty"`
	GuestEmail     string `json:"guest_email,omitempty"   validate:"omitempty,email"`
	GuestPhone     string `json:"guest_phone,omitempty"`

	PaymentMethod string `json:"payment_method,omitempty" validate:"omitempty,oneof=CREDIT_CARD UPI NET_BANKING"`
}

// updateBookingRequest uses pointers so a partial update can tell "field not
// sent" (nil) apart from an explicit value.
type updateBookingRequest struct {
	CheckIn  *string `json:"check_in_date,omitempty"`
	CheckOut *string `json:"check_out_date,omitempty"`
	Adults   *int    `json:"adults,omitempty"   validate:"omitempty,gte=1"`
	Children *int    `json:"children,omitempty" validate:"omitempty,gte=0"`
	Rooms    *int    `json:"rooms,omitempty"    validate:"omitempty,gte=1"`
}

type bookingResponse struct {
	ID             string `json:"id"`
	BookingRef     string `json:"booking_reference"`
	HotelName      string `json:"hotel_name"`
	HotelCity      string `json:"hotel_city"`
	RoomTypeName   string `json:"room_type_name"`
	CheckIn        string `json:"check_in_date"`
	CheckOut       string `json:"check_out_date"`
	Adults         int    `json:"adults"`
	Children       int    `json:"children"`
	Rooms          int    `json:"rooms"`
	TotalPrice     string `json:"total_price"`
	Status         string `json:"status"`
	BookingDate    string `json:"booking_date"`
	GuestFirstName string `json:"guest_first_name"`
	GuestLastName  string `json:"guest_last_name"`
	GuestEmail     string `json:"guest_email"`
	GuestPhone     string `json:"guest_phone"`
	PaymentStatus  string `json:"payment_status"`
	PaymentMethod  string `json:"payment_method"`
	TransactionID  string `json:"transaction_id"`
}

type statusMessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// centsToPrice renders integer cents as a decimal string. Formatting is the
// only place money leaves integer arithmetic.
func centsToPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// parseDate parses a wire date into a UTC-midnight day value.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}
