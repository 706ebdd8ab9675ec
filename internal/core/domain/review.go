package domain

import (
	"errors"
	"time"
)

var ErrReviewNotFound = errors.New("review not found")
var ErrComplaintNotFound = errors.New("complaint not found")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Review is a guest's rating of a hotel.
type Review struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	HotelID   string    `json:"hotel_id" bson:"hotel_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	UserName  string    `json:"user_name" bson:"user_name"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// ComplaintStatus tracks complaint handling.
type ComplaintStatus string

const (
	ComplaintOpen     ComplaintStatus = "OPEN"
	ComplaintResolved ComplaintStatus = "RESOLVED"
)

// Complaint is a guest-filed issue, optionally tied to a booking.
type Complaint struct {
	ID         string          `json:"id" bson:"_id,omitempty"`
	UserID     string          `json:"user_id" bson:"user_id"`
	BookingRef string          `json:"booking_reference,omitempty" bson:"booking_reference,omitempty"`
	Subject    string          `json:"subject" bson:"subject"`
	Details    string          `json:"details" bson:"details"`
	Status     ComplaintStatus `json:"status" bson:"status"`
	AdminNote  string          `json:"admin_note,omitempty" bson:"admin_note,omitempty"`
	CreatedAt  time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" bson:"updated_at"`
}
