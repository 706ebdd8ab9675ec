package ports

import (
	"context"

	"github.com/stayhub/hotel-booking/internal/core/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) (*domain.Review, error)
	ListByHotel(ctx context.Context, hotelID string) ([]*domain.Review, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Review, error)
}

type ComplaintRepository interface {
	Create(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error)
	FindByID(ctx context.Context, id string) (*domain.Complaint, error)
	Update(ctx context.Context, c *domain.Complaint) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Complaint, error)
	ListAll(ctx context.Context) ([]*domain.Complaint, error)
}

type ReviewService interface {
	// Create stores the review and folds the rating into the hotel's running
	// average.
	Create(ctx context.Context, hotelID string, rating int, comment string, callerID string) (*domain.Review, error)
	ListByHotel(ctx context.Context, hotelID string) ([]*domain.Review, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Review, error)
}

// ComplaintUpdate carries an admin's resolution. AdminNote is a pointer so an
// update can clear a previously set note (empty string) or leave it untouched
// (nil).
type ComplaintUpdate struct {
	Status    domain.ComplaintStatus
	AdminNote *string
}

type ComplaintService interface {
	Create(ctx context.Context, subject, details, bookingRef, callerID string) (*domain.Complaint, error)
	ListOwn(ctx context.Context, callerID string) ([]*domain.Complaint, error)
	ListAll(ctx context.Context) ([]*domain.Complaint, error)
	Resolve(ctx context.Context, complaintID string, upd ComplaintUpdate) (*domain.Complaint, error)
}
