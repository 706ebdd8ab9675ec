package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/stayhub/hotel-booking/internal/core/domain"
	"github.com/stayhub/hotel-booking/internal/core/ports"
)

// ReviewService stores guest reviews and keeps each hotel's running average
// rating current.
type ReviewService struct {
	reviews ports.ReviewRepository
	hotels  ports.HotelRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, hotels ports.HotelRepository, users ports.UserRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, hotels: hotels, users: users, logger: logger}
}

func (s *ReviewService) Create(ctx context.Context, hotelID string, rating int, comment string, callerID string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	user, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	hotel, err := s.hotels.FindByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	review := &domain.Review{
		HotelID:   hotel.ID,
		UserID:    user.ID,
		UserName:  strings.TrimSpace(user.FirstName + " " + user.LastName),
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	// Fold the new rating into the running average. A failure here leaves the
	// review in place and only the aggregate stale.
	total := hotel.Rating*float64(hotel.RatingCount) + float64(rating)
	hotel.RatingCount++
	hotel.Rating = total / float64(hotel.RatingCount)
	if err := s.hotels.Update(ctx, hotel); err != nil {
		s.logger.Warn().Err(err).Str("hotel_id", hotel.ID).Msg("failed to update hotel rating aggregate")
	}

	return created, nil
}

func (s *ReviewService) ListByHotel(ctx context.Context, hotelID string) ([]*domain.Review, error) {
	return s.reviews.ListByHotel(ctx, hotelID)
}

func (s *ReviewService) ListByUser(ctx context.Context, userID string) ([]*domain.Review, error) {
	return s.reviews.ListByUser(ctx, userID)
}
