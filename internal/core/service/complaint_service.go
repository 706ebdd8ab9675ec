package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/stayhub/hotel-booking/internal/core/domain"
	"github.com/stayhub/hotel-booking/internal/core/ports"
)

type ComplaintService struct {
	complaints ports.ComplaintRepository
	logger     zerolog.Logger
}

func NewComplaintService(complaints ports.ComplaintRepository, logger zerolog.Logger) *ComplaintService {
	return &ComplaintService{complaints: complaints, logger: logger}
}

func (s *ComplaintService) Create(ctx context.Context, subject, details, bookingRef, callerID string) (*domain.Complaint, error) {
	now := time.Now().UTC()
	c := &domain.Complaint{
		UserID:     callerID,
		BookingRef: bookingRef,
		Subject:    subject,
		Details:    details,
		Status:     domain.ComplaintOpen,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := s.complaints.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("complaint_id", created.ID).Str("user_id", callerID).Msg("complaint filed")
	return created, nil
}

func (s *ComplaintService) ListOwn(ctx context.Context, callerID string) ([]*domain.Complaint, error) {
	return s.complaints.ListByUser(ctx, callerID)
}

func (s *ComplaintService) ListAll(ctx context.Context) ([]*domain.Complaint, error) {
	return s.complaints.ListAll(ctx)
}

// Resolve applies an admin's status change. AdminNote follows the partial
// update convention: nil leaves the note untouched, an empty string clears it.
func (s *ComplaintService) Resolve(ctx context.Context, complaintID string, upd ports.ComplaintUpdate) (*domain.Complaint, error) {
	c, err := s.complaints.FindByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	c.Status = upd.Status
	if upd.AdminNote != nil {
		c.AdminNote = *upd.AdminNote
	}
	c.UpdatedAt = time.Now().UTC()

	if err := s.complaints.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
