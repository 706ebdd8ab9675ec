package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/stayhub/hotel-booking/internal/api/metrics"
	"github.com/stayhub/hotel-booking/internal/core/domain"
	"github.com/stayhub/hotel-booking/internal/core/ports"
)

const defaultPaymentMethod = "CREDIT_CARD"

// BookingService is the reservation engine: the booking state machine and its
// guarded mutations. Role authorization happens upstream; ownership is
// enforced here, per operation.
type BookingService struct {
	bookings  ports.BookingRepository
	users     ports.UserRepository
	hotels    ports.HotelRepository
	roomTypes ports.RoomTypeRepository
	holds     ports.RoomHold
	logger    zerolog.Logger
	now       func() time.Time
}

func NewBookingService(
	bookings ports.BookingRepository,
	users ports.UserRepository,
	hotels ports.HotelRepository,
	roomTypes ports.RoomTypeRepository,
	holds ports.RoomHold,
	logger zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		users:     users,
		hotels:    hotels,
		roomTypes: roomTypes,
		holds:     holds,
		logger:    logger,
		now:       time.Now,
	}
}

// Create reserves a room type for a date range. The write is a single insert:
// a request that fails anywhere before it leaves no partial record.
func (s *BookingService) Create(ctx context.Context, in ports.CreateBookingInput) (*ports.BookingView, error) {
	user, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	hotel, err := s.hotels.FindByID(ctx, in.HotelID)
	if err != nil {
		return nil, err
	}
	roomType, err := s.roomTypes.FindByID(ctx, in.RoomTypeID)
	if err != nil {
		return nil, err
	}
	if roomType.HotelID != hotel.ID {
		return nil, domain.ErrRoomTypeNotFound
	}

	checkIn := domain.DateOnly(in.CheckIn)
	checkOut := domain.DateOnly(in.CheckOut)
	today := domain.DateOnly(s.now())
	if checkIn.Before(today) {
		return nil, fmt.Errorf("%w: check-in cannot be in the past", domain.ErrInvalidDates)
	}
	if domain.NightsBetween(checkIn, checkOut) < 1 {
		return nil, fmt.Errorf("%w: check-out must be at least one day after check-in", domain.ErrInvalidDates)
	}
	if in.Adults < 0 || in.Children < 0 || in.Rooms < 0 {
		return nil, fmt.Errorf("%w: counts cannot be negative", domain.ErrInvalidOccupancy)
	}

	adults := in.Adults
	if adults == 0 {
		adults = 1
	}
	rooms := in.Rooms
	if rooms == 0 {
		rooms = 1
	}

	// Hold the room type and date range while we check availability and
	// insert, so two concurrent requests cannot both pass the count below.
	ok, err := s.holds.Acquire(ctx, roomType.ID, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("acquire room hold: %w", err)
	}
	if !ok {
		metrics.BookingsRejectedTotal.WithLabelValues("contention").Inc()
		return nil, domain.ErrRoomUnavailable
	}
	defer func() {
		if relErr := s.holds.Release(ctx, roomType.ID, checkIn, checkOut); relErr != nil {
			s.logger.Warn().Err(relErr).Str("room_type_id", roomType.ID).Msg("failed to release room hold")
		}
	}()

	taken, err := s.bookings.CountOverlappingRooms(ctx, hotel.ID, roomType.ID, checkIn, checkOut, "")
	if err != nil {
		return nil, fmt.Errorf("availability check: %w", err)
	}
	if taken+int64(rooms) > int64(roomType.TotalRooms) {
		metrics.BookingsRejectedTotal.WithLabelValues("no_availability").Inc()
		return nil, domain.ErrRoomUnavailable
	}

	nights := domain.NightsBetween(checkIn, checkOut)
	totalCents := roomType.PriceCents * int64(nights) * int64(rooms)

	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	booking := &domain.Booking{
		Reference:      newBookingReference(),
		UserID:         user.ID,
		HotelID:        hotel.ID,
		RoomTypeID:     roomType.ID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Adults:         adults,
		Children:       in.Children,
		Rooms:          rooms,
		TotalCents:     totalCents,
		Status:         domain.BookingConfirmed,
		PaymentStatus:  domain.PaymentPending,
		PaymentMethod:  paymentMethod,
		TransactionID:  newTransactionID(),
		GuestFirstName: firstNonEmpty(in.GuestFirstName, user.FirstName),
		GuestLastName:  firstNonEmpty(in.GuestLastName, user.LastName),
		GuestEmail:     firstNonEmpty(in.GuestEmail, user.Email),
		GuestPhone:     firstNonEmpty(in.GuestPhone, user.Phone),
		BookedAt:       s.now().UTC(),
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Str("hotel_id", hotel.ID).Msg("failed to persist booking")
		return nil, err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(paymentMethod).Inc()
	metrics.BookingAmountCents.Observe(float64(totalCents))
	s.logger.Info().
		Str("booking_reference", created.Reference).
		Str("user_id", user.ID).
		Str("hotel_id", hotel.ID).
		Int("nights", nights).
		Int64("total_cents", totalCents).
		Msg("booking created")

	return s.view(ctx, created), nil
}

// Update applies a partial edit to a CONFIRMED booking. Only fields present
// in the input change; the total price is recomputed from the resulting
// dates and room count. Reference, transaction id, and owner never change.
func (s *BookingService) Update(ctx context.Context, bookingID string, in ports.UpdateBookingInput, callerID string) (*ports.BookingView, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != callerID {
		return nil, domain.ErrNotOwner
	}
	if booking.Status != domain.BookingConfirmed {
		return nil, domain.ErrBookingCancelled
	}

	if in.CheckIn != nil {
		booking.CheckIn = domain.DateOnly(*in.CheckIn)
	}
	if in.CheckOut != nil {
		booking.CheckOut = domain.DateOnly(*in.CheckOut)
	}
	if in.Adults != nil {
		booking.Adults = *in.Adults
	}
	if in.Children != nil {
		booking.Children = *in.Children
	}
	if in.Rooms != nil {
		booking.Rooms = *in.Rooms
	}

	if domain.NightsBetween(booking.CheckIn, booking.CheckOut) < 1 {
		return nil, fmt.Errorf("%w: check-out must be at least one day after check-in", domain.ErrInvalidDates)
	}
	if booking.Adults < 1 || booking.Children < 0 || booking.Rooms < 1 {
		return nil, fmt.Errorf("%w: counts must be positive", domain.ErrInvalidOccupancy)
	}

	roomType, err := s.roomTypes.FindByID(ctx, booking.RoomTypeID)
	if err != nil {
		return nil, err
	}

	// Moving the stay or adding rooms competes for availability the same way
	// a new booking does, so the guard runs again with this booking left out
	// of the overlap sum.
	if in.CheckIn != nil || in.CheckOut != nil || in.Rooms != nil {
		ok, err := s.holds.Acquire(ctx, roomType.ID, booking.CheckIn, booking.CheckOut)
		if err != nil {
			return nil, fmt.Errorf("acquire room hold: %w", err)
		}
		if !ok {
			metrics.BookingsRejectedTotal.WithLabelValues("contention").Inc()
			return nil, domain.ErrRoomUnavailable
		}
		defer func() {
			if relErr := s.holds.Release(ctx, roomType.ID, booking.CheckIn, booking.CheckOut); relErr != nil {
				s.logger.Warn().Err(relErr).Str("room_type_id", roomType.ID).Msg("failed to release room hold")
			}
		}()

		taken, err := s.bookings.CountOverlappingRooms(ctx, booking.HotelID, roomType.ID, booking.CheckIn, booking.CheckOut, booking.ID)
		if err != nil {
			return nil, fmt.Errorf("availability check: %w", err)
		}
		if taken+int64(booking.Rooms) > int64(roomType.TotalRooms) {
			metrics.BookingsRejectedTotal.WithLabelValues("no_availability").Inc()
			return nil, domain.ErrRoomUnavailable
		}
	}

	booking.TotalCents = roomType.PriceCents * int64(booking.Nights()) * int64(booking.Rooms)

	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info().Str("booking_reference", booking.Reference).Msg("booking updated")
	return s.view(ctx, booking), nil
}

// Cancel marks a booking CANCELLED. CANCELLED is terminal: cancelling an
// already cancelled booking fails cleanly and changes nothing.
func (s *BookingService) Cancel(ctx context.Context, bookingID, callerID string) error {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != callerID {
		return domain.ErrNotOwner
	}
	if !booking.Status.CanTransitionTo(domain.BookingCancelled) {
		return domain.ErrBookingCancelled
	}

	booking.Status = domain.BookingCancelled
	if err := s.bookings.Update(ctx, booking); err != nil {
		return err
	}

	metrics.BookingsCancelledTotal.Inc()
	s.logger.Info().Str("booking_reference", booking.Reference).Msg("booking cancelled")
	return nil
}

// SetStatus drives administrative transitions. Hotel managers may only touch
// bookings of hotels they own; admins may touch any booking.
func (s *BookingService) SetStatus(ctx context.Context, bookingID string, next domain.BookingStatus, caller ports.Caller) (*ports.BookingView, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if caller.Role != domain.RoleAdmin {
		hotel, err := s.hotels.FindByID(ctx, booking.HotelID)
		if err != nil {
			return nil, err
		}
		if hotel.OwnerID != caller.ID {
			return nil, domain.ErrNotHotelOwner
		}
	}

	if !booking.Status.CanTransitionTo(next) {
		return nil, domain.ErrBookingCancelled
	}

	booking.Status = next
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}
	return s.view(ctx, booking), nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]ports.BookingView, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, bookings), nil
}

func (s *BookingService) ListAll(ctx context.Context) ([]ports.BookingView, error) {
	bookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, bookings), nil
}

// ListForHotel returns a hotel's bookings for its manager or an admin.
func (s *BookingService) ListForHotel(ctx context.Context, hotelID string, caller ports.Caller) ([]ports.BookingView, error) {
	hotel, err := s.hotels.FindByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if caller.Role != domain.RoleAdmin && hotel.OwnerID != caller.ID {
		return nil, domain.ErrNotHotelOwner
	}

	bookings, err := s.bookings.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, bookings), nil
}

func (s *BookingService) ListByPaymentStatus(ctx context.Context, status domain.PaymentStatus) ([]ports.BookingView, error) {
	bookings, err := s.bookings.ListByPaymentStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, bookings), nil
}

// view resolves hotel and room-type names for the response projection. A
// booking always outlives its catalog entries in the store, but if a lookup
// fails the name fields are simply left empty rather than failing the read.
func (s *BookingService) view(ctx context.Context, b *domain.Booking) *ports.BookingView {
	v := &ports.BookingView{
		ID:             b.ID,
		Reference:      b.Reference,
		CheckIn:        b.CheckIn,
		CheckOut:       b.CheckOut,
		Adults:         b.Adults,
		Children:       b.Children,
		Rooms:          b.Rooms,
		TotalCents:     b.TotalCents,
		Status:         b.Status,
		PaymentStatus:  b.PaymentStatus,
		PaymentMethod:  b.PaymentMethod,
		TransactionID:  b.TransactionID,
		GuestFirstName: b.GuestFirstName,
		GuestLastName:  b.GuestLastName,
		GuestEmail:     b.GuestEmail,
		GuestPhone:     b.GuestPhone,
		BookedAt:       b.BookedAt,
	}
	if hotel, err := s.hotels.FindByID(ctx, b.HotelID); err == nil {
		v.HotelName = hotel.Name
		v.HotelCity = hotel.City
	}
	if roomType, err := s.roomTypes.FindByID(ctx, b.RoomTypeID); err == nil {
		v.RoomTypeName = roomType.Name
	}
	return v
}

func (s *BookingService) views(ctx context.Context, bookings []*domain.Booking) []ports.BookingView {
	out := make([]ports.BookingView, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, *s.view(ctx, b))
	}
	return out
}

// newBookingReference returns a human-readable unique reference like
// HB-7A8B9C2D. Random, not sequential, so references cannot be enumerated.
func newBookingReference() string {
	return "HB-" + strings.ToUpper(uuid.NewString()[:8])
}

// newTransactionID returns an identifier like TXN-3F2A1B4C5D6E.
func newTransactionID() string {
	return "TXN-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
