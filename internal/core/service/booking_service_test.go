package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/stayhub/hotel-booking/internal/core/domain"
	"github.com/stayhub/hotel-booking/internal/core/ports"
)

type stubBookingRepo struct {
	bookings map[string]*domain.Booking
	nextID   int
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	copy := cloneBooking(b)
	r.nextID++
	copy.ID = fmt.Sprintf("booking_%d", r.nextID)
	r.bookings[copy.ID] = cloneBooking(copy)
	return cloneBooking(copy), nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	if b, ok := r.bookings[id]; ok {
		return cloneBooking(b), nil
	}
	return nil, domain.ErrBookingNotFound
}

func (r *stubBookingRepo) Update(_ context.Context, b *domain.Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return domain.ErrBookingNotFound
	}
	r.bookings[b.ID] = cloneBooking(b)
	return nil
}

func (r *stubBookingRepo) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, cloneBooking(b))
		}
	}
	return out, nil
}

func (r *stubBookingRepo) ListAll(_ context.Context) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		out = append(out, cloneBooking(b))
	}
	return out, nil
}

func (r *stubBookingRepo) ListByHotel(_ context.Context, hotelID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.HotelID == hotelID {
			out = append(out, cloneBooking(b))
		}
	}
	return out, nil
}

func (r *stubBookingRepo) ListByPaymentStatus(_ context.Context, status domain.PaymentStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.PaymentStatus == status {
			out = append(out, cloneBooking(b))
		}
	}
	return out, nil
}

func (r *stubBookingRepo) CountOverlappingRooms(_ context.Context, hotelID, roomTypeID string, checkIn, checkOut time.Time, excludeBookingID string) (int64, error) {
	var taken int64
	for _, b := range r.bookings {
		if b.ID == excludeBookingID {
			continue
		}
		if b.HotelID != hotelID || b.RoomTypeID != roomTypeID || b.Status == domain.BookingCancelled {
			continue
		}
		if b.Overlaps(checkIn, checkOut) {
			taken += int64(b.Rooms)
		}
	}
	return taken, nil
}

type stubHotelRepo struct {
	hotels map[string]*domain.Hotel
}

func (r *stubHotelRepo) Create(_ context.Context, h *domain.Hotel) (*domain.Hotel, error) {
	r.hotels[h.ID] = h
	return h, nil
}

func (r *stubHotelRepo) FindByID(_ context.Context, id string) (*domain.Hotel, error) {
	if h, ok := r.hotels[id]; ok {
		return h, nil
	}
	return nil, domain.ErrHotelNotFound
}

func (r *stubHotelRepo) Update(_ context.Context, h *domain.Hotel) error {
	r.hotels[h.ID] = h
	return nil
}

func (r *stubHotelRepo) List(_ context.Context) ([]*domain.Hotel, error) {
	var out []*domain.Hotel
	for _, h := range r.hotels {
		out = append(out, h)
	}
	return out, nil
}

func (r *stubHotelRepo) Search(_ context.Context, city, state string) ([]*domain.Hotel, error) {
	return r.List(context.Background())
}

func (r *stubHotelRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Hotel, error) {
	var out []*domain.Hotel
	for _, h := range r.hotels {
		if h.OwnerID == ownerID {
			out = append(out, h)
		}
	}
	return out, nil
}

type stubRoomTypeRepo struct {
	roomTypes map[string]*domain.RoomType
}

func (r *stubRoomTypeRepo) Create(_ context.Context, rt *domain.RoomType) (*domain.RoomType, error) {
	r.roomTypes[rt.ID] = rt
	return rt, nil
}

func (r *stubRoomTypeRepo) FindByID(_ context.Context, id string) (*domain.RoomType, error) {
	if rt, ok := r.roomTypes[id]; ok {
		return rt, nil
	}
	return nil, domain.ErrRoomTypeNotFound
}

func (r *stubRoomTypeRepo) Update(_ context.Context, rt *domain.RoomType) error {
	r.roomTypes[rt.ID] = rt
	return nil
}

func (r *stubRoomTypeRepo) ListByHotel(_ context.Context, hotelID string) ([]*domain.RoomType, error) {
	var out []*domain.RoomType
	for _, rt := range r.roomTypes {
		if rt.HotelID == hotelID {
			out = append(out, rt)
		}
	}
	return out, nil
}

// stubRoomHold tracks holds in memory. Setting busy simulates another request
// owning the range.
type stubRoomHold struct {
	busy     bool
	acquired int
	released int
}

func (h *stubRoomHold) Acquire(_ context.Context, _ string, _, _ time.Time) (bool, error) {
	if h.busy {
		return false, nil
	}
	h.acquired++
	return true, nil
}

func (h *stubRoomHold) Release(_ context.Context, _ string, _, _ time.Time) error {
	h.released++
	return nil
}

type bookingFixture struct {
	svc      *BookingService
	bookings *stubBookingRepo
	users    *stubUserRepo
	hold     *stubRoomHold
	today    time.Time
}

// newBookingFixture wires a service around one customer, one hotel, and one
// room type priced at 1000.00 per night with 5 rooms.
func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	users := newStubUserRepo()
	if _, err := users.Create(context.Background(), &domain.User{
		ID:        "user_1",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Doe",
		Phone:     "555-0100",
		Role:      domain.RoleCustomer,
		Status:    domain.StatusActive,
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	hotels := &stubHotelRepo{hotels: map[string]*domain.Hotel{
		"hotel_1": {ID: "hotel_1", Name: "Harborview Grand", City: "Mumbai", OwnerID: "manager_1"},
	}}
	roomTypes := &stubRoomTypeRepo{roomTypes: map[string]*domain.RoomType{
		"room_1": {ID: "room_1", HotelID: "hotel_1", Name: "Deluxe King", PriceCents: 1000_00, Capacity: 2, TotalRooms: 5},
	}}

	bookings := newStubBookingRepo()
	hold := &stubRoomHold{}
	svc := NewBookingService(bookings, users, hotels, roomTypes, hold, zerolog.Nop())

	today := domain.DateOnly(time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC))
	svc.now = func() time.Time { return today }

	return &bookingFixture{svc: svc, bookings: bookings, users: users, hold: hold, today: today}
}

func (f *bookingFixture) createInput() ports.CreateBookingInput {
	return ports.CreateBookingInput{
		UserID:     "user_1",
		HotelID:    "hotel_1",
		RoomTypeID: "room_1",
		CheckIn:    f.today.AddDate(0, 0, 7),
		CheckOut:   f.today.AddDate(0, 0, 10),
		Adults:     2,
		Rooms:      1,
	}
}

func TestBookingService_Create(t *testing.T) {
	f := newBookingFixture(t)

	view, err := f.svc.Create(context.Background(), f.createInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// 3 nights at 1000.00 for one room.
	if view.TotalCents != 3000_00 {
		t.Fatalf("expected total 300000 cents, got %d", view.TotalCents)
	}
	if view.Status != domain.BookingConfirmed {
		t.Fatalf("expected CONFIRMED, got %s", view.Status)
	}
	if view.PaymentStatus != domain.PaymentPending {
		t.Fatalf("expected PENDING payment, got %s", view.PaymentStatus)
	}
	if view.PaymentMethod != "CREDIT_CARD" {
		t.Fatalf("expected default payment method, got %s", view.PaymentMethod)
	}
	if !strings.HasPrefix(view.Reference, "HB-") || len(view.Reference) != 11 {
		t.Fatalf("unexpected reference format: %q", view.Reference)
	}
	if view.Reference != strings.ToUpper(view.Reference) {
		t.Fatalf("reference must be upper case: %q", view.Reference)
	}
	if !strings.HasPrefix(view.TransactionID, "TXN-") {
		t.Fatalf("unexpected transaction id: %q", view.TransactionID)
	}
	if view.HotelName != "Harborview Grand" || view.RoomTypeName != "Deluxe King" {
		t.Fatalf("unresolved catalog names: %q / %q", view.HotelName, view.RoomTypeName)
	}

	// Guest details default to the profile when not supplied.
	if view.GuestFirstName != "Alice" || view.GuestEmail != "alice@example.com" || view.GuestPhone != "555-0100" {
		t.Fatalf("guest defaults not applied: %+v", view)
	}

	if f.hold.acquired != 1 || f.hold.released != 1 {
		t.Fatalf("hold not acquired and released exactly once: %d/%d", f.hold.acquired, f.hold.released)
	}
}

func TestBookingService_Create_MultipliesRooms(t *testing.T) {
	f := newBookingFixture(t)

	in := f.createInput()
	in.Rooms = 2
	view, err := f.svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if view.TotalCents != 6000_00 {
		t.Fatalf("expected total 600000 cents for 3 nights x 2 rooms, got %d", view.TotalCents)
	}
}

func TestBookingService_Create_GuestOverrides(t *testing.T) {
	f := newBookingFixture(t)

	in := f.createInput()
	in.GuestFirstName = "Bob"
	in.GuestEmail = "bob@example.com"
	view, err := f.svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if view.GuestFirstName != "Bob" || view.GuestEmail != "bob@example.com" {
		t.Fatalf("guest overrides ignored: %+v", view)
	}
	// Unset fields still default to the profile.
	if view.GuestLastName != "Doe" {
		t.Fatalf("expected profile last name, got %q", view.GuestLastName)
	}
}

func TestBookingService_Create_DateValidation(t *testing.T) {
	f := newBookingFixture(t)

	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
	}{
		{"past check-in", f.today.AddDate(0, 0, -1), f.today.AddDate(0, 0, 2)},
		{"check-out equals check-in", f.today.AddDate(0, 0, 7), f.today.AddDate(0, 0, 7)},
		{"check-out before check-in", f.today.AddDate(0, 0, 7), f.today.AddDate(0, 0, 5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := f.createInput()
			in.CheckIn = tc.checkIn
			in.CheckOut = tc.checkOut
			if _, err := f.svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidDates) {
				t.Fatalf("expected ErrInvalidDates, got %v", err)
			}
		})
	}
}

func TestBookingService_Create_SameDayCheckIn(t *testing.T) {
	f := newBookingFixture(t)

	in := f.createInput()
	in.CheckIn = f.today
	in.CheckOut = f.today.AddDate(0, 0, 1)
	if _, err := f.svc.Create(context.Background(), in); err != nil {
		t.Fatalf("same-day check-in must be allowed: %v", err)
	}
}

func TestBookingService_Create_NegativeCounts(t *testing.T) {
	f := newBookingFixture(t)

	in := f.createInput()
	in.Adults = -1
	if _, err := f.svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidOccupancy) {
		t.Fatalf("expected ErrInvalidOccupancy for negative adults, got %v", err)
	}
}

func TestBookingService_Create_NoAvailability(t *testing.T) {
	f := newBookingFixture(t)

	// Fill all 5 rooms for the requested range.
	in := f.createInput()
	in.Rooms = 5
	if _, err := f.svc.Create(context.Background(), in); err != nil {
		t.Fatalf("filling booking failed: %v", err)
	}

	in = f.createInput()
	in.Rooms = 1
	if _, err := f.svc.Create(context.Background(), in); !errors.Is(err, domain.ErrRoomUnavailable) {
		t.Fatalf("expected ErrRoomUnavailable, got %v", err)
	}
}

func TestBookingService_Create_BackToBackStaysAllowed(t *testing.T) {
	f := newBookingFixture(t)

	in := f.createInput()
	in.Rooms = 5
	if _, err := f.svc.Create(context.Background(), in); err != nil {
		t.Fatalf("filling booking failed: %v", err)
	}

	// Check in the day the filling booking checks out.
	next := f.createInput()
	next.CheckIn = in.CheckOut
	next.CheckOut = in.CheckOut.AddDate(0, 0, 2)
	next.Rooms = 5
	if _, err := f.svc.Create(context.Background(), next); err != nil {
		t.Fatalf("back-to-back stay must be allowed: %v", err)
	}
}

func TestBookingService_Create_CancelledBookingsFreeRooms(t *testing.T) {
	f := newBookingFixture(t)

	in := f.createInput()
	in.Rooms = 5
	view, err := f.svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("filling booking failed: %v", err)
	}
	if err := f.svc.Cancel(context.Background(), view.ID, "user_1"); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}

	in = f.createInput()
	if _, err := f.svc.Create(context.Background(), in); err != nil {
		t.Fatalf("cancelled booking must not block availability: %v", err)
	}
}

func TestBookingService_Create_HoldContention(t *testing.T) {
	f := newBookingFixture(t)
	f.hold.busy = true

	if _, err := f.svc.Create(context.Background(), f.createInput()); !errors.Is(err, domain.ErrRoomUnavailable) {
		t.Fatalf("expected ErrRoomUnavailable under contention, got %v", err)
	}
	if len(f.bookings.bookings) != 0 {
		t.Fatal("no booking may be written under contention")
	}
}

func TestBookingService_Create_RoomTypeOfOtherHotel(t *testing.T) {
	f := newBookingFixture(t)

	f.svc.roomTypes.(*stubRoomTypeRepo).roomTypes["room_other"] = &domain.RoomType{
		ID: "room_other", HotelID: "hotel_other", Name: "Suite", PriceCents: 500_00, TotalRooms: 2,
	}

	in := f.createInput()
	in.RoomTypeID = "room_other"
	if _, err := f.svc.Create(context.Background(), in); !errors.Is(err, domain.ErrRoomTypeNotFound) {
		t.Fatalf("expected ErrRoomTypeNotFound for mismatched hotel, got %v", err)
	}
}

func TestBookingService_Update(t *testing.T) {
	f := newBookingFixture(t)

	view, err := f.svc.Create(context.Background(), f.createInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// Extend the stay by two nights: 5 nights x 1000.00.
	newOut := f.today.AddDate(0, 0, 12)
	updated, err := f.svc.Update(context.Background(), view.ID, ports.UpdateBookingInput{CheckOut: &newOut}, "user_1")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.TotalCents != 5000_00 {
		t.Fatalf("expected recomputed total 500000 cents, got %d", updated.TotalCents)
	}
	if updated.Reference != view.Reference {
		t.Fatal("reference must not change on update")
	}
	if updated.TransactionID != view.TransactionID {
		t.Fatal("transaction id must not change on update")
	}
}

func TestBookingService_Update_NotOwner(t *testing.T) {
	f := newBookingFixture(t)

	view, err := f.svc.Create(context.Background(), f.createInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	rooms := 2
	if _, err := f.svc.Update(context.Background(), view.ID, ports.UpdateBookingInput{Rooms: &rooms}, "user_2"); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestBookingService_Update_CancelledBooking(t *testing.T) {
	f := newBookingFixture(t)

	view, err := f.svc.Create(context.Background(), f.createInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := f.svc.Cancel(context.Background(), view.ID, "user_1"); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}

	rooms := 2
	if _, err := f.svc.Update(context.Background(), view.ID, ports.UpdateBookingInput{Rooms: &rooms}, "user_1"); !errors.Is(err, domain.ErrBookingCancelled) {
		t.Fatalf("expected ErrBookingCancelled, got %v", err)
	}
}

func TestBookingService_Update_NoAvailability(t *testing.T) {
	f := newBookingFixture(t)

	// Fill all 5 rooms for the default range.
	for i := 0; i < 5; i++ {
		if _, err := f.svc.Create(context.Background(), f.createInput()); err != nil {
			t.Fatalf("Create %d returned error: %v", i, err)
		}
	}

	// Book a free range, then try to move onto the full one.
	in := f.createInput()
	in.CheckIn = f.today.AddDate(0, 0, 20)
	in.CheckOut = f.today.AddDate(0, 0, 23)
	view, err := f.svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create on free range returned error: %v", err)
	}

	fullIn := f.today.AddDate(0, 0, 7)
	fullOut := f.today.AddDate(0, 0, 10)
	if _, err := f.svc.Update(context.Background(), view.ID, ports.UpdateBookingInput{CheckIn: &fullIn, CheckOut: &fullOut}, "user_1"); !errors.Is(err, domain.ErrRoomUnavailable) {
		t.Fatalf("expected ErrRoomUnavailable moving onto a full range, got %v", err)
	}

	stored, err := f.bookings.FindByID(context.Background(), view.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if !stored.CheckIn.Equal(domain.DateOnly(in.CheckIn)) {
		t.Fatal("rejected update must leave the stored dates unchanged")
	}
}

func TestBookingService_Update_OwnRoomsDoNotBlock(t *testing.T) {
	f := newBookingFixture(t)

	var first string
	for i := 0; i < 5; i++ {
		view, err := f.svc.Create(context.Background(), f.createInput())
		if err != nil {
			t.Fatalf("Create %d returned error: %v", i, err)
		}
		if i == 0 {
			first = view.ID
		}
	}

	// The range is full, but re-confirming this booking's own room must not
	// count against it.
	rooms := 1
	if _, err := f.svc.Update(context.Background(), first, ports.UpdateBookingInput{Rooms: &rooms}, "user_1"); err != nil {
		t.Fatalf("Update of own booking on a full range returned error: %v", err)
	}
}

func TestBookingService_Update_HoldContention(t *testing.T) {
	f := newBookingFixture(t)

	view, err := f.svc.Create(context.Background(), f.createInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	f.hold.busy = true
	rooms := 2
	if _, err := f.svc.Update(context.Background(), view.ID, ports.UpdateBookingInput{Rooms: &rooms}, "user_1"); !errors.Is(err, domain.ErrRoomUnavailable) {
		t.Fatalf("expected ErrRoomUnavailable under contention, got %v", err)
	}

	stored, err := f.bookings.FindByID(context.Background(), view.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if stored.Rooms != 1 {
		t.Fatal("rejected update must leave the stored room count unchanged")
	}
}

func TestBookingService_Cancel_Twice(t *testing.T) {
	f := newBookingFixture(t)

	view, err := f.svc.Create(context.Background(), f.createInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := f.svc.Cancel(context.Background(), view.ID, "user_1"); err != nil {
		t.Fatalf("first Cancel returned error: %v", err)
	}
	if err := f.svc.Cancel(context.Background(), view.ID, "user_1"); !errors.Is(err, domain.ErrBookingCancelled) {
		t.Fatalf("expected ErrBookingCancelled on repeat cancel, got %v", err)
	}

	stored, err := f.bookings.FindByID(context.Background(), view.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if stored.Status != domain.BookingCancelled {
		t.Fatalf("expected booking to stay CANCELLED, got %s", stored.Status)
	}
}

func TestBookingService_Cancel_NotOwner(t *testing.T) {
	f := newBookingFixture(t)

	view, err := f.svc.Create(context.Background(), f.createInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := f.svc.Cancel(context.Background(), view.ID, "user_2"); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestBookingService_SetStatus(t *testing.T) {
	f := newBookingFixture(t)

	view, err := f.svc.Create(context.Background(), f.createInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// The owning manager may complete the booking.
	updated, err := f.svc.SetStatus(context.Background(), view.ID, domain.BookingCompleted, ports.Caller{ID: "manager_1", Role: domain.RoleHotelManager})
	if err != nil {
		t.Fatalf("SetStatus returned error: %v", err)
	}
	if updated.Status != domain.BookingCompleted {
		t.Fatalf("expected COMPLETED, got %s", updated.Status)
	}

	// COMPLETED has no outgoing transitions.
	if _, err := f.svc.SetStatus(context.Background(), view.ID, domain.BookingCancelled, ports.Caller{ID: "admin_1", Role: domain.RoleAdmin}); !errors.Is(err, domain.ErrBookingCancelled) {
		t.Fatalf("expected transition rejection, got %v", err)
	}
}

func TestBookingService_SetStatus_ForeignManager(t *testing.T) {
	f := newBookingFixture(t)

	view, err := f.svc.Create(context.Background(), f.createInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := f.svc.SetStatus(context.Background(), view.ID, domain.BookingCompleted, ports.Caller{ID: "manager_2", Role: domain.RoleHotelManager}); !errors.Is(err, domain.ErrNotHotelOwner) {
		t.Fatalf("expected ErrNotHotelOwner, got %v", err)
	}
}

func TestBookingService_ListForHotel(t *testing.T) {
	f := newBookingFixture(t)

	if _, err := f.svc.Create(context.Background(), f.createInput()); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	views, err := f.svc.ListForHotel(context.Background(), "hotel_1", ports.Caller{ID: "manager_1", Role: domain.RoleHotelManager})
	if err != nil {
		t.Fatalf("ListForHotel returned error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(views))
	}

	if _, err := f.svc.ListForHotel(context.Background(), "hotel_1", ports.Caller{ID: "manager_2", Role: domain.RoleHotelManager}); !errors.Is(err, domain.ErrNotHotelOwner) {
		t.Fatalf("expected ErrNotHotelOwner, got %v", err)
	}

	if _, err := f.svc.ListForHotel(context.Background(), "hotel_1", ports.Caller{ID: "admin_1", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("admin ListForHotel returned error: %v", err)
	}
}

func TestBookingService_ListForUser(t *testing.T) {
	f := newBookingFixture(t)

	if _, err := f.svc.Create(context.Background(), f.createInput()); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	mine, err := f.svc.ListForUser(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("ListForUser returned error: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(mine))
	}

	other, err := f.svc.ListForUser(context.Background(), "user_2")
	if err != nil {
		t.Fatalf("ListForUser returned error: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected no bookings for other user, got %d", len(other))
	}
}
