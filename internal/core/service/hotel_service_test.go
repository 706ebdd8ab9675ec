package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/stayhub/hotel-booking/internal/core/domain"
	"github.com/stayhub/hotel-booking/internal/core/ports"
)

// stubCache stores marshalled JSON like the real Redis adapter does.
type stubCache struct {
	entries map[string][]byte
	gets    int
	hits    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (c *stubCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.gets++
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	c.hits++
	return true, nil
}

func (c *stubCache) Set(_ context.Context, key string, v any, _ time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *stubCache) Del(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

type stubViewed struct {
	lists map[string][]string
}

func (v *stubViewed) Record(_ context.Context, userID, hotelID string) error {
	list := v.lists[userID]
	out := []string{hotelID}
	for _, id := range list {
		if id != hotelID {
			out = append(out, id)
		}
	}
	v.lists[userID] = out
	return nil
}

func (v *stubViewed) List(_ context.Context, userID string) ([]string, error) {
	return v.lists[userID], nil
}

func newHotelFixture() (*HotelService, *stubHotelRepo, *stubCache, *stubViewed) {
	hotels := &stubHotelRepo{hotels: map[string]*domain.Hotel{
		"hotel_1": {ID: "hotel_1", Name: "Harborview Grand", City: "Mumbai", OwnerID: "manager_1"},
	}}
	roomTypes := &stubRoomTypeRepo{roomTypes: map[string]*domain.RoomType{
		"room_1": {ID: "room_1", HotelID: "hotel_1", Name: "Deluxe King", PriceCents: 1000_00, TotalRooms: 5},
	}}
	cache := newStubCache()
	viewed := &stubViewed{lists: make(map[string][]string)}
	svc := NewHotelService(hotels, roomTypes, cache, viewed, time.Minute, zerolog.Nop())
	return svc, hotels, cache, viewed
}

func TestHotelService_List_CacheAside(t *testing.T) {
	svc, _, cache, _ := newHotelFixture()

	first, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 hotel, got %d", len(first))
	}
	if cache.hits != 0 {
		t.Fatal("first read must miss the cache")
	}

	second, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("second read must hit the cache, hits=%d", cache.hits)
	}
	if len(second) != 1 || second[0].Name != "Harborview Grand" {
		t.Fatalf("cached result corrupted: %+v", second)
	}
}

func TestHotelService_CreateHotel_InvalidatesCache(t *testing.T) {
	svc, _, cache, _ := newHotelFixture()

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(cache.entries) != 1 {
		t.Fatal("expected list to be cached")
	}

	created, err := svc.CreateHotel(context.Background(), ports.HotelInput{Name: "Cedar Court Inn", City: "Pune"}, "manager_1")
	if err != nil {
		t.Fatalf("CreateHotel returned error: %v", err)
	}
	if created.OwnerID != "manager_1" {
		t.Fatalf("owner not set: %+v", created)
	}
	if len(cache.entries) != 0 {
		t.Fatal("catalog write must invalidate the list cache")
	}
}

func TestHotelService_UpdateHotel_Ownership(t *testing.T) {
	svc, _, _, _ := newHotelFixture()

	in := ports.HotelInput{Name: "Renamed", City: "Mumbai"}
	if _, err := svc.UpdateHotel(context.Background(), "hotel_1", in, "manager_2"); !errors.Is(err, domain.ErrNotHotelOwner) {
		t.Fatalf("expected ErrNotHotelOwner, got %v", err)
	}

	updated, err := svc.UpdateHotel(context.Background(), "hotel_1", in, "manager_1")
	if err != nil {
		t.Fatalf("UpdateHotel returned error: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestHotelService_AddRoomType_Ownership(t *testing.T) {
	svc, _, _, _ := newHotelFixture()

	in := ports.RoomTypeInput{Name: "Suite", PriceCents: 2000_00, Capacity: 4, TotalRooms: 3}
	if _, err := svc.AddRoomType(context.Background(), "hotel_1", in, "manager_2"); !errors.Is(err, domain.ErrNotHotelOwner) {
		t.Fatalf("expected ErrNotHotelOwner, got %v", err)
	}
	if _, err := svc.AddRoomType(context.Background(), "hotel_1", in, "manager_1"); err != nil {
		t.Fatalf("AddRoomType returned error: %v", err)
	}
}

func TestHotelService_UpdateRoomType_WrongHotel(t *testing.T) {
	svc, hotels, _, _ := newHotelFixture()
	hotels.hotels["hotel_2"] = &domain.Hotel{ID: "hotel_2", Name: "Cedar Court Inn", OwnerID: "manager_1"}

	in := ports.RoomTypeInput{Name: "Suite", PriceCents: 2000_00, Capacity: 4, TotalRooms: 3}
	if _, err := svc.UpdateRoomType(context.Background(), "hotel_2", "room_1", in, "manager_1"); !errors.Is(err, domain.ErrRoomTypeNotFound) {
		t.Fatalf("expected ErrRoomTypeNotFound for room of another hotel, got %v", err)
	}
}

func TestHotelService_ViewedHotels(t *testing.T) {
	svc, _, _, _ := newHotelFixture()

	if err := svc.RecordView(context.Background(), "user_1", "hotel_1"); err != nil {
		t.Fatalf("RecordView returned error: %v", err)
	}
	// A stale id for a removed hotel is skipped.
	if err := svc.RecordView(context.Background(), "user_1", "hotel_gone"); err != nil {
		t.Fatalf("RecordView returned error: %v", err)
	}

	hotels, err := svc.ViewedHotels(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("ViewedHotels returned error: %v", err)
	}
	if len(hotels) != 1 || hotels[0].ID != "hotel_1" {
		t.Fatalf("unexpected viewed hotels: %+v", hotels)
	}
}
