package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/stayhub/hotel-booking/internal/core/domain"
	"github.com/stayhub/hotel-booking/internal/core/ports"
)

const hotelListCacheKey = "catalog:hotels"

// HotelService serves the public catalog and manager-owned catalog writes.
// List reads go through a cache-aside layer; every catalog write invalidates
// the list key.
type HotelService struct {
	hotels    ports.HotelRepository
	roomTypes ports.RoomTypeRepository
	cache     ports.CatalogCache
	viewed    ports.RecentlyViewed
	cacheTTL  time.Duration
	logger    zerolog.Logger
}

func NewHotelService(
	hotels ports.HotelRepository,
	roomTypes ports.RoomTypeRepository,
	cache ports.CatalogCache,
	viewed ports.RecentlyViewed,
	cacheTTL time.Duration,
	logger zerolog.Logger,
) *HotelService {
	if cacheTTL <= 0 {
		cacheTTL = 15 * time.Minute
	}
	return &HotelService{
		hotels:    hotels,
		roomTypes: roomTypes,
		cache:     cache,
		viewed:    viewed,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

func (s *HotelService) List(ctx context.Context) ([]*domain.Hotel, error) {
	var cached []*domain.Hotel
	if hit, err := s.cache.Get(ctx, hotelListCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	hotels, err := s.hotels.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, hotelListCacheKey, hotels, s.cacheTTL); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache hotel list")
	}
	return hotels, nil
}

func (s *HotelService) Search(ctx context.Context, city, state string) ([]*domain.Hotel, error) {
	return s.hotels.Search(ctx, city, state)
}

func (s *HotelService) Get(ctx context.Context, hotelID string) (*domain.Hotel, error) {
	return s.hotels.FindByID(ctx, hotelID)
}

func (s *HotelService) Rooms(ctx context.Context, hotelID string) ([]*domain.RoomType, error) {
	if _, err := s.hotels.FindByID(ctx, hotelID); err != nil {
		return nil, err
	}
	return s.roomTypes.ListByHotel(ctx, hotelID)
}

func (s *HotelService) CreateHotel(ctx context.Context, in ports.HotelInput, ownerID string) (*domain.Hotel, error) {
	hotel := &domain.Hotel{
		Name:        in.Name,
		Description: in.Description,
		City:        in.City,
		State:       in.State,
		Address:     in.Address,
		StarRating:  in.StarRating,
		Amenities:   in.Amenities,
		Images:      in.Images,
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
	}
	created, err := s.hotels.Create(ctx, hotel)
	if err != nil {
		return nil, err
	}
	s.invalidateList(ctx)
	s.logger.Info().Str("hotel_id", created.ID).Str("owner_id", ownerID).Msg("hotel created")
	return created, nil
}

func (s *HotelService) UpdateHotel(ctx context.Context, hotelID string, in ports.HotelInput, ownerID string) (*domain.Hotel, error) {
	hotel, err := s.ownedHotel(ctx, hotelID, ownerID)
	if err != nil {
		return nil, err
	}

	hotel.Name = in.Name
	hotel.Description = in.Description
	hotel.City = in.City
	hotel.State = in.State
	hotel.Address = in.Address
	hotel.StarRating = in.StarRating
	hotel.Amenities = in.Amenities
	hotel.Images = in.Images

	if err := s.hotels.Update(ctx, hotel); err != nil {
		return nil, err
	}
	s.invalidateList(ctx)
	return hotel, nil
}

func (s *HotelService) ListOwnerHotels(ctx context.Context, ownerID string) ([]*domain.Hotel, error) {
	return s.hotels.ListByOwner(ctx, ownerID)
}

func (s *HotelService) AddRoomType(ctx context.Context, hotelID string, in ports.RoomTypeInput, ownerID string) (*domain.RoomType, error) {
	if _, err := s.ownedHotel(ctx, hotelID, ownerID); err != nil {
		return nil, err
	}
	rt := &domain.RoomType{
		HotelID:    hotelID,
		Name:       in.Name,
		PriceCents: in.PriceCents,
		Capacity:   in.Capacity,
		TotalRooms: in.TotalRooms,
		Amenities:  in.Amenities,
	}
	return s.roomTypes.Create(ctx, rt)
}

func (s *HotelService) UpdateRoomType(ctx context.Context, hotelID, roomTypeID string, in ports.RoomTypeInput, ownerID string) (*domain.RoomType, error) {
	if _, err := s.ownedHotel(ctx, hotelID, ownerID); err != nil {
		return nil, err
	}
	rt, err := s.roomTypes.FindByID(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}
	if rt.HotelID != hotelID {
		return nil, domain.ErrRoomTypeNotFound
	}

	rt.Name = in.Name
	rt.PriceCents = in.PriceCents
	rt.Capacity = in.Capacity
	rt.TotalRooms = in.TotalRooms
	rt.Amenities = in.Amenities

	if err := s.roomTypes.Update(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *HotelService) RecordView(ctx context.Context, userID, hotelID string) error {
	return s.viewed.Record(ctx, userID, hotelID)
}

func (s *HotelService) ViewedHotels(ctx context.Context, userID string) ([]*domain.Hotel, error) {
	ids, err := s.viewed.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	hotels := make([]*domain.Hotel, 0, len(ids))
	for _, id := range ids {
		// A stale entry for a removed hotel is skipped, not an error.
		if h, err := s.hotels.FindByID(ctx, id); err == nil {
			hotels = append(hotels, h)
		}
	}
	return hotels, nil
}

func (s *HotelService) ownedHotel(ctx context.Context, hotelID, ownerID string) (*domain.Hotel, error) {
	hotel, err := s.hotels.FindByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if hotel.OwnerID != ownerID {
		return nil, domain.ErrNotHotelOwner
	}
	return hotel, nil
}

func (s *HotelService) invalidateList(ctx context.Context) {
	if err := s.cache.Del(ctx, hotelListCacheKey); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate hotel list cache")
	}
}
