// Package seed loads a small fixed data set for local development: one
// account per role, two hotels with room types. Loading is idempotent; users
// that already exist are left alone, and hotels are matched by name.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/stayhub/hotel-booking/internal/core/domain"
	"github.com/stayhub/hotel-booking/internal/core/ports"
)

type Loader struct {
	users     ports.UserRepository
	hotels    ports.HotelRepository
	roomTypes ports.RoomTypeRepository
	logger    zerolog.Logger
}

func NewLoader(users ports.UserRepository, hotels ports.HotelRepository, roomTypes ports.RoomTypeRepository, logger zerolog.Logger) *Loader {
	return &Loader{users: users, hotels: hotels, roomTypes: roomTypes, logger: logger}
}

type seedUser struct {
	email     string
	password  string
	firstName string
	lastName  string
	role      string
}

var seedUsers = []seedUser{
	{"admin@stayhub.dev", "admin12345", "Site", "Admin", domain.RoleAdmin},
	{"manager@stayhub.dev", "manager12345", "Maya", "Torres", domain.RoleHotelManager},
	{"guest@stayhub.dev", "guest12345", "Sam", "Reyes", domain.RoleCustomer},
}

type seedRoomType struct {
	name       string
	priceCents int64
	capacity   int
	totalRooms int
}

type seedHotel struct {
	name       string
	city       string
	state      string
	address    string
	starRating int
	amenities  []string
	roomTypes  []seedRoomType
}

var seedHotels = []seedHotel{
	{
		name:       "Harborview Grand",
		city:       "Mumbai",
		state:      "Maharashtra",
		address:    "12 Marine Drive",
		starRating: 5,
		amenities:  []string{"wifi", "pool", "spa"},
		roomTypes: []seedRoomType{
			{"Deluxe King", 650_00, 2, 20},
			{"Harbor Suite", 1200_00, 4, 6},
		},
	},
	{
		name:       "Cedar Court Inn",
		city:       "Pune",
		state:      "Maharashtra",
		address:    "48 Koregaon Park Road",
		starRating: 3,
		amenities:  []string{"wifi", "parking"},
		roomTypes: []seedRoomType{
			{"Standard Twin", 280_00, 2, 30},
			{"Family Room", 420_00, 5, 10},
		},
	},
}

// Run loads the full data set. Re-running against a populated database is a
// no-op apart from log lines.
func (l *Loader) Run(ctx context.Context) error {
	managerID, err := l.loadUsers(ctx)
	if err != nil {
		return err
	}
	return l.loadHotels(ctx, managerID)
}

func (l *Loader) loadUsers(ctx context.Context) (managerID string, err error) {
	now := time.Now().UTC()
	for _, su := range seedUsers {
		existing, err := l.users.FindByEmail(ctx, su.email)
		if err == nil {
			l.logger.Info().Str("email", su.email).Msg("user already present")
			if su.role == domain.RoleHotelManager {
				managerID = existing.ID
			}
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return "", fmt.Errorf("look up %s: %w", su.email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("hash password for %s: %w", su.email, err)
		}

		created, err := l.users.Create(ctx, &domain.User{
			Email:        su.email,
			PasswordHash: string(hash),
			FirstName:    su.firstName,
			LastName:     su.lastName,
			Role:         su.role,
			Status:       domain.StatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return "", fmt.Errorf("create %s: %w", su.email, err)
		}
		l.logger.Info().Str("email", created.Email).Str("role", created.Role).Msg("user seeded")
		if su.role == domain.RoleHotelManager {
			managerID = created.ID
		}
	}
	return managerID, nil
}

func (l *Loader) loadHotels(ctx context.Context, managerID string) error {
	existing, err := l.hotels.List(ctx)
	if err != nil {
		return fmt.Errorf("list hotels: %w", err)
	}
	byName := make(map[string]bool, len(existing))
	for _, h := range existing {
		byName[h.Name] = true
	}

	for _, sh := range seedHotels {
		if byName[sh.name] {
			l.logger.Info().Str("hotel", sh.name).Msg("hotel already present")
			continue
		}

		created, err := l.hotels.Create(ctx, &domain.Hotel{
			Name:       sh.name,
			City:       sh.city,
			State:      sh.state,
			Address:    sh.address,
			StarRating: sh.starRating,
			Amenities:  sh.amenities,
			OwnerID:    managerID,
			CreatedAt:  time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create hotel %s: %w", sh.name, err)
		}

		for _, srt := range sh.roomTypes {
			if _, err := l.roomTypes.Create(ctx, &domain.RoomType{
				HotelID:    created.ID,
				Name:       srt.name,
				PriceCents: srt.priceCents,
				Capacity:   srt.capacity,
				TotalRooms: srt.totalRooms,
			}); err != nil {
				return fmt.Errorf("create room type %s/%s: %w", sh.name, srt.name, err)
			}
		}
		l.logger.Info().Str("hotel", created.Name).Int("room_types", len(sh.roomTypes)).Msg("hotel seeded")
	}
	return nil
}
