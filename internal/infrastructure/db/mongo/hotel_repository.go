package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stayhub/hotel-booking/internal/core/domain"
)

const (
	hotelsCollection    = "hotels"
	roomTypesCollection = "room_types"
)

type HotelRepository struct {
	coll *mongo.Collection
}

func NewHotelRepository(db *mongo.Database) *HotelRepository {
	return &HotelRepository{coll: db.Collection(hotelsCollection)}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) (*domain.Hotel, error) {
	doc := hotelDoc{
		Name:        h.Name,
		Description: h.Description,
		City:        h.City,
		State:       h.State,
		Address:     h.Address,
		StarRating:  h.StarRating,
		Rating:      h.Rating,
		RatingCount: h.RatingCount,
		Amenities:   h.Amenities,
		Images:      h.Images,
		OwnerID:     h.OwnerID,
		CreatedAt:   h.CreatedAt.Unix(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert hotel: %w", err)
	}

	out := *h
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.ID = oid.Hex()
	}
	return &out, nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id string) (*domain.Hotel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrHotelNotFound
	}

	var raw hotelDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	return raw.toDomain(), nil
}

func (r *HotelRepository) Update(ctx context.Context, h *domain.Hotel) error {
	oid, err := primitive.ObjectIDFromHex(h.ID)
	if err != nil {
		return domain.ErrHotelNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":         h.Name,
		"description":  h.Description,
		"city":         h.City,
		"state":        h.State,
		"address":      h.Address,
		"star_rating":  h.StarRating,
		"rating":       h.Rating,
		"rating_count": h.RatingCount,
		"amenities":    h.Amenities,
		"images":       h.Images,
	}})
	if err != nil {
		return fmt.Errorf("update hotel: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}

func (r *HotelRepository) List(ctx context.Context) ([]*domain.Hotel, error) {
	return r.find(ctx, bson.M{})
}

// Search matches city and state case-insensitively; empty arguments add no filter.
func (r *HotelRepository) Search(ctx context.Context, city, state string) ([]*domain.Hotel, error) {
	filter := bson.M{}
	if city != "" {
		filter["city"] = bson.M{"$regex": primitive.Regex{Pattern: "^" + regexEscape(city) + "$", Options: "i"}}
	}
	if state != "" {
		filter["state"] = bson.M{"$regex": primitive.Regex{Pattern: "^" + regexEscape(state) + "$", Options: "i"}}
	}
	return r.find(ctx, filter)
}

func (r *HotelRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Hotel, error) {
	return r.find(ctx, bson.M{"owner_id": ownerID})
}

func (r *HotelRepository) find(ctx context.Context, filter bson.M) ([]*domain.Hotel, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Hotel
	for cur.Next(ctx) {
		var raw hotelDoc
		if err := cur.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode hotel: %w", err)
		}
		out = append(out, raw.toDomain())
	}
	return out, cur.Err()
}

// hotelDoc mirrors domain.Hotel with an ObjectID primary key.
type hotelDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	City        string             `bson:"city"`
	State       string             `bson:"state,omitempty"`
	Address     string             `bson:"address"`
	StarRating  int                `bson:"star_rating"`
	Rating      float64            `bson:"rating"`
	RatingCount int                `bson:"rating_count"`
	Amenities   []string           `bson:"amenities,omitempty"`
	Images      []string           `bson:"images,omitempty"`
	OwnerID     string             `bson:"owner_id,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
}

func (d *hotelDoc) toDomain() *domain.Hotel {
	return &domain.Hotel{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		City:        d.City,
		State:       d.State,
		Address:     d.Address,
		StarRating:  d.StarRating,
		Rating:      d.Rating,
		RatingCount: d.RatingCount,
		Amenities:   d.Amenities,
		Images:      d.Images,
		OwnerID:     d.OwnerID,
		CreatedAt:   unixToTime(d.CreatedAt),
	}
}

// regexEscape neutralises regex metacharacters in user-supplied search terms.
func regexEscape(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', '+', '*', '?', '(', ')', '[', ']', '{', '}', '^', '$', '|', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
