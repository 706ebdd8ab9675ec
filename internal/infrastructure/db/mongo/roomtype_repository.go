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

type RoomTypeRepository struct {
	coll *mongo.Collection
}

func NewRoomTypeRepository(db *mongo.Database) *RoomTypeRepository {
	return &RoomTypeRepository{coll: db.Collection(roomTypesCollection)}
}

type roomTypeDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	HotelID    string             `bson:"hotel_id"`
	Name       string             `bson:"name"`
	PriceCents int64              `bson:"price_cents"`
	Capacity   int                `bson:"capacity"`
	TotalRooms int                `bson:"total_rooms"`
	Amenities  []string           `bson:"amenities,omitempty"`
}

func (r *RoomTypeRepository) Create(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error) {
	doc := roomTypeDoc{
		HotelID:    rt.HotelID,
		Name:       rt.Name,
		PriceCents: rt.PriceCents,
		Capacity:   rt.Capacity,
		TotalRooms: rt.TotalRooms,
		Amenities:  rt.Amenities,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert room type: %w", err)
	}

	out := *rt
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.ID = oid.Hex()
	}
	return &out, nil
}

func (r *RoomTypeRepository) FindByID(ctx context.Context, id string) (*domain.RoomType, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRoomTypeNotFound
	}

	var doc roomTypeDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("find room type: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RoomTypeRepository) Update(ctx context.Context, rt *domain.RoomType) error {
	oid, err := primitive.ObjectIDFromHex(rt.ID)
	if err != nil {
		return domain.ErrRoomTypeNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":        rt.Name,
		"price_cents": rt.PriceCents,
		"capacity":    rt.Capacity,
		"total_rooms": rt.TotalRooms,
		"amenities":   rt.Amenities,
	}})
	if err != nil {
		return fmt.Errorf("update room type: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRoomTypeNotFound
	}
	return nil
}

func (r *RoomTypeRepository) ListByHotel(ctx context.Context, hotelID string) ([]*domain.RoomType, error) {
	cur, err := r.coll.Find(ctx, bson.M{"hotel_id": hotelID})
	if err != nil {
		return nil, fmt.Errorf("list room types: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.RoomType
	for cur.Next(ctx) {
		var doc roomTypeDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode room type: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (d *roomTypeDoc) toDomain() *domain.RoomType {
	return &domain.RoomType{
		ID:         d.ID.Hex(),
		HotelID:    d.HotelID,
		Name:       d.Name,
		PriceCents: d.PriceCents,
		Capacity:   d.Capacity,
		TotalRooms: d.TotalRooms,
		Amenities:  d.Amenities,
	}
}
