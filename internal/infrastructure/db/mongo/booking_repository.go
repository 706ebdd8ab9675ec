package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stayhub/hotel-booking/internal/core/domain"
)

const bookingsCollection = "bookings"

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(bookingsCollection)}
}

type bookingDoc struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty"`
	Reference      string               `bson:"booking_reference"`
	UserID         string               `bson:"user_id"`
	HotelID        string               `bson:"hotel_id"`
	RoomTypeID     string               `bson:"room_type_id"`
	CheckIn        time.Time            `bson:"check_in"`
	CheckOut       time.Time            `bson:"check_out"`
	Adults         int                  `bson:"adults"`
	Children       int                  `bson:"children"`
	Rooms          int                  `bson:"rooms"`
	TotalCents     int64                `bson:"total_cents"`
	Status         domain.BookingStatus `bson:"status"`
	PaymentStatus  domain.PaymentStatus `bson:"payment_status"`
	PaymentMethod  string               `bson:"payment_method"`
	TransactionID  string               `bson:"transaction_id"`
	GuestFirstName string               `bson:"guest_first_name"`
	GuestLastName  string               `bson:"guest_last_name"`
	GuestEmail     string               `bson:"guest_email"`
	GuestPhone     string               `bson:"guest_phone"`
	BookedAt       time.Time            `bson:"booked_at"`
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	doc := fromBooking(b)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	out := *b
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.ID = oid.Hex()
	}
	return &out, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	var doc bookingDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	oid, err := primitive.ObjectIDFromHex(b.ID)
	if err != nil {
		return domain.ErrBookingNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"check_in":         b.CheckIn,
		"check_out":        b.CheckOut,
		"adults":           b.Adults,
		"children":         b.Children,
		"rooms":            b.Rooms,
		"total_cents":      b.TotalCents,
		"status":           b.Status,
		"payment_status":   b.PaymentStatus,
		"payment_method":   b.PaymentMethod,
		"guest_first_name": b.GuestFirstName,
		"guest_last_name":  b.GuestLastName,
		"guest_email":      b.GuestEmail,
		"guest_phone":      b.GuestPhone,
	}})
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{})
}

func (r *BookingRepository) ListByHotel(ctx context.Context, hotelID string) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{"hotel_id": hotelID})
}

func (r *BookingRepository) ListByPaymentStatus(ctx context.Context, status domain.PaymentStatus) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{"payment_status": status})
}

// CountOverlappingRooms sums the rooms of non-cancelled bookings of the room
// type whose stay overlaps [checkIn, checkOut). The half-open test makes
// back-to-back stays (one guest out the morning another is in) non-overlapping.
func (r *BookingRepository) CountOverlappingRooms(ctx context.Context, hotelID, roomTypeID string, checkIn, checkOut time.Time, excludeBookingID string) (int64, error) {
	match := bson.M{
		"hotel_id":     hotelID,
		"room_type_id": roomTypeID,
		"status":       bson.M{"$ne": domain.BookingCancelled},
		"check_in":     bson.M{"$lt": checkOut},
		"check_out":    bson.M{"$gt": checkIn},
	}
	if excludeBookingID != "" {
		oid, err := primitive.ObjectIDFromHex(excludeBookingID)
		if err != nil {
			return 0, domain.ErrBookingNotFound
		}
		match["_id"] = bson.M{"$ne": oid}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"rooms": bson.M{"$sum": "$rooms"},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("count overlapping rooms: %w", err)
	}
	defer cur.Close(ctx)

	var result struct {
		Rooms int64 `bson:"rooms"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&result); err != nil {
			return 0, fmt.Errorf("decode overlap count: %w", err)
		}
	}
	return result.Rooms, cur.Err()
}

// EnsureIndexes creates the indexes the booking queries lean on. Safe to call
// on every startup.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "booking_reference", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{
			{Key: "room_type_id", Value: 1},
			{Key: "check_in", Value: 1},
			{Key: "check_out", Value: 1},
		}},
	})
	return err
}

func (r *BookingRepository) list(ctx context.Context, filter bson.M) ([]*domain.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "booked_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Booking
	for cur.Next(ctx) {
		var doc bookingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func fromBooking(b *domain.Booking) bookingDoc {
	return bookingDoc{
		Reference:      b.Reference,
		UserID:         b.UserID,
		HotelID:        b.HotelID,
		RoomTypeID:     b.RoomTypeID,
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
}

func (d *bookingDoc) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:             d.ID.Hex(),
		Reference:      d.Reference,
		UserID:         d.UserID,
		HotelID:        d.HotelID,
		RoomTypeID:     d.RoomTypeID,
		CheckIn:        domain.DateOnly(d.CheckIn),
		CheckOut:       domain.DateOnly(d.CheckOut),
		Adults:         d.Adults,
		Children:       d.Children,
		Rooms:          d.Rooms,
		TotalCents:     d.TotalCents,
		Status:         d.Status,
		PaymentStatus:  d.PaymentStatus,
		PaymentMethod:  d.PaymentMethod,
		TransactionID:  d.TransactionID,
		GuestFirstName: d.GuestFirstName,
		GuestLastName:  d.GuestLastName,
		GuestEmail:     d.GuestEmail,
		GuestPhone:     d.GuestPhone,
		BookedAt:       d.BookedAt,
	}
}
