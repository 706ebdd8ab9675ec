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

const complaintsCollection = "complaints"

type ComplaintRepository struct {
	coll *mongo.Collection
}

func NewComplaintRepository(db *mongo.Database) *ComplaintRepository {
	return &ComplaintRepository{coll: db.Collection(complaintsCollection)}
}

type complaintDoc struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty"`
	UserID     string                 `bson:"user_id"`
	BookingRef string                 `bson:"booking_reference,omitempty"`
	Subject    string                 `bson:"subject"`
	Details    string                 `bson:"details"`
	Status     domain.ComplaintStatus `bson:"status"`
	AdminNote  string                 `bson:"admin_note,omitempty"`
	CreatedAt  time.Time              `bson:"created_at"`
	UpdatedAt  time.Time              `bson:"updated_at"`
}

func (r *ComplaintRepository) Create(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error) {
	doc := complaintDoc{
		UserID:     c.UserID,
		BookingRef: c.BookingRef,
		Subject:    c.Subject,
		Details:    c.Details,
		Status:     c.Status,
		AdminNote:  c.AdminNote,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert complaint: %w", err)
	}

	out := *c
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.ID = oid.Hex()
	}
	return &out, nil
}

func (r *ComplaintRepository) FindByID(ctx context.Context, id string) (*domain.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrComplaintNotFound
	}

	var doc complaintDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("find complaint: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ComplaintRepository) Update(ctx context.Context, c *domain.Complaint) error {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return domain.ErrComplaintNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"status":     c.Status,
		"admin_note": c.AdminNote,
		"updated_at": c.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("update complaint: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrComplaintNotFound
	}
	return nil
}

func (r *ComplaintRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Complaint, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *ComplaintRepository) ListAll(ctx context.Context) ([]*domain.Complaint, error) {
	return r.list(ctx, bson.M{})
}

func (r *ComplaintRepository) list(ctx context.Context, filter bson.M) ([]*domain.Complaint, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Complaint
	for cur.Next(ctx) {
		var doc complaintDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode complaint: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (d *complaintDoc) toDomain() *domain.Complaint {
	return &domain.Complaint{
		ID:         d.ID.Hex(),
		UserID:     d.UserID,
		BookingRef: d.BookingRef,
		Subject:    d.Subject,
		Details:    d.Details,
		Status:     d.Status,
		AdminNote:  d.AdminNote,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
