// Package repository provides data access for saved feed mixes.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/feedwise/feedmix-service/internal/domain/model"
)

// FeedMixRepository provides methods for saved feed mix operations.
// The collection is append-only: finalized mixes are historical records
// and are never updated or deleted through the API.
type FeedMixRepository struct {
	collection *mongo.Collection
}

// NewFeedMixRepository creates a new feed mix repository.
func NewFeedMixRepository(db *MongoDB) *FeedMixRepository {
	return &FeedMixRepository{
		collection: db.FeedMixes,
	}
}

// Insert stores a finalized feed mix, stamping its ID and creation time.
func (r *FeedMixRepository) Insert(ctx context.Context, mix *model.FeedMix) error {
	if mix.ID.IsZero() {
		mix.ID = primitive.NewObjectID()
	}
	if mix.CreatedAt.IsZero() {
		mix.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, mix)
	return err
}

// List returns saved mixes sorted newest-first. A non-empty ownerID
// restricts the result to mixes saved by that user.
func (r *FeedMixRepository) List(ctx context.Context, ownerID string, limit int) ([]model.FeedMix, error) {
	filter := bson.M{}
	if ownerID != "" {
		filter["owner_id"] = ownerID
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var mixes []model.FeedMix
	if err := cursor.All(ctx, &mixes); err != nil {
		return nil, err
	}

	return mixes, nil
}

// FindByID returns a saved mix by ID, or nil when no such mix exists.
func (r *FeedMixRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.FeedMix, error) {
	var mix model.FeedMix
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&mix)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mix, nil
}

// Count returns the number of saved mixes, optionally for one owner.
func (r *FeedMixRepository) Count(ctx context.Context, ownerID string) (int64, error) {
	filter := bson.M{}
	if ownerID != "" {
		filter["owner_id"] = ownerID
	}
	return r.collection.CountDocuments(ctx, filter)
}
