// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/feedwise/feedmix-service/internal/domain/model"
)

// FeedMixRepositoryInterface defines the interface for saved feed mix operations.
type FeedMixRepositoryInterface interface {
	Insert(ctx context.Context, mix *model.FeedMix) error
	List(ctx context.Context, ownerID string, limit int) ([]model.FeedMix, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.FeedMix, error)
	Count(ctx context.Context, ownerID string) (int64, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}
