// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/feedwise/feedmix-service/internal/circuitbreaker"
	"github.com/feedwise/feedmix-service/internal/domain/model"
)

// FeedMixRepositoryWithCircuitBreaker wraps FeedMixRepository with circuit breaker protection.
// Unlike logging, saved-mix operations have no fallback: when the circuit
// is open the error propagates to the caller.
type FeedMixRepositoryWithCircuitBreaker struct {
	repo           *FeedMixRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewFeedMixRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewFeedMixRepositoryWithCircuitBreaker(repo *FeedMixRepository, cb *circuitbreaker.CircuitBreaker) *FeedMixRepositoryWithCircuitBreaker {
	return &FeedMixRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Insert stores a finalized feed mix with circuit breaker protection.
func (r *FeedMixRepositoryWithCircuitBreaker) Insert(ctx context.Context, mix *model.FeedMix) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Insert(ctx, mix)
	})
}

// List returns saved mixes with circuit breaker protection.
func (r *FeedMixRepositoryWithCircuitBreaker) List(ctx context.Context, ownerID string, limit int) ([]model.FeedMix, error) {
	var result []model.FeedMix
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, ownerID, limit)
		return cbErr
	})
	return result, err
}

// FindByID returns a saved mix by ID with circuit breaker protection.
func (r *FeedMixRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.FeedMix, error) {
	var result *model.FeedMix
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, id)
		return cbErr
	})
	return result, err
}

// Count returns the number of saved mixes with circuit breaker protection.
func (r *FeedMixRepositoryWithCircuitBreaker) Count(ctx context.Context, ownerID string) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, ownerID)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *FeedMixRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error) {
	var result []*model.LogEntry
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}
