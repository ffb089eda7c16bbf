// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/feedwise/feedmix-service/config"
	"github.com/feedwise/feedmix-service/internal/circuitbreaker"
	"github.com/feedwise/feedmix-service/internal/repository"
	"github.com/feedwise/feedmix-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	MixesRepo           repository.FeedMixRepositoryInterface
	LoggingService      service.LoggingService
	MixesCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker  *circuitbreaker.CircuitBreaker
	UserRepo            repository.UserRepositoryInterface
	TokenRepo           repository.TokenRepositoryInterface
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	mixesCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-mixes",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	mixesRepo := repository.NewFeedMixRepository(db)
	mixesRepoWithCB := repository.NewFeedMixRepositoryWithCircuitBreaker(mixesRepo, mixesCB)

	// Initialize auth repositories
	userRepo := repository.NewUserRepository(db.Database)
	tokenRepo := repository.NewTokenRepository(db.Database)

	return &DatabaseComponents{
		MixesRepo:           mixesRepoWithCB,
		LoggingService:      loggingService,
		MixesCircuitBreaker: mixesCB,
		LogsCircuitBreaker:  logsCB,
		UserRepo:            userRepo,
		TokenRepo:           tokenRepo,
	}
}
