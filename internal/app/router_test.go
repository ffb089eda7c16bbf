//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/feedwise/feedmix-service/config"
	"github.com/feedwise/feedmix-service/internal/mocks"
)

func TestInitializeRouter(t *testing.T) {
	tests := []struct {
		name         string
		dbComponents *DatabaseComponents
		cfg          config.Config
		validate     func(*testing.T, *RouterComponents)
	}{
		{
			name: "creates router with formulator only",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  100,
					RateWindow: time.Minute,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Handler)
				assert.NotNil(t, components.HealthHandler)
				assert.False(t, components.Config.EnableAuth)
				assert.True(t, components.Config.EnableIdempotency)
				assert.Equal(t, 100, components.Config.RateLimit)
				assert.NotNil(t, components.Config.Catalog)
				assert.NotNil(t, components.Config.Norms)
			},
		},
		{
			name: "creates router with auth enabled",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  50,
					RateWindow: 30 * time.Second,
				},
				Auth: config.AuthConfig{
					Enabled: true,
					APIKeys: map[string]bool{"test-key": true},
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.True(t, components.Config.EnableAuth)
				assert.Equal(t, map[string]bool{"test-key": true}, components.Config.APIKeys)
			},
		},
		{
			name: "creates router with database components",
			dbComponents: &DatabaseComponents{
				MixesRepo:           new(mocks.MockFeedMixRepositoryInterface),
				LoggingService:      mocks.NewMockLoggingService(t),
				MixesCircuitBreaker: nil,
				LogsCircuitBreaker:  nil,
			},
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
				Engine: config.EngineConfig{
					MixListLimit: 25,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Config.MixService)
				assert.NotNil(t, components.Config.LoggingService)
				assert.Equal(t, 25, components.Config.MixListLimit)
			},
		},
		{
			name: "creates router with circuit breakers registered",
			dbComponents: &DatabaseComponents{
				MixesRepo:           new(mocks.MockFeedMixRepositoryInterface),
				LoggingService:      mocks.NewMockLoggingService(t),
				MixesCircuitBreaker: nil, // Using nil since circuit breaker is tested in integration tests
				LogsCircuitBreaker:  nil,
			},
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.HealthHandler)
			},
		},
		{
			name:         "creates router with nil dbComponents",
			dbComponents: nil,
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.Nil(t, components.Config.MixService)
				assert.Nil(t, components.Config.LoggingService)
				assert.Nil(t, components.Config.AuthService)
			},
		},
		{
			name: "creates router with auth service when user repo exists",
			dbComponents: &DatabaseComponents{
				UserRepo:  mocks.NewMockUserRepositoryInterface(t),
				TokenRepo: mocks.NewMockTokenRepositoryInterface(t),
				MixesRepo: new(mocks.MockFeedMixRepositoryInterface),
			},
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Config.AuthService)
			},
		},
		{
			name: "creates router without auth service when user repo is nil",
			dbComponents: &DatabaseComponents{
				UserRepo:  nil,
				MixesRepo: new(mocks.MockFeedMixRepositoryInterface),
			},
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.Nil(t, components.Config.AuthService)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := InitializeServices(config.EngineConfig{})
			components := InitializeRouter(services, tt.dbComponents, tt.cfg)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}
