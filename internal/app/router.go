// Package app provides router configuration.
package app

import (
	"github.com/feedwise/feedmix-service/config"
	"github.com/feedwise/feedmix-service/internal/http"
	"github.com/feedwise/feedmix-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	// Saved mixes need a database; without one the routes stay unregistered.
	var mixService service.MixService
	if dbComponents != nil && dbComponents.MixesRepo != nil {
		mixService = service.NewMixService(services.Formulator, dbComponents.MixesRepo)
	}

	handler := http.NewHandler(services.Formulator)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.MixesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_mixes", dbComponents.MixesCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	// Initialize authentication service
	var authService service.AuthService
	if dbComponents != nil && dbComponents.UserRepo != nil {
		authService = service.NewAuthService(
			dbComponents.UserRepo,
			dbComponents.TokenRepo,
			cfg.Auth,
		)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		MixListLimit:      cfg.Engine.MixListLimit,
		LoggingService:    loggingService,
		AuthService:       authService,
		MixService:        mixService,
		Formulator:        services.Formulator,
		Catalog:           services.Catalog,
		Norms:             services.Norms,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
