// Package main is the entry point for the feedmix-service application.
//
// @title           Feed Mix Service API
// @version         1.0.0
// @description     API for formulating poultry feed mixes from an ingredient catalog.
//
//	The service blends ingredient nutrients, evaluates the result against
//	species-specific feeding norms, prices the mix per kilogram, and can
//	suggest a protein correction when the blend falls short.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/feedwise/feedmix-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Formulation
// @tag.description Nutrient blending, norm evaluation, and cost calculation
//
// @tag.name        Mixes
// @tag.description Saved feed mixes
//
// @tag.name        Catalog
// @tag.description Ingredient catalog and feeding norms
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/feedwise/feedmix-service/docs" // swagger docs

	"github.com/feedwise/feedmix-service/config"
	"github.com/feedwise/feedmix-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
