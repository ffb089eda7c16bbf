// Package app provides service initialization.
package app

import (
	"github.com/feedwise/feedmix-service/config"
	"github.com/feedwise/feedmix-service/internal/refdata"
	"github.com/feedwise/feedmix-service/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Formulator service.Formulator
	Catalog    *refdata.Catalog
	Norms      *refdata.NormTable
}

// InitializeServices loads the embedded reference data and builds the
// formulation engine.
func InitializeServices(cfg config.EngineConfig) *ServiceComponents {
	catalog, norms, err := refdata.Load()
	if err != nil {
		// Embedded data failing to parse means a broken build.
		log.Fatal().Err(err).Msg("Failed to load reference data")
	}

	var opts []service.FormulatorOption

	if cfg.SuggestIngredientID != "" || cfg.SuggestAmount > 0 {
		suggestID := cfg.SuggestIngredientID
		if suggestID == "" {
			suggestID = service.DefaultSuggestIngredientID
		}
		suggestAmount := cfg.SuggestAmount
		if suggestAmount <= 0 {
			suggestAmount = service.DefaultSuggestAmount
		}
		opts = append(opts, service.WithSuggestion(suggestID, suggestAmount))
	}

	formulator := service.NewFormulatorService(catalog, norms, opts...)

	return &ServiceComponents{
		Formulator: formulator,
		Catalog:    catalog,
		Norms:      norms,
	}
}
