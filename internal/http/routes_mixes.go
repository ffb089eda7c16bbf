package http

import (
	"github.com/gin-gonic/gin"
	"github.com/feedwise/feedmix-service/internal/refdata"
	"github.com/feedwise/feedmix-service/internal/service"
)

// MixRoutes handles formulation and saved-mix route registration.
type MixRoutes struct {
	handler        *Handler
	mixesHandler   *MixesHandler
	catalogHandler *CatalogHandler
}

// NewMixRoutes creates a new MixRoutes instance. The mix service is optional:
// without it only the stateless formulation and catalog routes are
// registered.
func NewMixRoutes(formulator service.Formulator, mixService service.MixService, catalog *refdata.Catalog, norms *refdata.NormTable, listLimit int) *MixRoutes {
	handler := NewHandler(formulator)

	var mixesHandler *MixesHandler
	if mixService != nil {
		mixesHandler = NewMixesHandler(mixService, listLimit)
	}

	var catalogHandler *CatalogHandler
	if catalog != nil && norms != nil {
		catalogHandler = NewCatalogHandler(catalog, norms)
	}

	return &MixRoutes{
		handler:        handler,
		mixesHandler:   mixesHandler,
		catalogHandler: catalogHandler,
	}
}

// RegisterPublicRoutes registers all routes without authentication.
func (r *MixRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/formulate", r.handler.Formulate)
	rg.POST("/formulate/suggest", r.handler.Suggest)

	if r.catalogHandler != nil {
		rg.GET("/ingredients", r.catalogHandler.GetIngredients)
		rg.GET("/norms", r.catalogHandler.GetNorms)
	}

	if r.mixesHandler != nil {
		rg.POST("/mixes", r.mixesHandler.SaveMix)
		rg.GET("/mixes", r.mixesHandler.ListMixes)
		rg.GET("/mixes/:id", r.mixesHandler.GetMix)
	}
}

// RegisterProtectedRoutes registers the mutating and per-user routes behind
// JWT authentication. The reference-data reads stay public: the catalog is
// static and carries nothing user-specific.
func (r *MixRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	protected.POST("/formulate", r.handler.Formulate)
	protected.POST("/formulate/suggest", r.handler.Suggest)

	if r.mixesHandler != nil {
		protected.POST("/mixes", r.mixesHandler.SaveMix)
		protected.GET("/mixes", r.mixesHandler.ListMixes)
		protected.GET("/mixes/:id", r.mixesHandler.GetMix)
	}
}

// RegisterCatalogRoutes registers the public reference-data routes.
func (r *MixRoutes) RegisterCatalogRoutes(rg *gin.RouterGroup) {
	if r.catalogHandler != nil {
		rg.GET("/ingredients", r.catalogHandler.GetIngredients)
		rg.GET("/norms", r.catalogHandler.GetNorms)
	}
}

// GetHandler returns the underlying formulation handler.
func (r *MixRoutes) GetHandler() *Handler {
	return r.handler
}
