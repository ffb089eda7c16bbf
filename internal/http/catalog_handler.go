package http

import (
	"github.com/gin-gonic/gin"
	"github.com/feedwise/feedmix-service/internal/domain/dto"
	"github.com/feedwise/feedmix-service/internal/refdata"
)

// CatalogHandler serves the static reference datasets: the ingredient
// catalog and the nutrient norm tables. Both are loaded once at startup and
// never change, so these handlers are read-only views.
type CatalogHandler struct {
	catalog *refdata.Catalog
	norms   *refdata.NormTable
}

// NewCatalogHandler creates a new reference-data handler.
func NewCatalogHandler(catalog *refdata.Catalog, norms *refdata.NormTable) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		norms:   norms,
	}
}

// GetIngredients handles GET /api/ingredients requests.
//
// @Summary      List catalog ingredients
// @Description  Returns every ingredient in the catalog, sorted by ID, with nutrient profiles and prices.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Ingredient catalog"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Router       /api/ingredients [get]
func (h *CatalogHandler) GetIngredients(c *gin.Context) {
	builder := NewResponseBuilder(c)
	builder.SuccessOK(h.catalog.Ingredients())
}

// GetNorms handles GET /api/norms requests.
//
// @Summary      List nutrient norms
// @Description  Returns the nutrient norm ranges for every known bird profile (species, goal, age class).
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Norm tables per bird profile"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Router       /api/norms [get]
func (h *CatalogHandler) GetNorms(c *gin.Context) {
	builder := NewResponseBuilder(c)

	profiles := h.norms.Profiles()
	out := make([]dto.NormSetResponse, 0, len(profiles))
	for _, p := range profiles {
		ranges, ok := h.norms.Lookup(p)
		if !ok {
			continue
		}
		out = append(out, dto.NormSetResponse{
			Species:  string(p.Species),
			Goal:     string(p.Goal),
			AgeClass: string(p.AgeClass),
			Norms:    ranges,
		})
	}

	builder.SuccessOK(out)
}
