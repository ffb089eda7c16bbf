package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/feedwise/feedmix-service/internal/domain/dto"
	"github.com/feedwise/feedmix-service/internal/domain/model"
	"github.com/feedwise/feedmix-service/internal/i18n"
	"github.com/feedwise/feedmix-service/internal/metrics"
	"github.com/feedwise/feedmix-service/internal/middleware"
	"github.com/feedwise/feedmix-service/internal/service"
)

// Handler provides HTTP handlers for the formulation routes.
type Handler struct {
	formulator service.Formulator
}

// NewHandler creates a new Handler instance.
func NewHandler(formulator service.Formulator) *Handler {
	return &Handler{
		formulator: formulator,
	}
}

// Formulate handles POST /api/formulate requests.
//
// @Summary      Formulate a feed mix
// @Description  Blends the nutrient profiles of the given components, evaluates the blend against the norm table for the requested bird profile, and prices one kilogram of the finished mix. Unknown ingredients contribute weight but no nutrients; an unknown bird profile yields zero findings. Supports idempotency via Idempotency-Key header.
// @Tags         Formulation
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.FormulateRequest true "Mix components and bird profile"
// @Success      200 {object} dto.SuccessResponse "Successful formulation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/formulate [post]
func (h *Handler) Formulate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.FormulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			metrics.RecordFormulation(0, "validation_error", nil)
			builder.Error(http.StatusBadRequest, validationMessageKey(err), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "formulate", "Mix formulation requested", map[string]interface{}{
				"species":    req.Species,
				"goal":       req.Goal,
				"age_class":  req.AgeClass,
				"unit_mode":  req.UnitMode,
				"components": len(req.Components),
			})
		}
	}

	start := time.Now()
	result := h.formulator.Formulate(req.DomainComponents(), req.Mode(), req.Profile())
	duration := time.Since(start)

	metrics.RecordFormulation(duration, "success", findingStatuses(result.Findings))
	builder.SuccessOK(result)
}

// Suggest handles POST /api/formulate/suggest requests.
//
// @Summary      Suggest a protein correction
// @Description  Runs the formulation once and, if the blend is protein-deficient for the requested bird profile, appends a protein-rich ingredient to the component list. The returned formulation reflects the possibly extended list. The heuristic applies at most one correction; a mix that is not deficient is returned unchanged.
// @Tags         Formulation
// @Accept       json
// @Produce      json
// @Param        request body dto.FormulateRequest true "Mix components and bird profile"
// @Success      200 {object} dto.SuccessResponse "Suggestion result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/formulate/suggest [post]
func (h *Handler) Suggest(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.FormulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.Error(http.StatusBadRequest, validationMessageKey(err), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	components := req.DomainComponents()
	mode := req.Mode()
	profile := req.Profile()

	blend := h.formulator.Blend(components, mode)
	suggested, applied := h.formulator.SuggestProteinFix(components, blend, mode, profile)
	result := h.formulator.Formulate(suggested, mode, profile)

	metrics.RecordSuggestion(applied)
	builder.SuccessOK(dto.SuggestResponse{
		Components:  suggested,
		Applied:     applied,
		Formulation: result,
	})
}

// validationMessageKey maps a validation error to its translation key.
func validationMessageKey(err error) string {
	validationErr, ok := err.(*dto.ValidationError)
	if !ok {
		return i18n.ErrKeyInvalidRequestBody
	}
	switch validationErr {
	case dto.ErrInvalidUnitMode:
		return i18n.ErrKeyValidationUnitMode
	case dto.ErrPercentSum:
		return i18n.ErrKeyValidationPercentSum
	default:
		return i18n.ErrKeyValidationComponents
	}
}

// findingStatuses extracts the status labels for metrics recording.
func findingStatuses(findings []model.Finding) []string {
	if len(findings) == 0 {
		return nil
	}
	statuses := make([]string, 0, len(findings))
	for _, f := range findings {
		statuses = append(statuses, string(f.Status))
	}
	return statuses
}
