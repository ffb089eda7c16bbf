package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"github.com/feedwise/feedmix-service/internal/domain/dto"
	"github.com/feedwise/feedmix-service/internal/i18n"
	"github.com/feedwise/feedmix-service/internal/metrics"
	"github.com/feedwise/feedmix-service/internal/middleware"
	"github.com/feedwise/feedmix-service/internal/service"
)

// defaultMixListLimit caps GET /api/mixes when no limit is configured.
const defaultMixListLimit = 100

// MixesHandler provides HTTP handlers for saved-mix routes.
type MixesHandler struct {
	mixService service.MixService
	listLimit  int
}

// NewMixesHandler creates a new saved-mix handler. A non-positive listLimit
// falls back to the default.
func NewMixesHandler(mixService service.MixService, listLimit int) *MixesHandler {
	if listLimit <= 0 {
		listLimit = defaultMixListLimit
	}
	return &MixesHandler{
		mixService: mixService,
		listLimit:  listLimit,
	}
}

// SaveMix handles POST /api/mixes requests.
//
// @Summary      Finalize and save a mix
// @Description  Runs the formulation engine over the given components and persists the result as a new document. Saving is append-only: repeating the request creates another record. Percent-mode mixes must sum to 100 within tolerance. Supports idempotency via Idempotency-Key header.
// @Tags         Mixes
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.SaveMixRequest true "Mix to finalize"
// @Success      201 {object} dto.SuccessResponse "Mix saved"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/mixes [post]
func (h *MixesHandler) SaveMix(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.SaveMixRequest
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

	ownerID := ownerIDFromContext(c)

	mix, err := h.mixService.SaveMix(c.Request.Context(), &req, ownerID)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "save_mix", "Mix finalized and saved", map[string]interface{}{
				"mix_id":     mix.ID.Hex(),
				"name":       mix.Name,
				"components": len(mix.Components),
			})
		}
	}

	metrics.RecordMixSaved()
	builder.SuccessCreated(mix)
}

// ListMixes handles GET /api/mixes requests.
//
// @Summary      List saved mixes
// @Description  Returns saved mixes newest-first. When authentication is enabled the list is scoped to the calling user. The limit query parameter caps the page size; values above the configured maximum are clamped.
// @Tags         Mixes
// @Produce      json
// @Param        limit query int false "Maximum number of mixes to return"
// @Success      200 {object} dto.SuccessResponse "List of saved mixes"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/mixes [get]
func (h *MixesHandler) ListMixes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := h.listLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, errors.New("limit must be a positive integer"))
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	ownerID := ownerIDFromContext(c)

	mixes, err := h.mixService.ListMixes(c.Request.Context(), ownerID, limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(mixes)
}

// GetMix handles GET /api/mixes/:id requests.
//
// @Summary      Get a saved mix
// @Description  Returns a single saved mix by its ID.
// @Tags         Mixes
// @Produce      json
// @Param        id path string true "Mix ID"
// @Success      200 {object} dto.SuccessResponse "The saved mix"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed ID"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Not found - no mix with this ID"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/mixes/{id} [get]
func (h *MixesHandler) GetMix(c *gin.Context) {
	builder := NewResponseBuilder(c)

	mix, err := h.mixService.GetMix(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMixID):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		case errors.Is(err, service.ErrMixNotFound):
			builder.Error(http.StatusNotFound, i18n.ErrKeyMixNotFound, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(mix)
}

// ownerIDFromContext extracts the authenticated user ID, if any. Anonymous
// requests (auth disabled) save and list mixes without an owner.
func ownerIDFromContext(c *gin.Context) string {
	userID, exists := c.Get("user_id")
	if !exists {
		return ""
	}
	if id, ok := userID.(primitive.ObjectID); ok {
		return id.Hex()
	}
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}
