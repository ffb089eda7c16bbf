//go:build contract

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/feedwise/feedmix-service/internal/domain/dto"
	"github.com/feedwise/feedmix-service/internal/domain/model"
	"github.com/feedwise/feedmix-service/internal/middleware"
	"github.com/feedwise/feedmix-service/internal/refdata"
	"github.com/feedwise/feedmix-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContractRouter(t *testing.T) (*gin.Engine, *HealthHandler) {
	catalog, norms, err := refdata.Load()
	require.NoError(t, err)

	handler := NewHandler(service.NewFormulatorService(catalog, norms))
	healthHandler := NewHealthHandler()

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Recovery(), middleware.ErrorHandler())
	healthHandler.Register(router)
	api := router.Group("/api")
	api.POST("/formulate", handler.Formulate)

	return router, healthHandler
}

const contractStarterMix = `{"species": "chicken", "goal": "growth", "age_class": "young", "unit_mode": "percent", "components": [{"ingredient_id": "corn", "amount": 70}, {"ingredient_id": "soybean_meal", "amount": 30}]}`

// TestAPI_ContractCompliance validates that API responses match the documented contract.
func TestAPI_ContractCompliance(t *testing.T) {
	router, _ := newContractRouter(t)

	tests := []struct {
		name             string
		method           string
		path             string
		body             string
		headers          map[string]string
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "POST /api/formulate - Success 200",
			method:         http.MethodPost,
			path:           "/api/formulate",
			body:           contractStarterMix,
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				// Validate dto.SuccessResponse structure
				assert.NotEmpty(t, resp.RequestID, "Response must include request_id")
				assert.NotZero(t, resp.Timestamp, "Response must include timestamp")
				assert.NotNil(t, resp.Data, "Response must include data")

				// Validate Formulation structure
				formulation, ok := resp.Data.(map[string]interface{})
				require.True(t, ok, "Data must be a Formulation")

				assert.Contains(t, formulation, "nutrients")
				assert.Contains(t, formulation, "findings")
				assert.Contains(t, formulation, "cost_per_kg")

				nutrients, ok := formulation["nutrients"].(map[string]interface{})
				require.True(t, ok)
				assert.NotEmpty(t, nutrients)

				// Validate each nutrient sample structure
				for name, sampleInterface := range nutrients {
					sample, ok := sampleInterface.(map[string]interface{})
					require.True(t, ok, "nutrient %s must be an object", name)
					assert.Contains(t, sample, "name")
					assert.Contains(t, sample, "value")
					assert.Contains(t, sample, "unit")
				}

				// Validate findings array
				findings, ok := formulation["findings"].([]interface{})
				require.True(t, ok)
				for _, findingInterface := range findings {
					finding, ok := findingInterface.(map[string]interface{})
					require.True(t, ok)
					assert.Contains(t, finding, "nutrient")
					assert.Contains(t, finding, "status")
					assert.Contains(t, finding, "min")
					assert.Contains(t, finding, "max")
				}
			},
		},
		{
			name:           "POST /api/formulate - Error 400 Invalid JSON",
			method:         http.MethodPost,
			path:           "/api/formulate",
			body:           `invalid json`,
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.NotEmpty(t, resp.Message)
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)
			},
		},
		{
			name:           "POST /api/formulate - Error 400 Invalid unit mode",
			method:         http.MethodPost,
			path:           "/api/formulate",
			body:           `{"species": "chicken", "goal": "growth", "age_class": "young", "unit_mode": "grams", "components": []}`,
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.NotEmpty(t, resp.Message)
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)
			},
		},
		{
			name:           "GET /healthz - Success 200",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Contains(t, resp, "status")
				assert.Equal(t, "ok", resp["status"])
			},
		},
		{
			name:           "GET /readyz - Success 200",
			method:         http.MethodGet,
			path:           "/readyz",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Contains(t, resp, "status")
				assert.Contains(t, resp, "checks")
				assert.Equal(t, "ok", resp["status"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, bytes.NewReader([]byte(tt.body)))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}

			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, "Status code mismatch")
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

			// Validate X-Request-ID header
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "Response must include X-Request-ID header")

			if tt.validateResponse != nil {
				tt.validateResponse(t, w)
			}
		})
	}
}

// TestAPI_ResponseSchema validates response schemas match the contract.
func TestAPI_ResponseSchema(t *testing.T) {
	router, _ := newContractRouter(t)

	t.Run("SuccessResponse schema validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/formulate", bytes.NewReader([]byte(contractStarterMix)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.SuccessResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		// Validate all required fields
		assert.NotEmpty(t, resp.RequestID)
		assert.NotZero(t, resp.Timestamp)
		assert.NotNil(t, resp.Data)

		// Validate data is a Formulation
		dataBytes, _ := json.Marshal(resp.Data)
		var formulation model.Formulation
		err = json.Unmarshal(dataBytes, &formulation)
		require.NoError(t, err)

		assert.NotEmpty(t, formulation.Nutrients)
		assert.Greater(t, formulation.CostPerKg, 0.0)
		assert.NotNil(t, formulation.Findings)
	})

	t.Run("ErrorResponse schema validation", func(t *testing.T) {
		body := `{"species": "chicken", "goal": "growth", "age_class": "young", "unit_mode": "percent", "components": [{"ingredient_id": "corn", "amount": -1}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/formulate", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		// Validate error response structure
		assert.NotEmpty(t, resp.Error)
		assert.NotEmpty(t, resp.Message)
		assert.NotEmpty(t, resp.RequestID)
		assert.NotZero(t, resp.Timestamp)
	})
}

// TestAPI_Headers validates required headers are present.
func TestAPI_Headers(t *testing.T) {
	router, _ := newContractRouter(t)

	tests := []struct {
		name            string
		method          string
		path            string
		body            string
		expectedHeaders map[string]string
	}{
		{
			name:   "X-Request-ID header present",
			method: http.MethodPost,
			path:   "/api/formulate",
			body:   contractStarterMix,
			expectedHeaders: map[string]string{
				"X-Request-ID": "",
			},
		},
		{
			name:   "Health endpoint headers",
			method: http.MethodGet,
			path:   "/healthz",
			expectedHeaders: map[string]string{
				"X-Request-ID": "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, bytes.NewReader([]byte(tt.body)))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			for headerName, expectedValue := range tt.expectedHeaders {
				actualValue := w.Header().Get(headerName)
				if expectedValue == "" {
					assert.NotEmpty(t, actualValue, "Header %s must be present", headerName)
				} else {
					assert.Equal(t, expectedValue, actualValue, "Header %s mismatch", headerName)
				}
			}
		})
	}
}
