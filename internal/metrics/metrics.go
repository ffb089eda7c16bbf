// Package metrics provides Prometheus metrics collection for the feedmix service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// FormulationsTotal tracks formulation engine runs.
	FormulationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "formulations_total",
			Help: "Total number of feed mix formulations",
		},
		[]string{"status"},
	)

	// FormulationDuration tracks formulation engine run duration.
	FormulationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "formulation_duration_seconds",
			Help:    "Formulation engine run duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// NormFindingsTotal tracks norm evaluation findings by status.
	NormFindingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "norm_findings_total",
			Help: "Total number of norm findings emitted",
		},
		[]string{"status"},
	)

	// SuggestionsTotal tracks protein auto-suggest outcomes.
	SuggestionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "protein_suggestions_total",
			Help: "Total number of protein auto-suggest runs",
		},
		[]string{"applied"},
	)

	// MixesSavedTotal tracks finalized mixes persisted to storage.
	MixesSavedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mixes_saved_total",
			Help: "Total number of feed mixes saved",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordFormulation records metrics for one formulation engine run,
// including a counter increment per finding status.
func RecordFormulation(duration time.Duration, status string, findingStatuses []string) {
	FormulationDuration.Observe(duration.Seconds())
	FormulationsTotal.WithLabelValues(status).Inc()
	for _, fs := range findingStatuses {
		NormFindingsTotal.WithLabelValues(fs).Inc()
	}
}

// RecordSuggestion records a protein auto-suggest outcome.
func RecordSuggestion(applied bool) {
	SuggestionsTotal.WithLabelValues(strconv.FormatBool(applied)).Inc()
}

// RecordMixSaved records a finalized mix being persisted.
func RecordMixSaved() {
	MixesSavedTotal.Inc()
}
