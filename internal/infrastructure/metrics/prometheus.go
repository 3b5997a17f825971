package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the truther API.
var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "truther_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "truther_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// External API metrics
	ExternalAPIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "truther_external_api_requests_total",
			Help: "Total number of external API requests",
		},
		[]string{"service", "endpoint", "status_code"},
	)

	ExternalAPIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "truther_external_api_request_duration_seconds",
			Help:    "External API request duration in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
		},
		[]string{"service", "endpoint"},
	)

	ExternalAPIFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "truther_external_api_failures_total",
			Help: "Total number of external API calls that produced no response",
		},
		[]string{"service", "endpoint"},
	)

	// Business metrics
	SnapshotRefreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "truther_snapshot_refreshes_total",
			Help: "Total number of market snapshot refresh attempts",
		},
		[]string{"coin", "result"}, // result: success/error
	)

	CacheFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "truther_cache_fallbacks_total",
			Help: "Total number of lookups served from the store instead of the provider",
		},
		[]string{"coin", "outcome"}, // outcome: hit/miss
	)
)

// RecordHTTPRequest records metrics for one completed HTTP request.
func RecordHTTPRequest(method, path string, statusCode int, durationSeconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(durationSeconds)
}

// RecordExternalAPICall records metrics for one completed external API call.
func RecordExternalAPICall(service, endpoint string, statusCode int, durationSeconds float64) {
	ExternalAPIRequestsTotal.WithLabelValues(service, endpoint, strconv.Itoa(statusCode)).Inc()
	ExternalAPIRequestDuration.WithLabelValues(service, endpoint).Observe(durationSeconds)
}

// RecordExternalAPIFailure records an external API call that got no response.
func RecordExternalAPIFailure(service, endpoint string) {
	ExternalAPIFailuresTotal.WithLabelValues(service, endpoint).Inc()
}

// RecordSnapshotRefresh records the result of one snapshot refresh attempt.
func RecordSnapshotRefresh(coin, result string) {
	SnapshotRefreshesTotal.WithLabelValues(coin, result).Inc()
}

// RecordCacheFallback records a lookup that fell back to the store.
func RecordCacheFallback(coin, outcome string) {
	CacheFallbacksTotal.WithLabelValues(coin, outcome).Inc()
}
