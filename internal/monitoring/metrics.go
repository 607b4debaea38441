// Package monitoring exposes Prometheus metrics and the health endpoint.
package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts handled API requests
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "co2trip_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"handler", "status"},
	)

	// HTTPRequestDuration observes API request latency
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "co2trip_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"handler"},
	)

	// GeocodeRequestsTotal counts outbound geocoding calls
	GeocodeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "co2trip_geocode_requests_total",
			Help: "Total number of geocoding service requests",
		},
		[]string{"operation", "status"},
	)

	// GeocodeRequestDuration observes outbound geocoding latency
	GeocodeRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "co2trip_geocode_request_duration_seconds",
			Help:    "Geocoding service request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"operation"},
	)

	// CacheHits counts geocode cache hits per tier
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "co2trip_geocode_cache_hits_total",
			Help: "Total number of geocode cache hits",
		},
		[]string{"cache_type"},
	)

	// CacheMisses counts geocode cache misses per tier
	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "co2trip_geocode_cache_misses_total",
			Help: "Total number of geocode cache misses",
		},
		[]string{"cache_type"},
	)
)

// ObserveGeocodeRequest records one outbound geocoding call
func ObserveGeocodeRequest(operation, status string, duration time.Duration) {
	GeocodeRequestsTotal.WithLabelValues(operation, status).Inc()
	GeocodeRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// MetricsHandler returns the Prometheus scrape handler
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
