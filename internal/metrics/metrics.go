package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"route", "method"},
	)

	timelineFallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_timeline_base_fallback_total",
			Help: "Timelines whose publish time could not be parsed and fell back to the current time",
		},
	)

	providerCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_provider_cache_total",
			Help: "Provider cache lookups by operation and result",
		},
		[]string{"op", "result"},
	)
)

// ObserveRequest records one served HTTP request
func ObserveRequest(route, method string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// TimelineFallback records a timeline built on the current time
func TimelineFallback() {
	timelineFallbackTotal.Inc()
}

// CacheLookup records a provider cache hit, miss or error
func CacheLookup(op, result string) {
	providerCacheTotal.WithLabelValues(op, result).Inc()
}
