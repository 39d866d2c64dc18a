// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// NewsCacheLookups counts response cache lookups by result (hit, miss).
	NewsCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_cache_lookups_total",
			Help: "News response cache lookups by result",
		},
		[]string{"result"},
	)

	// UpstreamFetches counts calls to the news provider by outcome (ok, upstream_error, network_error).
	UpstreamFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_upstream_fetches_total",
			Help: "Calls to the news provider by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(RequestDuration, RequestTotal, NewsCacheLookups, UpstreamFetches)
}

// RecordRequest records duration and count for an HTTP request. route must be
// a route pattern such as /api/favorites/{id}, never a raw URL path.
func RecordRequest(method, route string, statusCode int, durationSeconds float64) {
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, route, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, route, status).Inc()
}

// RecordCacheLookup counts a cache hit or miss.
func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	NewsCacheLookups.WithLabelValues(result).Inc()
}

// RecordUpstreamFetch counts one provider call by outcome.
func RecordUpstreamFetch(outcome string) {
	UpstreamFetches.WithLabelValues(outcome).Inc()
}
