// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchstats_cache_hits_total",
			Help: "Total number of statistics cache hits",
		},
		[]string{"scope", "metric"}, // scope: "profile", "account"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchstats_cache_misses_total",
			Help: "Total number of statistics cache misses",
		},
		[]string{"scope", "metric"},
	)

	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchstats_cache_errors_total",
			Help: "Total number of cache backing store errors",
		},
		[]string{"operation"}, // "get", "set", "delete", "decode", "encode"
	)

	CacheInvalidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchstats_cache_invalidations_total",
			Help: "Total number of explicitly invalidated cache keys",
		},
		[]string{"scope"},
	)

	ComputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "watchstats_compute_duration_seconds",
			Help:    "Time spent computing a statistic on a cache miss",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"scope", "metric"},
	)

	// Aggregation Metrics
	ProfileFanoutSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "watchstats_profile_fanout_size",
			Help:    "Number of profiles merged per account statistic",
			Buckets: []float64{1, 2, 3, 4, 5, 6, 8, 10, 15, 20},
		},
	)

	Errors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchstats_errors_total",
			Help: "Total number of reported statistics errors",
		},
		[]string{"operation", "kind"},
	)

	// Data Source Metrics
	DataSourceQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "watchstats_datasource_query_duration_seconds",
			Help:    "Duration of statistics data source queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	DataSourceQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchstats_datasource_query_errors_total",
			Help: "Total number of failed data source queries",
		},
		[]string{"query"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "watchstats_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchstats_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchstats_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchstats_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "watchstats_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "watchstats_app_info",
			Help: "Application version information",
		},
		[]string{"version", "cache_backend"},
	)
)

// RecordCacheLookup records a hit or miss for a statistics key.
func RecordCacheLookup(scope, metric string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(scope, metric).Inc()
		return
	}
	CacheMisses.WithLabelValues(scope, metric).Inc()
}

// RecordCacheError records a backing store failure.
func RecordCacheError(operation string) {
	CacheErrors.WithLabelValues(operation).Inc()
}

// RecordInvalidation records count keys invalidated in scope.
func RecordInvalidation(scope string, count int) {
	CacheInvalidations.WithLabelValues(scope).Add(float64(count))
}

// RecordCompute records the time spent computing a statistic on a miss.
func RecordCompute(scope, metric string, duration time.Duration) {
	ComputeDuration.WithLabelValues(scope, metric).Observe(duration.Seconds())
}

// RecordFanout records how many profiles an account statistic merged.
func RecordFanout(profiles int) {
	ProfileFanoutSize.Observe(float64(profiles))
}

// RecordError records a reported error by operation and kind.
func RecordError(operation, kind string) {
	Errors.WithLabelValues(operation, kind).Inc()
}

// RecordDataSourceQuery records a data source query metric
func RecordDataSourceQuery(query string, duration time.Duration, err error) {
	DataSourceQueryDuration.WithLabelValues(query).Observe(duration.Seconds())
	if err != nil {
		DataSourceQueryErrors.WithLabelValues(query).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordBreakerResult records the outcome of a call through a circuit breaker.
func RecordBreakerResult(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

// RecordBreakerTransition records a circuit breaker state change.
// State values follow gobreaker: 0=closed, 1=half-open, 2=open.
func RecordBreakerTransition(name, from, to string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}
