// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

/*
Package metrics provides Prometheus metrics for the statistics service.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format.

# Available Metrics

Cache:
  - watchstats_cache_hits_total, watchstats_cache_misses_total
    Labels: scope (profile, account), metric
  - watchstats_cache_errors_total
    Labels: operation
  - watchstats_cache_invalidations_total
    Labels: scope
  - watchstats_compute_duration_seconds (histogram)
    Labels: scope, metric

Aggregation:
  - watchstats_profile_fanout_size (histogram)
  - watchstats_errors_total
    Labels: operation, kind

Data source:
  - watchstats_datasource_query_duration_seconds (histogram)
  - watchstats_datasource_query_errors_total
    Labels: query

Circuit breaker:
  - watchstats_circuit_breaker_state
  - watchstats_circuit_breaker_requests_total
  - watchstats_circuit_breaker_state_transitions_total

API:
  - watchstats_api_requests_total
  - watchstats_api_request_duration_seconds

Example PromQL for the profile cache hit rate:

	sum(rate(watchstats_cache_hits_total{scope="profile"}[5m]))
	  / sum(rate(watchstats_cache_hits_total{scope="profile"}[5m]) + rate(watchstats_cache_misses_total{scope="profile"}[5m]))

# Cardinality

Labels are bounded: metric names come from a fixed set and operation labels
never include ids. Profile and account ids appear only in logs.
*/
package metrics
