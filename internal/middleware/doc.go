// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

/*
Package middleware provides HTTP middleware shared by the API router.

Components:

  - RequestID: UUID request IDs (github.com/google/uuid) propagated into the
    logging context together with a new correlation ID
  - PrometheusMetrics: request count and latency per chi route pattern

Both use the http.HandlerFunc form; the api package adapts them to chi's
func(http.Handler) http.Handler signature.
*/
package middleware
