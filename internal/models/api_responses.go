// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"binge_session_count": 25, ...},
//	  "metadata": {
//	    "timestamp": "2026-01-28T12:00:00Z",
//	    "query_time_ms": 45
//	  }
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability and performance tracking.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters or an account without profiles
//   - NOT_FOUND: Resource doesn't exist
//   - DEPENDENCY_ERROR: Data source or cache backend unavailable
//   - INTERNAL_ERROR: Anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status       string    `json:"status"`
	Version      string    `json:"version"`
	DatabaseOK   bool      `json:"database_ok"`
	CacheBackend string    `json:"cache_backend"`
	BreakerState string    `json:"breaker_state,omitempty"`
	Uptime       float64   `json:"uptime_seconds"`
	CheckedAt    time.Time `json:"checked_at"`
}
