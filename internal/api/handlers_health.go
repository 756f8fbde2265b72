// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/watchstats/internal/models"
)

const (
	breakerOpen   = "open"
	healthTimeout = 2 * time.Second
)

// Health reports database connectivity, cache backend and breaker state.
// It always answers 200; Status is "healthy" or "degraded".
//
// @Summary Health check
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     h.healthStatus(r),
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthLive answers 200 while the process is serving requests.
//
// @Summary Liveness check
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady answers 503 when statistics cannot currently be computed:
// the database is unreachable or the breaker is open.
//
// @Summary Readiness check
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Failure 503 {object} models.APIResponse "Database unreachable or breaker open"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	health := h.healthStatus(r)
	if health.Status != "healthy" {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Service is not ready", nil)
		return
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     health,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

func (h *Handler) healthStatus(r *http.Request) models.HealthStatus {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()
	dbOK := h.db != nil && h.db.Ping(ctx) == nil

	health := models.HealthStatus{
		Status:     "healthy",
		Version:    h.version,
		DatabaseOK: dbOK,
		Uptime:     time.Since(h.startTime).Seconds(),
		CheckedAt:  time.Now(),
	}
	if h.cache != nil {
		health.CacheBackend = h.cache.Backend()
	}
	if h.breaker != nil {
		health.BreakerState = h.breaker.State()
	}
	if !dbOK || health.BreakerState == breakerOpen {
		health.Status = "degraded"
	}
	return health
}
