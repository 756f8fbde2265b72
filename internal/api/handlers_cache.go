// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/watchstats/internal/cache"
	"github.com/tomtom215/watchstats/internal/logging"
	"github.com/tomtom215/watchstats/internal/validation"
)

// InvalidationResult is the response body of a cache invalidation.
type InvalidationResult struct {
	Scope   string   `json:"scope"`
	ID      int      `json:"id"`
	Metrics []string `json:"metrics"`
}

// InvalidateCache serves DELETE /cache/{scope}/{id}[/{metric}].
// Without a metric every cached metric of the profile or account is dropped.
// Dropping an account entry leaves its profiles' entries in place.
//
// @Summary Invalidate cached statistics
// @Tags Cache
// @Produce json
// @Param scope path string true "Cache scope" Enums(profile, account)
// @Param id path int true "Profile or account ID" minimum(1)
// @Param metric path string true "Metric to drop; omit the segment to drop every metric"
// @Success 200 {object} models.APIResponse{data=InvalidationResult} "Keys dropped"
// @Failure 400 {object} models.APIResponse "Invalid scope, ID or metric"
// @Failure 503 {object} models.APIResponse "Cache store unavailable"
// @Router /cache/{scope}/{id}/{metric} [delete]
func (h *Handler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := validation.InvalidationRequest{
		Scope:  chi.URLParam(r, "scope"),
		ID:     validation.ParseID(chi.URLParam(r, "id")),
		Metric: chi.URLParam(r, "metric"),
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}

	result := InvalidationResult{Scope: req.Scope, ID: req.ID}
	var err error
	switch {
	case req.Metric != "":
		err = h.cache.Invalidate(r.Context(), cache.Key(req.CacheScope(), req.ID, req.CacheMetric()))
		result.Metrics = []string{req.Metric}
	case req.CacheScope() == cache.ScopeProfile:
		err = h.profiles.InvalidateProfile(r.Context(), req.ID)
		result.Metrics = metricNames()
	default:
		err = h.accounts.InvalidateAccount(r.Context(), req.ID)
		result.Metrics = metricNames()
	}
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("scope", req.Scope).
		Int("id", req.ID).
		Strs("metrics", result.Metrics).
		Msg("cache invalidated")
	respondSuccess(w, result, start)
}

func metricNames() []string {
	names := make([]string, len(cache.AllMetrics))
	for i, m := range cache.AllMetrics {
		names[i] = string(m)
	}
	return names
}
