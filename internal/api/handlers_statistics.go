// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/watchstats/internal/apperr"
	"github.com/tomtom215/watchstats/internal/cache"
	"github.com/tomtom215/watchstats/internal/validation"
)

// ProfileStatistics serves GET /profiles/{profileID}/statistics[/{metric}].
// Without a metric the full profile statistics are returned.
//
// @Summary Get profile statistics
// @Description Returns watch-behavior statistics for one profile. Without a metric every statistic is returned in one object.
// @Tags Statistics
// @Produce json
// @Param profileID path int true "Profile ID" minimum(1)
// @Param metric path string true "Metric; omit the segment for all statistics" Enums(statistics, abandonment_risk_stats, activity_timeline, binge_watching_stats, milestone_stats, watch_streak_stats, time_to_watch_stats, unaired_content_stats)
// @Success 200 {object} models.APIResponse "Statistics computed or served from cache"
// @Failure 400 {object} models.APIResponse "Invalid profile ID or metric"
// @Failure 503 {object} models.APIResponse "Data source unavailable"
// @Failure 500 {object} models.APIResponse "Internal server error"
// @Router /profiles/{profileID}/statistics/{metric} [get]
func (h *Handler) ProfileStatistics(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := validation.ProfileRequest{
		ProfileID: validation.ParseID(chi.URLParam(r, "profileID")),
		Metric:    chi.URLParam(r, "metric"),
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}

	data, err := h.profileMetric(r.Context(), req.ProfileID, metricOrAll(req.Metric))
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondSuccess(w, data, start)
}

// AccountStatistics serves GET /accounts/{accountID}/statistics[/{metric}].
//
// @Summary Get account statistics
// @Description Aggregates watch-behavior statistics over every profile of an account.
// @Tags Statistics
// @Produce json
// @Param accountID path int true "Account ID" minimum(1)
// @Param metric path string true "Metric; omit the segment for all statistics" Enums(statistics, abandonment_risk_stats, activity_timeline, binge_watching_stats, milestone_stats, watch_streak_stats, time_to_watch_stats, unaired_content_stats)
// @Success 200 {object} models.APIResponse "Aggregated statistics"
// @Failure 400 {object} models.APIResponse "Invalid account ID, unknown metric or account without profiles"
// @Failure 503 {object} models.APIResponse "Data source unavailable"
// @Failure 500 {object} models.APIResponse "Internal server error"
// @Router /accounts/{accountID}/statistics/{metric} [get]
func (h *Handler) AccountStatistics(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := validation.AccountRequest{
		AccountID: validation.ParseID(chi.URLParam(r, "accountID")),
		Metric:    chi.URLParam(r, "metric"),
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}

	data, err := h.accountMetric(r.Context(), req.AccountID, metricOrAll(req.Metric))
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondSuccess(w, data, start)
}

func metricOrAll(m string) cache.Metric {
	if m == "" {
		return cache.MetricStatistics
	}
	return cache.Metric(m)
}

func (h *Handler) profileMetric(ctx context.Context, id int, metric cache.Metric) (interface{}, error) {
	switch metric {
	case cache.MetricStatistics:
		return h.profiles.GetProfileStatistics(ctx, id)
	case cache.MetricAbandonmentRisk:
		return h.profiles.GetAbandonmentRiskStats(ctx, id)
	case cache.MetricActivityTimeline:
		return h.profiles.GetActivityTimeline(ctx, id)
	case cache.MetricBingeWatchingStats:
		return h.profiles.GetBingeWatchingStats(ctx, id)
	case cache.MetricMilestoneStats:
		return h.profiles.GetMilestoneStats(ctx, id)
	case cache.MetricWatchStreakStats:
		return h.profiles.GetWatchStreakStats(ctx, id)
	case cache.MetricTimeToWatchStats:
		return h.profiles.GetTimeToWatchStats(ctx, id)
	case cache.MetricUnairedContentStats:
		return h.profiles.GetUnairedContentStats(ctx, id)
	}
	return nil, apperr.Validationf("profileMetric", "unknown metric %q", metric)
}

func (h *Handler) accountMetric(ctx context.Context, id int, metric cache.Metric) (interface{}, error) {
	switch metric {
	case cache.MetricStatistics:
		return h.accounts.GetAccountStatistics(ctx, id)
	case cache.MetricAbandonmentRisk:
		return h.accounts.GetAccountAbandonmentRiskStats(ctx, id)
	case cache.MetricActivityTimeline:
		return h.accounts.GetAccountActivityTimeline(ctx, id)
	case cache.MetricBingeWatchingStats:
		return h.accounts.GetAccountBingeWatchingStats(ctx, id)
	case cache.MetricMilestoneStats:
		return h.accounts.GetAccountMilestoneStats(ctx, id)
	case cache.MetricWatchStreakStats:
		return h.accounts.GetAccountWatchStreakStats(ctx, id)
	case cache.MetricTimeToWatchStats:
		return h.accounts.GetAccountTimeToWatchStats(ctx, id)
	case cache.MetricUnairedContentStats:
		return h.accounts.GetAccountUnairedContentStats(ctx, id)
	}
	return nil, apperr.Validationf("accountMetric", "unknown metric %q", metric)
}
