// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package database

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/watchstats/internal/apperr"
	"github.com/tomtom215/watchstats/internal/config"
	"github.com/tomtom215/watchstats/internal/logging"
	"github.com/tomtom215/watchstats/internal/metrics"
	"github.com/tomtom215/watchstats/internal/models"
	"github.com/tomtom215/watchstats/internal/statistics"
)

// Source is everything the statistics services read from the database.
type Source interface {
	statistics.DataSource
	statistics.ProfileDirectory
}

var _ Source = (*BreakerSource)(nil)

// BreakerSource wraps a Source with the circuit breaker pattern so a failing
// database is not hammered by every cache miss.
//
// Not-found results and caller cancellations count as successes: they say
// nothing about the health of the database.
type BreakerSource struct {
	next Source
	cb   *gobreaker.CircuitBreaker[any]
	name string
}

// NewBreakerSource creates a BreakerSource. The breaker opens once at least
// cfg.MinRequests calls were made in the current interval and the failure
// ratio reaches cfg.FailureRatio.
func NewBreakerSource(next Source, cfg config.BreakerConfig) *BreakerSource {
	name := "datasource"
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("[CIRCUIT BREAKER] State transition")
			metrics.RecordBreakerTransition(name, from.String(), to.String(), int(to))
		},

		IsSuccessful: func(err error) bool {
			return err == nil ||
				apperr.IsNotFound(err) ||
				errors.Is(err, context.Canceled)
		},
	})

	return &BreakerSource{next: next, cb: cb, name: name}
}

// State returns the breaker state: closed, half-open or open.
func (b *BreakerSource) State() string {
	return b.cb.State().String()
}

// execute runs fn through the breaker and records the outcome.
func execute[T any](b *BreakerSource, fn func() (T, error)) (T, error) {
	var zero T
	result, err := b.cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordBreakerResult(b.name, "rejected")
			return zero, apperr.New(apperr.KindDependency, "circuit breaker "+b.name, err)
		}
		metrics.RecordBreakerResult(b.name, "failure")
		return zero, err
	}

	metrics.RecordBreakerResult(b.name, "success")
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// GetShowStatistics runs the show statistics query with circuit breaker protection
func (b *BreakerSource) GetShowStatistics(ctx context.Context, profileID int) (models.ContentStatistics, error) {
	return execute(b, func() (models.ContentStatistics, error) { return b.next.GetShowStatistics(ctx, profileID) })
}

// GetMovieStatistics runs the movie statistics query with circuit breaker protection
func (b *BreakerSource) GetMovieStatistics(ctx context.Context, profileID int) (models.ContentStatistics, error) {
	return execute(b, func() (models.ContentStatistics, error) { return b.next.GetMovieStatistics(ctx, profileID) })
}

// GetWatchProgress runs the episode progress query with circuit breaker protection
func (b *BreakerSource) GetWatchProgress(ctx context.Context, profileID int) (models.EpisodeWatchProgress, error) {
	return execute(b, func() (models.EpisodeWatchProgress, error) { return b.next.GetWatchProgress(ctx, profileID) })
}

// GetAbandonmentRisk runs the abandonment query with circuit breaker protection
func (b *BreakerSource) GetAbandonmentRisk(ctx context.Context, profileID int) (models.AbandonmentRiskStats, error) {
	return execute(b, func() (models.AbandonmentRiskStats, error) { return b.next.GetAbandonmentRisk(ctx, profileID) })
}

// GetActivityTimeline runs the activity queries with circuit breaker protection
func (b *BreakerSource) GetActivityTimeline(ctx context.Context, profileID int) (models.ActivityTimeline, error) {
	return execute(b, func() (models.ActivityTimeline, error) { return b.next.GetActivityTimeline(ctx, profileID) })
}

// GetBingeWatching runs the binge session query with circuit breaker protection
func (b *BreakerSource) GetBingeWatching(ctx context.Context, profileID int) (models.BingeWatchingStats, error) {
	return execute(b, func() (models.BingeWatchingStats, error) { return b.next.GetBingeWatching(ctx, profileID) })
}

// GetMilestoneTotals runs the watch history query with circuit breaker protection
func (b *BreakerSource) GetMilestoneTotals(ctx context.Context, profileID int) (models.MilestoneTotals, error) {
	return execute(b, func() (models.MilestoneTotals, error) { return b.next.GetMilestoneTotals(ctx, profileID) })
}

// GetWatchStreaks runs the watch day query with circuit breaker protection
func (b *BreakerSource) GetWatchStreaks(ctx context.Context, profileID int) (models.WatchStreakStats, error) {
	return execute(b, func() (models.WatchStreakStats, error) { return b.next.GetWatchStreaks(ctx, profileID) })
}

// GetTimeToWatch runs the time-to-watch queries with circuit breaker protection
func (b *BreakerSource) GetTimeToWatch(ctx context.Context, profileID int) (models.TimeToWatchStats, error) {
	return execute(b, func() (models.TimeToWatchStats, error) { return b.next.GetTimeToWatch(ctx, profileID) })
}

// GetUnairedContent runs the unaired count query with circuit breaker protection
func (b *BreakerSource) GetUnairedContent(ctx context.Context, profileID int) (models.UnairedContentStats, error) {
	return execute(b, func() (models.UnairedContentStats, error) { return b.next.GetUnairedContent(ctx, profileID) })
}

// CountAccountUniqueContent runs the unique content query with circuit breaker protection
func (b *BreakerSource) CountAccountUniqueContent(ctx context.Context, accountID int) (models.UniqueContentCounts, error) {
	return execute(b, func() (models.UniqueContentCounts, error) { return b.next.CountAccountUniqueContent(ctx, accountID) })
}

// GetProfilesByAccountID runs the profile directory query with circuit breaker protection
func (b *BreakerSource) GetProfilesByAccountID(ctx context.Context, accountID int) ([]models.Profile, error) {
	return execute(b, func() ([]models.Profile, error) { return b.next.GetProfilesByAccountID(ctx, accountID) })
}
