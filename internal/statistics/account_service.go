// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package statistics

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/watchstats/internal/apperr"
	"github.com/tomtom215/watchstats/internal/cache"
	"github.com/tomtom215/watchstats/internal/logging"
	"github.com/tomtom215/watchstats/internal/metrics"
	"github.com/tomtom215/watchstats/internal/models"
)

// AccountService merges the statistics of every profile of an account.
type AccountService struct {
	profiles  ProfileDirectory
	stats     ProfileReader
	source    DataSource
	cache     *cache.Service
	reporter  ErrorReporter
	ttl       time.Duration
	maxFanout int
	logger    zerolog.Logger
}

// AccountOption configures an AccountService.
type AccountOption func(*AccountService)

// WithAccountTTL overrides the account cache lifetime.
func WithAccountTTL(ttl time.Duration) AccountOption {
	return func(s *AccountService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithMaxFanout bounds how many profiles are queried at once. Zero means no limit.
func WithMaxFanout(n int) AccountOption {
	return func(s *AccountService) {
		s.maxFanout = n
	}
}

// NewAccountService creates an AccountService.
func NewAccountService(profiles ProfileDirectory, stats ProfileReader, source DataSource, c *cache.Service, reporter ErrorReporter, opts ...AccountOption) *AccountService {
	s := &AccountService{
		profiles: profiles,
		stats:    stats,
		source:   source,
		cache:    c,
		reporter: reporter,
		ttl:      cache.AccountTTL,
		logger:   logging.WithComponent("account_statistics"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetAccountStatistics returns content counts and progress summed over every
// profile, with unique content counted once per account.
func (s *AccountService) GetAccountStatistics(ctx context.Context, accountID int) (models.AccountStatistics, error) {
	return accountMetric(ctx, s, "getAccountStatistics", accountID, cache.MetricStatistics,
		func(ctx context.Context, profiles []models.Profile) (models.AccountStatistics, error) {
			var unique models.UniqueContentCounts
			var values []models.ProfileStatistics

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() (err error) {
				unique, err = s.source.CountAccountUniqueContent(gctx, accountID)
				return err
			})
			g.Go(func() (err error) {
				values, err = fanOut(gctx, s.maxFanout, profiles, s.stats.GetProfileStatistics)
				return err
			})
			if err := g.Wait(); err != nil {
				return models.AccountStatistics{}, err
			}
			return MergeAccountStatistics(accountID, profiles, values, unique), nil
		})
}

// GetAccountAbandonmentRiskStats merges abandonment risk across profiles.
func (s *AccountService) GetAccountAbandonmentRiskStats(ctx context.Context, accountID int) (models.AbandonmentRiskStats, error) {
	return mergedAccountMetric(ctx, s, "getAccountAbandonmentRiskStats", accountID, cache.MetricAbandonmentRisk,
		s.stats.GetAbandonmentRiskStats, MergeAbandonmentRisk)
}

// GetAccountActivityTimeline merges activity timelines across profiles.
func (s *AccountService) GetAccountActivityTimeline(ctx context.Context, accountID int) (models.ActivityTimeline, error) {
	return mergedAccountMetric(ctx, s, "getAccountActivityTimeline", accountID, cache.MetricActivityTimeline,
		s.stats.GetActivityTimeline, MergeActivityTimeline)
}

// GetAccountBingeWatchingStats merges binge statistics across profiles.
func (s *AccountService) GetAccountBingeWatchingStats(ctx context.Context, accountID int) (models.BingeWatchingStats, error) {
	return mergedAccountMetric(ctx, s, "getAccountBingeWatchingStats", accountID, cache.MetricBingeWatchingStats,
		s.stats.GetBingeWatchingStats, MergeBingeWatching)
}

// GetAccountMilestoneStats merges milestone totals across profiles.
func (s *AccountService) GetAccountMilestoneStats(ctx context.Context, accountID int) (models.MilestoneStats, error) {
	return mergedAccountMetric(ctx, s, "getAccountMilestoneStats", accountID, cache.MetricMilestoneStats,
		s.stats.GetMilestoneStats, MergeMilestones)
}

// GetAccountWatchStreakStats merges watch streaks across profiles.
func (s *AccountService) GetAccountWatchStreakStats(ctx context.Context, accountID int) (models.WatchStreakStats, error) {
	return mergedAccountMetric(ctx, s, "getAccountWatchStreakStats", accountID, cache.MetricWatchStreakStats,
		s.stats.GetWatchStreakStats, MergeWatchStreaks)
}

// GetAccountTimeToWatchStats merges time-to-watch statistics across profiles.
func (s *AccountService) GetAccountTimeToWatchStats(ctx context.Context, accountID int) (models.TimeToWatchStats, error) {
	return mergedAccountMetric(ctx, s, "getAccountTimeToWatchStats", accountID, cache.MetricTimeToWatchStats,
		s.stats.GetTimeToWatchStats, MergeTimeToWatch)
}

// GetAccountUnairedContentStats merges unaired content counts across profiles.
func (s *AccountService) GetAccountUnairedContentStats(ctx context.Context, accountID int) (models.UnairedContentStats, error) {
	return mergedAccountMetric(ctx, s, "getAccountUnairedContentStats", accountID, cache.MetricUnairedContentStats,
		s.stats.GetUnairedContentStats, MergeUnairedContent)
}

// InvalidateAccount drops every cached account metric. Profile entries are untouched.
func (s *AccountService) InvalidateAccount(ctx context.Context, accountID int) error {
	label := opLabel("invalidateAccount", accountID)
	if accountID <= 0 {
		return apperr.Validation(label, apperr.ErrInvalidID)
	}
	if err := s.cache.InvalidateAccount(ctx, accountID); err != nil {
		return s.reporter.HandleError(err, label)
	}
	return nil
}

// mergedAccountMetric fans fetch out over the account's profiles and merges the results.
func mergedAccountMetric[T any](ctx context.Context, s *AccountService, op string, accountID int, metric cache.Metric,
	fetch func(context.Context, int) (T, error), merge func([]T) T) (T, error) {
	return accountMetric(ctx, s, op, accountID, metric,
		func(ctx context.Context, profiles []models.Profile) (T, error) {
			values, err := fanOut(ctx, s.maxFanout, profiles, fetch)
			if err != nil {
				var zero T
				return zero, err
			}
			return merge(values), nil
		})
}

// accountMetric validates the account and runs compute behind the account
// cache. Profiles are resolved on a miss only, so a cached result is served
// without the directory. An account without profiles fails with a validation
// error, which is never cached and never reported.
func accountMetric[T any](ctx context.Context, s *AccountService, op string, accountID int, metric cache.Metric,
	compute func(context.Context, []models.Profile) (T, error)) (T, error) {
	var zero T
	label := opLabel(op, accountID)
	if accountID <= 0 {
		return zero, apperr.Validation(label, apperr.ErrInvalidID)
	}

	value, err := cache.GetOrSet(ctx, s.cache, cache.AccountKey(accountID, metric), s.ttl,
		func(ctx context.Context) (T, error) {
			profiles, err := s.profiles.GetProfilesByAccountID(ctx, accountID)
			if err != nil {
				return zero, err
			}
			if len(profiles) == 0 {
				return zero, apperr.Validation(label, apperr.ErrNoProfiles)
			}
			metrics.RecordFanout(len(profiles))
			s.logger.Debug().Int("account_id", accountID).Str("metric", string(metric)).Int("profiles", len(profiles)).Msg("computing account statistic")
			return compute(ctx, profiles)
		})
	if err != nil {
		if apperr.IsValidation(err) {
			return zero, err
		}
		return zero, s.reporter.HandleError(err, label)
	}
	return value, nil
}

// fanOut calls fetch for every profile concurrently. Results keep the order of
// profiles. The first error cancels the remaining calls and is returned alone.
func fanOut[T any](ctx context.Context, limit int, profiles []models.Profile, fetch func(context.Context, int) (T, error)) ([]T, error) {
	results := make([]T, len(profiles))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, p := range profiles {
		g.Go(func() error {
			v, err := fetch(gctx, p.ID)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
