// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package statistics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/watchstats/internal/apperr"
	"github.com/tomtom215/watchstats/internal/cache"
	"github.com/tomtom215/watchstats/internal/models"
)

// ProfileService computes and caches the statistics of a single profile.
type ProfileService struct {
	cache    *cache.Service
	source   DataSource
	reporter ErrorReporter
	ttl      time.Duration
}

// ProfileOption configures a ProfileService.
type ProfileOption func(*ProfileService)

// WithProfileTTL overrides the profile cache lifetime.
func WithProfileTTL(ttl time.Duration) ProfileOption {
	return func(s *ProfileService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewProfileService creates a ProfileService. The cache is shared with the
// account service so invalidation reaches both.
func NewProfileService(c *cache.Service, source DataSource, reporter ErrorReporter, opts ...ProfileOption) *ProfileService {
	s := &ProfileService{
		cache:    c,
		source:   source,
		reporter: reporter,
		ttl:      cache.ProfileTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetProfileStatistics returns show, movie and episode progress counts. The
// three sub-queries run concurrently and the first failure cancels the others.
func (s *ProfileService) GetProfileStatistics(ctx context.Context, profileID int) (models.ProfileStatistics, error) {
	return profileMetric(ctx, s, "getProfileStatistics", profileID, cache.MetricStatistics,
		func(ctx context.Context) (models.ProfileStatistics, error) {
			stats := models.ProfileStatistics{ProfileID: profileID}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() (err error) {
				stats.ShowStatistics, err = s.source.GetShowStatistics(gctx, profileID)
				return err
			})
			g.Go(func() (err error) {
				stats.MovieStatistics, err = s.source.GetMovieStatistics(gctx, profileID)
				return err
			})
			g.Go(func() (err error) {
				stats.EpisodeWatchProgress, err = s.source.GetWatchProgress(gctx, profileID)
				return err
			})
			if err := g.Wait(); err != nil {
				return models.ProfileStatistics{}, err
			}
			return stats, nil
		})
}

// GetAbandonmentRiskStats returns the shows the profile is likely to drop.
func (s *ProfileService) GetAbandonmentRiskStats(ctx context.Context, profileID int) (models.AbandonmentRiskStats, error) {
	return profileMetric(ctx, s, "getAbandonmentRiskStats", profileID, cache.MetricAbandonmentRisk,
		func(ctx context.Context) (models.AbandonmentRiskStats, error) {
			return s.source.GetAbandonmentRisk(ctx, profileID)
		})
}

// GetActivityTimeline returns daily, weekly and monthly watch counts.
func (s *ProfileService) GetActivityTimeline(ctx context.Context, profileID int) (models.ActivityTimeline, error) {
	return profileMetric(ctx, s, "getActivityTimeline", profileID, cache.MetricActivityTimeline,
		func(ctx context.Context) (models.ActivityTimeline, error) {
			return s.source.GetActivityTimeline(ctx, profileID)
		})
}

// GetBingeWatchingStats returns binge session statistics.
func (s *ProfileService) GetBingeWatchingStats(ctx context.Context, profileID int) (models.BingeWatchingStats, error) {
	return profileMetric(ctx, s, "getBingeWatchingStats", profileID, cache.MetricBingeWatchingStats,
		func(ctx context.Context) (models.BingeWatchingStats, error) {
			return s.source.GetBingeWatching(ctx, profileID)
		})
}

// GetMilestoneStats returns lifetime totals with their milestones.
func (s *ProfileService) GetMilestoneStats(ctx context.Context, profileID int) (models.MilestoneStats, error) {
	return profileMetric(ctx, s, "getMilestoneStats", profileID, cache.MetricMilestoneStats,
		func(ctx context.Context) (models.MilestoneStats, error) {
			totals, err := s.source.GetMilestoneTotals(ctx, profileID)
			if err != nil {
				return models.MilestoneStats{}, err
			}
			return BuildMilestoneStats(totals), nil
		})
}

// GetWatchStreakStats returns consecutive-day streaks.
func (s *ProfileService) GetWatchStreakStats(ctx context.Context, profileID int) (models.WatchStreakStats, error) {
	return profileMetric(ctx, s, "getWatchStreakStats", profileID, cache.MetricWatchStreakStats,
		func(ctx context.Context) (models.WatchStreakStats, error) {
			return s.source.GetWatchStreaks(ctx, profileID)
		})
}

// GetTimeToWatchStats returns how quickly added content gets started and finished.
func (s *ProfileService) GetTimeToWatchStats(ctx context.Context, profileID int) (models.TimeToWatchStats, error) {
	return profileMetric(ctx, s, "getTimeToWatchStats", profileID, cache.MetricTimeToWatchStats,
		func(ctx context.Context) (models.TimeToWatchStats, error) {
			return s.source.GetTimeToWatch(ctx, profileID)
		})
}

// GetUnairedContentStats returns counts of tracked content not yet released.
func (s *ProfileService) GetUnairedContentStats(ctx context.Context, profileID int) (models.UnairedContentStats, error) {
	return profileMetric(ctx, s, "getUnairedContentStats", profileID, cache.MetricUnairedContentStats,
		func(ctx context.Context) (models.UnairedContentStats, error) {
			return s.source.GetUnairedContent(ctx, profileID)
		})
}

// InvalidateProfile drops every cached metric of the profile.
func (s *ProfileService) InvalidateProfile(ctx context.Context, profileID int) error {
	label := opLabel("invalidateProfile", profileID)
	if profileID <= 0 {
		return apperr.Validation(label, apperr.ErrInvalidID)
	}
	if err := s.cache.InvalidateProfile(ctx, profileID); err != nil {
		return s.reporter.HandleError(err, label)
	}
	return nil
}

// profileMetric is the cache-aside path shared by every profile getter.
func profileMetric[T any](ctx context.Context, s *ProfileService, op string, profileID int, metric cache.Metric, compute func(context.Context) (T, error)) (T, error) {
	var zero T
	label := opLabel(op, profileID)
	if profileID <= 0 {
		return zero, apperr.Validation(label, apperr.ErrInvalidID)
	}

	value, err := cache.GetOrSet(ctx, s.cache, cache.ProfileKey(profileID, metric), s.ttl, compute)
	if err != nil {
		return zero, s.reporter.HandleError(err, label)
	}
	return value, nil
}

func opLabel(op string, id int) string {
	return fmt.Sprintf("%s(%d)", op, id)
}
