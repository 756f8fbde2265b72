// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package statistics

import (
	"context"

	"github.com/tomtom215/watchstats/internal/models"
)

// DataSource runs the aggregate queries behind each metric family.
// Implementations do not retry and do not cache.
type DataSource interface {
	GetShowStatistics(ctx context.Context, profileID int) (models.ContentStatistics, error)
	GetMovieStatistics(ctx context.Context, profileID int) (models.ContentStatistics, error)
	GetWatchProgress(ctx context.Context, profileID int) (models.EpisodeWatchProgress, error)
	GetAbandonmentRisk(ctx context.Context, profileID int) (models.AbandonmentRiskStats, error)
	GetActivityTimeline(ctx context.Context, profileID int) (models.ActivityTimeline, error)
	GetBingeWatching(ctx context.Context, profileID int) (models.BingeWatchingStats, error)
	GetMilestoneTotals(ctx context.Context, profileID int) (models.MilestoneTotals, error)
	GetWatchStreaks(ctx context.Context, profileID int) (models.WatchStreakStats, error)
	GetTimeToWatch(ctx context.Context, profileID int) (models.TimeToWatchStats, error)
	GetUnairedContent(ctx context.Context, profileID int) (models.UnairedContentStats, error)

	// CountAccountUniqueContent counts distinct shows and movies tracked by any profile of the account.
	CountAccountUniqueContent(ctx context.Context, accountID int) (models.UniqueContentCounts, error)
}

// ProfileDirectory resolves the profiles that belong to an account.
type ProfileDirectory interface {
	GetProfilesByAccountID(ctx context.Context, accountID int) ([]models.Profile, error)
}

// ErrorReporter logs a failure under an operation label and returns the error to propagate.
type ErrorReporter interface {
	HandleError(err error, label string) error
}

// ProfileReader is the per-profile statistics surface the account service fans out to.
// *ProfileService implements it.
type ProfileReader interface {
	GetProfileStatistics(ctx context.Context, profileID int) (models.ProfileStatistics, error)
	GetAbandonmentRiskStats(ctx context.Context, profileID int) (models.AbandonmentRiskStats, error)
	GetActivityTimeline(ctx context.Context, profileID int) (models.ActivityTimeline, error)
	GetBingeWatchingStats(ctx context.Context, profileID int) (models.BingeWatchingStats, error)
	GetMilestoneStats(ctx context.Context, profileID int) (models.MilestoneStats, error)
	GetWatchStreakStats(ctx context.Context, profileID int) (models.WatchStreakStats, error)
	GetTimeToWatchStats(ctx context.Context, profileID int) (models.TimeToWatchStats, error)
	GetUnairedContentStats(ctx context.Context, profileID int) (models.UnairedContentStats, error)
}

var _ ProfileReader = (*ProfileService)(nil)
