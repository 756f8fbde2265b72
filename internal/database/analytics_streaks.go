// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/watchstats/internal/models"
)

// dayCount is the number of episodes watched on one calendar day.
type dayCount struct {
	day      time.Time
	episodes int
}

// GetWatchStreaks returns consecutive-day watch streaks of a profile.
func (db *DB) GetWatchStreaks(ctx context.Context, profileID int) (_ models.WatchStreakStats, err error) {
	defer observe("watch_streaks", time.Now(), &err)
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT CAST(updated_at AS DATE) AS day, COUNT(*)
		FROM episode_watch_status
		WHERE profile_id = $1 AND status = 'WATCHED'
		GROUP BY day
		ORDER BY day
	`, profileID)
	if err != nil {
		return models.WatchStreakStats{}, fmt.Errorf("failed to query watch days: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var days []dayCount
	for rows.Next() {
		var d dayCount
		if err := rows.Scan(&d.day, &d.episodes); err != nil {
			return models.WatchStreakStats{}, fmt.Errorf("failed to scan watch day: %w", err)
		}
		days = append(days, d)
	}
	if err = rows.Err(); err != nil {
		return models.WatchStreakStats{}, fmt.Errorf("error iterating watch days: %w", err)
	}

	return computeStreaks(days, db.today()), nil
}

// computeStreaks derives streaks from distinct days in ascending order.
//
// The current streak is the run ending today or yesterday, so a streak is not
// broken before the day is over. The longest period is the earliest run of
// maximal length. AverageEpisodesPerDay is taken over days with activity.
func computeStreaks(days []dayCount, today time.Time) models.WatchStreakStats {
	var stats models.WatchStreakStats
	if len(days) == 0 {
		return stats
	}

	totalEpisodes := 0
	runStart := 0
	for i, d := range days {
		totalEpisodes += d.episodes
		if i > 0 && daysBetween(days[i-1].day, d.day) != 1 {
			runStart = i
		}
		if length := i - runStart + 1; length > stats.LongestStreak {
			stats.LongestStreak = length
			stats.LongestStreakPeriod = models.StreakPeriod{
				StartDate: dateKey(days[runStart].day),
				EndDate:   dateKey(d.day),
				Days:      length,
			}
		}
	}

	// runStart now marks the start of the final run.
	last := days[len(days)-1].day
	if gap := daysBetween(last, today); gap == 0 || gap == 1 {
		stats.CurrentStreak = len(days) - runStart
		stats.StreakStartDate = dateKey(days[runStart].day)
	}

	stats.AverageEpisodesPerDay = round2(float64(totalEpisodes) / float64(len(days)))
	return stats
}
