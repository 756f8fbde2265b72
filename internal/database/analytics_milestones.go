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
	"github.com/tomtom215/watchstats/internal/statistics"
)

// watchDay is the watched content of one calendar day.
type watchDay struct {
	day      time.Time
	episodes int
	movies   int
	minutes  int
}

// GetMilestoneTotals returns lifetime watch totals and the dates on which the
// standard milestone thresholds were crossed, most recent first.
func (db *DB) GetMilestoneTotals(ctx context.Context, profileID int) (_ models.MilestoneTotals, err error) {
	defer observe("milestone_totals", time.Now(), &err)
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT day, kind, COUNT(*), COALESCE(SUM(runtime), 0)
		FROM (
			SELECT CAST(ews.updated_at AS DATE) AS day, 'episode' AS kind, e.runtime
			FROM episode_watch_status ews
			JOIN episodes e ON e.id = ews.episode_id
			WHERE ews.profile_id = $1 AND ews.status = 'WATCHED'
			UNION ALL
			SELECT CAST(mws.updated_at AS DATE) AS day, 'movie' AS kind, m.runtime
			FROM movie_watch_status mws
			JOIN movies m ON m.id = mws.movie_id
			WHERE mws.profile_id = $1 AND mws.status = 'WATCHED'
		) watched
		GROUP BY day, kind
		ORDER BY day, kind
	`, profileID)
	if err != nil {
		return models.MilestoneTotals{}, fmt.Errorf("failed to query watch history: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var days []watchDay
	for rows.Next() {
		var day time.Time
		var kind string
		var count, minutes int
		if err := rows.Scan(&day, &kind, &count, &minutes); err != nil {
			return models.MilestoneTotals{}, fmt.Errorf("failed to scan watch history: %w", err)
		}
		if len(days) == 0 || !days[len(days)-1].day.Equal(day) {
			days = append(days, watchDay{day: day})
		}
		d := &days[len(days)-1]
		if kind == "movie" {
			d.movies += count
		} else {
			d.episodes += count
		}
		d.minutes += minutes
	}
	if err = rows.Err(); err != nil {
		return models.MilestoneTotals{}, fmt.Errorf("error iterating watch history: %w", err)
	}

	return deriveMilestoneTotals(days), nil
}

// thresholdTracker reports each threshold the first time a running total reaches it.
type thresholdTracker struct {
	thresholds []int
	next       int
	format     string
}

func (t *thresholdTracker) crossed(total int, day time.Time, out []models.Achievement) []models.Achievement {
	for t.next < len(t.thresholds) && total >= t.thresholds[t.next] {
		out = append(out, models.Achievement{
			Description:  fmt.Sprintf(t.format, t.thresholds[t.next]),
			AchievedDate: day,
		})
		t.next++
	}
	return out
}

// deriveMilestoneTotals walks days in date order keeping running totals.
func deriveMilestoneTotals(days []watchDay) models.MilestoneTotals {
	episodes := &thresholdTracker{thresholds: statistics.EpisodeThresholds, format: "Watched %d episodes"}
	movies := &thresholdTracker{thresholds: statistics.MovieThresholds, format: "Watched %d movies"}
	hours := &thresholdTracker{thresholds: statistics.HourThresholds, format: "Watched %d hours"}

	var totals models.MilestoneTotals
	var minutes int
	var achieved []models.Achievement
	for _, d := range days {
		totals.TotalEpisodesWatched += d.episodes
		totals.TotalMoviesWatched += d.movies
		minutes += d.minutes

		achieved = episodes.crossed(totals.TotalEpisodesWatched, d.day, achieved)
		achieved = movies.crossed(totals.TotalMoviesWatched, d.day, achieved)
		achieved = hours.crossed(minutes/60, d.day, achieved)
	}
	totals.TotalHoursWatched = minutes / 60

	recent := make([]models.Achievement, 0, min(len(achieved), statistics.MaxRecentAchievements))
	for i := len(achieved) - 1; i >= 0 && len(recent) < statistics.MaxRecentAchievements; i-- {
		recent = append(recent, achieved[i])
	}
	totals.RecentAchievements = recent
	return totals
}
