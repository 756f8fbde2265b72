// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package database

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/tomtom215/watchstats/internal/models"
)

// Activity timeline windows.
const (
	ActivityDailyDays    = 30
	ActivityWeeklyWeeks  = 12
	ActivityMonthlyCount = 12
)

// GetActivityTimeline returns episode watch counts per day for the last 30
// days, per week for the last 12 weeks and episode and movie counts per month
// for the last 12 months. Periods without activity are omitted.
func (db *DB) GetActivityTimeline(ctx context.Context, profileID int) (_ models.ActivityTimeline, err error) {
	defer observe("activity_timeline", time.Now(), &err)
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	var timeline models.ActivityTimeline
	if timeline.DailyActivity, err = db.dailyActivity(ctx, profileID); err != nil {
		return models.ActivityTimeline{}, err
	}
	if timeline.WeeklyActivity, err = db.weeklyActivity(ctx, profileID); err != nil {
		return models.ActivityTimeline{}, err
	}
	if timeline.MonthlyActivity, err = db.monthlyActivity(ctx, profileID); err != nil {
		return models.ActivityTimeline{}, err
	}
	return timeline, nil
}

func (db *DB) dailyActivity(ctx context.Context, profileID int) ([]models.DailyActivity, error) {
	since := db.today().AddDate(0, 0, -ActivityDailyDays)
	rows, err := db.conn.QueryContext(ctx, `
		SELECT
			CAST(ews.updated_at AS DATE) AS day,
			COUNT(*) AS episodes_watched,
			COUNT(DISTINCT e.show_id) AS shows_watched
		FROM episode_watch_status ews
		JOIN episodes e ON e.id = ews.episode_id
		WHERE ews.profile_id = $1 AND ews.status = 'WATCHED' AND ews.updated_at >= $2
		GROUP BY day
		ORDER BY day
	`, profileID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily activity: %w", err)
	}
	defer closeWithLog(rows, "rows")

	daily := []models.DailyActivity{}
	for rows.Next() {
		var day time.Time
		var a models.DailyActivity
		if err := rows.Scan(&day, &a.EpisodesWatched, &a.ShowsWatched); err != nil {
			return nil, fmt.Errorf("failed to scan daily activity: %w", err)
		}
		a.Date = dateKey(day)
		daily = append(daily, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily activity: %w", err)
	}
	return daily, nil
}

func (db *DB) weeklyActivity(ctx context.Context, profileID int) ([]models.WeeklyActivity, error) {
	since := db.today().AddDate(0, 0, -7*ActivityWeeklyWeeks)
	rows, err := db.conn.QueryContext(ctx, `
		SELECT
			CAST(date_trunc('week', ews.updated_at) AS DATE) AS week_start,
			COUNT(*) AS episodes_watched
		FROM episode_watch_status ews
		WHERE ews.profile_id = $1 AND ews.status = 'WATCHED' AND ews.updated_at >= $2
		GROUP BY week_start
		ORDER BY week_start
	`, profileID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekly activity: %w", err)
	}
	defer closeWithLog(rows, "rows")

	weekly := []models.WeeklyActivity{}
	for rows.Next() {
		var week time.Time
		var a models.WeeklyActivity
		if err := rows.Scan(&week, &a.EpisodesWatched); err != nil {
			return nil, fmt.Errorf("failed to scan weekly activity: %w", err)
		}
		a.WeekStart = dateKey(week)
		weekly = append(weekly, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating weekly activity: %w", err)
	}
	return weekly, nil
}

// monthlyActivity merges the episode and movie series on month.
func (db *DB) monthlyActivity(ctx context.Context, profileID int) ([]models.MonthlyActivity, error) {
	since := db.today().AddDate(0, -ActivityMonthlyCount, 0)
	rows, err := db.conn.QueryContext(ctx, `
		SELECT month, kind, COUNT(*)
		FROM (
			SELECT CAST(date_trunc('month', updated_at) AS DATE) AS month, 'episode' AS kind
			FROM episode_watch_status
			WHERE profile_id = $1 AND status = 'WATCHED' AND updated_at >= $2
			UNION ALL
			SELECT CAST(date_trunc('month', updated_at) AS DATE) AS month, 'movie' AS kind
			FROM movie_watch_status
			WHERE profile_id = $1 AND status = 'WATCHED' AND updated_at >= $2
		) watched
		GROUP BY month, kind
		ORDER BY month
	`, profileID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly activity: %w", err)
	}
	defer closeWithLog(rows, "rows")

	byMonth := make(map[string]*models.MonthlyActivity)
	for rows.Next() {
		var month time.Time
		var kind string
		var n int
		if err := rows.Scan(&month, &kind, &n); err != nil {
			return nil, fmt.Errorf("failed to scan monthly activity: %w", err)
		}
		key := month.Format("2006-01")
		a, ok := byMonth[key]
		if !ok {
			a = &models.MonthlyActivity{Month: key}
			byMonth[key] = a
		}
		if kind == "movie" {
			a.MoviesWatched += n
		} else {
			a.EpisodesWatched += n
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly activity: %w", err)
	}

	monthly := make([]models.MonthlyActivity, 0, len(byMonth))
	for _, a := range byMonth {
		monthly = append(monthly, *a)
	}
	sort.Slice(monthly, func(i, j int) bool { return monthly[i].Month < monthly[j].Month })
	return monthly, nil
}
