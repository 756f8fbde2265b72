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
	"github.com/tomtom215/watchstats/internal/statistics"
)

// GetTimeToWatch returns how quickly the profile starts and finishes shows
// after adding them, and how old its unwatched backlog is.
func (db *DB) GetTimeToWatch(ctx context.Context, profileID int) (_ models.TimeToWatchStats, err error) {
	defer observe("time_to_watch", time.Now(), &err)
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	stats := models.TimeToWatchStats{FastestCompletions: []models.ShowCompletion{}}

	if stats.AverageDaysToStartShow, err = db.averageDaysToStart(ctx, profileID); err != nil {
		return models.TimeToWatchStats{}, err
	}

	completions, err := db.showCompletions(ctx, profileID)
	if err != nil {
		return models.TimeToWatchStats{}, err
	}
	if len(completions) > 0 {
		total := 0
		for _, c := range completions {
			total += c.DaysToComplete
		}
		stats.AverageDaysToCompleteShow = round2(float64(total) / float64(len(completions)))
		stats.FastestCompletions = completions[:min(len(completions), statistics.MaxFastestCompletions)]
	}

	if stats.BacklogAging, err = db.backlogAging(ctx, profileID); err != nil {
		return models.TimeToWatchStats{}, err
	}
	return stats, nil
}

// averageDaysToStart averages the days between adding a show and watching its first episode.
func (db *DB) averageDaysToStart(ctx context.Context, profileID int) (float64, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT sws.created_at, MIN(ews.updated_at) AS first_watched
		FROM show_watch_status sws
		JOIN episodes e ON e.show_id = sws.show_id
		JOIN episode_watch_status ews
			ON ews.episode_id = e.id AND ews.profile_id = sws.profile_id AND ews.status = 'WATCHED'
		WHERE sws.profile_id = $1
		GROUP BY sws.show_id, sws.created_at
	`, profileID)
	if err != nil {
		return 0, fmt.Errorf("failed to query show start times: %w", err)
	}
	defer closeWithLog(rows, "rows")

	total, n := 0, 0
	for rows.Next() {
		var added, firstWatched time.Time
		if err := rows.Scan(&added, &firstWatched); err != nil {
			return 0, fmt.Errorf("failed to scan show start time: %w", err)
		}
		total += max(0, daysBetween(added, firstWatched))
		n++
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("error iterating show start times: %w", err)
	}
	if n == 0 {
		return 0, nil
	}
	return round2(float64(total) / float64(n)), nil
}

// showCompletions returns finished shows ordered by days to complete, then show id.
func (db *DB) showCompletions(ctx context.Context, profileID int) ([]models.ShowCompletion, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT s.id, s.title, sws.created_at, sws.updated_at
		FROM show_watch_status sws
		JOIN shows s ON s.id = sws.show_id
		WHERE sws.profile_id = $1 AND sws.status = 'WATCHED'
	`, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query show completions: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var completions []models.ShowCompletion
	for rows.Next() {
		var c models.ShowCompletion
		var added, finished time.Time
		if err := rows.Scan(&c.ShowID, &c.ShowTitle, &added, &finished); err != nil {
			return nil, fmt.Errorf("failed to scan show completion: %w", err)
		}
		c.DaysToComplete = max(0, daysBetween(added, finished))
		completions = append(completions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating show completions: %w", err)
	}

	sort.Slice(completions, func(i, j int) bool {
		if completions[i].DaysToComplete != completions[j].DaysToComplete {
			return completions[i].DaysToComplete < completions[j].DaysToComplete
		}
		return completions[i].ShowID < completions[j].ShowID
	})
	return completions, nil
}

// backlogAging buckets NOT_WATCHED shows by age. Buckets are cumulative: a
// show added 100 days ago counts toward both the 30 and 90 day buckets.
func (db *DB) backlogAging(ctx context.Context, profileID int) (models.BacklogAging, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT created_at
		FROM show_watch_status
		WHERE profile_id = $1 AND status = 'NOT_WATCHED'
	`, profileID)
	if err != nil {
		return models.BacklogAging{}, fmt.Errorf("failed to query backlog: %w", err)
	}
	defer closeWithLog(rows, "rows")

	today := db.today()
	var aging models.BacklogAging
	for rows.Next() {
		var added time.Time
		if err := rows.Scan(&added); err != nil {
			return models.BacklogAging{}, fmt.Errorf("failed to scan backlog entry: %w", err)
		}
		age := daysBetween(added, today)
		if age > 30 {
			aging.UnwatchedOver30Days++
		}
		if age > 90 {
			aging.UnwatchedOver90Days++
		}
		if age > 365 {
			aging.UnwatchedOver365Days++
		}
	}
	if err := rows.Err(); err != nil {
		return models.BacklogAging{}, fmt.Errorf("error iterating backlog: %w", err)
	}
	return aging, nil
}
