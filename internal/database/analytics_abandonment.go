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

// AbandonmentThresholdDays is how long a show in WATCHING status may go
// without a watched episode before it counts as at risk.
const AbandonmentThresholdDays = 30

// GetAbandonmentRisk returns shows the profile started but stopped watching.
//
// A show is at risk when its status is WATCHING and the last watched episode
// is older than AbandonmentThresholdDays. The abandonment rate is the share of
// started shows (WATCHING, WATCHED or UP_TO_DATE) that are at risk.
func (db *DB) GetAbandonmentRisk(ctx context.Context, profileID int) (_ models.AbandonmentRiskStats, err error) {
	defer observe("abandonment_risk", time.Now(), &err)
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	today := db.today()
	rows, err := db.conn.QueryContext(ctx, `
		WITH last_watch AS (
			SELECT e.show_id, MAX(ews.updated_at) AS last_watched
			FROM episode_watch_status ews
			JOIN episodes e ON e.id = ews.episode_id
			WHERE ews.profile_id = $1 AND ews.status = 'WATCHED'
			GROUP BY e.show_id
		),
		unwatched AS (
			SELECT e.show_id, COUNT(*) AS unwatched_episodes
			FROM episodes e
			JOIN show_watch_status sws ON sws.show_id = e.show_id AND sws.profile_id = $1
			LEFT JOIN episode_watch_status ews
				ON ews.episode_id = e.id AND ews.profile_id = $1 AND ews.status = 'WATCHED'
			WHERE e.air_date <= CURRENT_DATE AND ews.episode_id IS NULL
			GROUP BY e.show_id
		)
		SELECT
			s.id,
			s.title,
			lw.last_watched,
			COALESCE(u.unwatched_episodes, 0),
			sws.status
		FROM show_watch_status sws
		JOIN shows s ON s.id = sws.show_id
		JOIN last_watch lw ON lw.show_id = sws.show_id
		LEFT JOIN unwatched u ON u.show_id = sws.show_id
		WHERE sws.profile_id = $1
			AND sws.status = 'WATCHING'
			AND lw.last_watched < $2
		ORDER BY lw.last_watched, s.id
	`, profileID, today.AddDate(0, 0, -AbandonmentThresholdDays))
	if err != nil {
		return models.AbandonmentRiskStats{}, fmt.Errorf("failed to query shows at risk: %w", err)
	}
	defer closeWithLog(rows, "rows")

	stats := models.AbandonmentRiskStats{ShowsAtRisk: []models.ShowAtRisk{}}
	for rows.Next() {
		var show models.ShowAtRisk
		var lastWatched time.Time
		var status string
		if err := rows.Scan(&show.ShowID, &show.ShowTitle, &lastWatched, &show.UnwatchedEpisodes, &status); err != nil {
			return models.AbandonmentRiskStats{}, fmt.Errorf("failed to scan show at risk: %w", err)
		}
		show.DaysSinceLastWatch = daysBetween(lastWatched, today)
		show.Status = models.WatchStatus(status)
		stats.ShowsAtRisk = append(stats.ShowsAtRisk, show)
	}
	if err = rows.Err(); err != nil {
		return models.AbandonmentRiskStats{}, fmt.Errorf("error iterating shows at risk: %w", err)
	}

	var started int
	err = db.conn.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM show_watch_status
		WHERE profile_id = $1 AND status IN ('WATCHING', 'WATCHED', 'UP_TO_DATE')
	`, profileID).Scan(&started)
	if err != nil {
		return models.AbandonmentRiskStats{}, fmt.Errorf("failed to count started shows: %w", err)
	}

	stats.ShowAbandonmentRate = statistics.Percentage(len(stats.ShowsAtRisk), started)
	return stats, nil
}
