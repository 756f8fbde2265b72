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

// Binge detection parameters.
const (
	// BingeMinEpisodes is the fewest episodes of one show that form a binge.
	BingeMinEpisodes = 3

	// BingeGapSeconds is the longest pause between two episodes of the same
	// binge session (6 hours).
	BingeGapSeconds = 21600
)

// GetBingeWatching analyzes binge-watching sessions of a profile.
//
// A binge session is BingeMinEpisodes or more episodes of the same show where
// consecutive watches are at most BingeGapSeconds apart.
//
// SQL Implementation:
// LAG finds the previous watch of the same show, a session marker starts a new
// session after a long gap, and a running SUM of markers numbers the sessions.
// Ranking and averaging happen in Go over the returned sessions.
func (db *DB) GetBingeWatching(ctx context.Context, profileID int) (_ models.BingeWatchingStats, err error) {
	defer observe("binge_watching", time.Now(), &err)
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	sessions, err := db.queryBingeSessions(ctx, profileID)
	if err != nil {
		return models.BingeWatchingStats{}, err
	}
	return summarizeBinges(sessions), nil
}

// queryBingeSessions retrieves every binge session ordered by start time.
func (db *DB) queryBingeSessions(ctx context.Context, profileID int) ([]models.BingeSession, error) {
	rows, err := db.conn.QueryContext(ctx, fmt.Sprintf(`
		WITH episode_watches AS (
			SELECT
				e.show_id,
				ews.updated_at AS watched_at,
				LAG(ews.updated_at) OVER (
					PARTITION BY e.show_id
					ORDER BY ews.updated_at
				) AS prev_watched_at
			FROM episode_watch_status ews
			JOIN episodes e ON e.id = ews.episode_id
			WHERE ews.profile_id = $1 AND ews.status = 'WATCHED'
		),
		session_markers AS (
			SELECT *,
				CASE
					WHEN prev_watched_at IS NULL
						OR EXTRACT(EPOCH FROM (watched_at - prev_watched_at)) > %d
					THEN 1
					ELSE 0
				END AS is_new_session
			FROM episode_watches
		),
		session_groups AS (
			SELECT *,
				SUM(is_new_session) OVER (
					PARTITION BY show_id
					ORDER BY watched_at
					ROWS BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW
				) AS session_id
			FROM session_markers
		)
		SELECT
			sg.show_id,
			s.title,
			COUNT(*) AS episode_count,
			MIN(sg.watched_at) AS start_date,
			MAX(sg.watched_at) AS end_date
		FROM session_groups sg
		JOIN shows s ON s.id = sg.show_id
		GROUP BY sg.show_id, s.title, sg.session_id
		HAVING COUNT(*) >= %d
		ORDER BY start_date, sg.show_id
	`, BingeGapSeconds, BingeMinEpisodes), profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query binge sessions: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var sessions []models.BingeSession
	for rows.Next() {
		var session models.BingeSession
		if err := rows.Scan(
			&session.ShowID,
			&session.ShowTitle,
			&session.EpisodeCount,
			&session.StartDate,
			&session.EndDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan binge session: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating binge sessions: %w", err)
	}
	return sessions, nil
}

// summarizeBinges derives binge statistics from sessions ordered by start.
// The longest session is the earliest of those with the most episodes.
func summarizeBinges(sessions []models.BingeSession) models.BingeWatchingStats {
	stats := models.BingeWatchingStats{
		BingeSessionCount: len(sessions),
		TopBingedShows:    []models.BingedShow{},
	}
	if len(sessions) == 0 {
		return stats
	}

	totalEpisodes := 0
	var order []int
	perShow := make(map[int]*models.BingedShow)
	for _, s := range sessions {
		totalEpisodes += s.EpisodeCount
		if s.EpisodeCount > stats.LongestBingeSession.EpisodeCount {
			stats.LongestBingeSession = s
		}
		show, ok := perShow[s.ShowID]
		if !ok {
			show = &models.BingedShow{ShowID: s.ShowID, ShowTitle: s.ShowTitle}
			perShow[s.ShowID] = show
			order = append(order, s.ShowID)
		}
		show.BingeSessionCount++
	}
	stats.AverageEpisodesPerBinge = round2(float64(totalEpisodes) / float64(len(sessions)))

	for _, id := range order {
		stats.TopBingedShows = append(stats.TopBingedShows, *perShow[id])
	}
	sort.SliceStable(stats.TopBingedShows, func(i, j int) bool {
		return stats.TopBingedShows[i].BingeSessionCount > stats.TopBingedShows[j].BingeSessionCount
	})
	if len(stats.TopBingedShows) > statistics.MaxTopBingedShows {
		stats.TopBingedShows = stats.TopBingedShows[:statistics.MaxTopBingedShows]
	}
	return stats
}
