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

// contentTables names the tables behind one content kind. The values are
// compile-time constants and never come from input.
type contentTables struct {
	kind     string
	status   string
	genres   string
	services string
	idColumn string
}

var (
	showTables = contentTables{
		kind:     "show",
		status:   "show_watch_status",
		genres:   "show_genres",
		services: "show_services",
		idColumn: "show_id",
	}
	movieTables = contentTables{
		kind:     "movie",
		status:   "movie_watch_status",
		genres:   "movie_genres",
		services: "movie_services",
		idColumn: "movie_id",
	}
)

// GetShowStatistics returns status counts and distributions of tracked shows.
func (db *DB) GetShowStatistics(ctx context.Context, profileID int) (models.ContentStatistics, error) {
	return db.contentStatistics(ctx, showTables, profileID)
}

// GetMovieStatistics returns status counts and distributions of tracked movies.
func (db *DB) GetMovieStatistics(ctx context.Context, profileID int) (models.ContentStatistics, error) {
	return db.contentStatistics(ctx, movieTables, profileID)
}

func (db *DB) contentStatistics(ctx context.Context, t contentTables, profileID int) (_ models.ContentStatistics, err error) {
	defer observe(t.kind+"_statistics", time.Now(), &err)
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	statusRows, err := db.conn.QueryContext(ctx, fmt.Sprintf(`
		SELECT status, COUNT(*)
		FROM %s
		WHERE profile_id = $1
		GROUP BY status
	`, t.status), profileID)
	if err != nil {
		return models.ContentStatistics{}, fmt.Errorf("failed to query %s status counts: %w", t.kind, err)
	}
	statuses, err := scanCounts(statusRows)
	if err != nil {
		return models.ContentStatistics{}, err
	}

	genres, err := db.distribution(ctx, t, t.genres, "genre", profileID)
	if err != nil {
		return models.ContentStatistics{}, err
	}
	services, err := db.distribution(ctx, t, t.services, "service", profileID)
	if err != nil {
		return models.ContentStatistics{}, err
	}

	stats := models.ContentStatistics{
		GenreDistribution:   genres,
		ServiceDistribution: services,
	}
	for status, n := range statuses {
		stats.Total += n
		stats.WatchStatusCounts.Add(models.WatchStatus(status), n)
	}
	stats.WatchProgress = statistics.Percentage(stats.WatchStatusCounts.Completed(), stats.Total)
	return stats, nil
}

// distribution counts tracked items per value of a join table column.
func (db *DB) distribution(ctx context.Context, t contentTables, table, column string, profileID int) (map[string]int, error) {
	rows, err := db.conn.QueryContext(ctx, fmt.Sprintf(`
		SELECT d.%[3]s, COUNT(*)
		FROM %[1]s ws
		JOIN %[2]s d ON d.%[4]s = ws.%[4]s
		WHERE ws.profile_id = $1
		GROUP BY d.%[3]s
	`, t.status, table, column, t.idColumn), profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s %s distribution: %w", t.kind, column, err)
	}
	return scanCounts(rows)
}

// GetWatchProgress returns aired-episode progress per tracked show and overall.
func (db *DB) GetWatchProgress(ctx context.Context, profileID int) (_ models.EpisodeWatchProgress, err error) {
	defer observe("watch_progress", time.Now(), &err)
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT
			s.id,
			s.title,
			sws.status,
			COUNT(e.id) AS total_episodes,
			SUM(CASE WHEN ews.status = 'WATCHED' THEN 1 ELSE 0 END) AS watched_episodes
		FROM show_watch_status sws
		JOIN shows s ON s.id = sws.show_id
		JOIN episodes e ON e.show_id = s.id AND e.air_date <= CURRENT_DATE
		LEFT JOIN episode_watch_status ews
			ON ews.episode_id = e.id AND ews.profile_id = sws.profile_id
		WHERE sws.profile_id = $1
		GROUP BY s.id, s.title, sws.status
		ORDER BY s.title, s.id
	`, profileID)
	if err != nil {
		return models.EpisodeWatchProgress{}, fmt.Errorf("failed to query watch progress: %w", err)
	}
	defer closeWithLog(rows, "rows")

	progress := models.EpisodeWatchProgress{ShowsProgress: []models.ShowProgress{}}
	for rows.Next() {
		var sp models.ShowProgress
		var status string
		if err := rows.Scan(&sp.ShowID, &sp.Title, &status, &sp.TotalEpisodes, &sp.WatchedEpisodes); err != nil {
			return models.EpisodeWatchProgress{}, fmt.Errorf("failed to scan show progress: %w", err)
		}
		sp.Status = models.WatchStatus(status)
		sp.Percentage = statistics.Percentage(sp.WatchedEpisodes, sp.TotalEpisodes)
		progress.TotalEpisodes += sp.TotalEpisodes
		progress.WatchedEpisodes += sp.WatchedEpisodes
		progress.ShowsProgress = append(progress.ShowsProgress, sp)
	}
	if err = rows.Err(); err != nil {
		return models.EpisodeWatchProgress{}, fmt.Errorf("error iterating watch progress: %w", err)
	}

	progress.WatchProgress = statistics.Percentage(progress.WatchedEpisodes, progress.TotalEpisodes)
	return progress, nil
}
