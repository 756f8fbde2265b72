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

// GetUnairedContent counts tracked shows, seasons, movies and episodes whose
// watch status is UNAIRED.
func (db *DB) GetUnairedContent(ctx context.Context, profileID int) (_ models.UnairedContentStats, err error) {
	defer observe("unaired_content", time.Now(), &err)
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	var stats models.UnairedContentStats
	err = db.conn.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM show_watch_status WHERE profile_id = $1 AND status = 'UNAIRED'),
			(SELECT COUNT(*) FROM season_watch_status WHERE profile_id = $1 AND status = 'UNAIRED'),
			(SELECT COUNT(*) FROM movie_watch_status WHERE profile_id = $1 AND status = 'UNAIRED'),
			(SELECT COUNT(*) FROM episode_watch_status WHERE profile_id = $1 AND status = 'UNAIRED')
	`, profileID).Scan(
		&stats.UnairedShowCount,
		&stats.UnairedSeasonCount,
		&stats.UnairedMovieCount,
		&stats.UnairedEpisodeCount,
	)
	if err != nil {
		return models.UnairedContentStats{}, fmt.Errorf("failed to count unaired content: %w", err)
	}
	return stats, nil
}
