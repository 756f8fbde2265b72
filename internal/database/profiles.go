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

// GetProfilesByAccountID returns the profiles of an account ordered by id.
// An unknown account yields an empty slice, not an error.
func (db *DB) GetProfilesByAccountID(ctx context.Context, accountID int) (_ []models.Profile, err error) {
	defer observe("profiles_by_account", time.Now(), &err)
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT profile_id, account_id, name, COALESCE(image, '')
		FROM profiles
		WHERE account_id = $1
		ORDER BY profile_id
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer closeWithLog(rows, "rows")

	profiles := []models.Profile{}
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.AccountID, &p.Name, &p.Image); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}
	return profiles, nil
}

// CountAccountUniqueContent counts distinct shows and movies tracked by any
// profile of the account, so content shared by two profiles counts once.
func (db *DB) CountAccountUniqueContent(ctx context.Context, accountID int) (_ models.UniqueContentCounts, err error) {
	defer observe("account_unique_content", time.Now(), &err)
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	var counts models.UniqueContentCounts
	err = db.conn.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(DISTINCT sws.show_id)
				FROM show_watch_status sws
				JOIN profiles p ON p.profile_id = sws.profile_id
				WHERE p.account_id = $1),
			(SELECT COUNT(DISTINCT mws.movie_id)
				FROM movie_watch_status mws
				JOIN profiles p ON p.profile_id = mws.profile_id
				WHERE p.account_id = $1)
	`, accountID).Scan(&counts.ShowCount, &counts.MovieCount)
	if err != nil {
		return models.UniqueContentCounts{}, fmt.Errorf("failed to count unique content: %w", err)
	}
	return counts, nil
}
