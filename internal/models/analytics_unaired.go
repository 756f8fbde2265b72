// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package models

// UnairedContentStats counts tracked content that has not been released yet
type UnairedContentStats struct {
	UnairedShowCount    int `json:"unaired_show_count"`
	UnairedSeasonCount  int `json:"unaired_season_count"`
	UnairedMovieCount   int `json:"unaired_movie_count"`
	UnairedEpisodeCount int `json:"unaired_episode_count"`
}
