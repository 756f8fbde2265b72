// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package models

import (
	"time"
)

// BingeSession represents a detected binge-watching session
type BingeSession struct {
	ShowID       int       `json:"show_id"`
	ShowTitle    string    `json:"show_title"`
	EpisodeCount int       `json:"episode_count"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

// BingedShow represents how often a show was binged
type BingedShow struct {
	ShowID            int    `json:"show_id"`
	ShowTitle         string `json:"show_title"`
	BingeSessionCount int    `json:"binge_session_count"`
}

// BingeWatchingStats represents overall binge-watching behavior
type BingeWatchingStats struct {
	BingeSessionCount       int          `json:"binge_session_count"`
	AverageEpisodesPerBinge float64      `json:"average_episodes_per_binge"`
	LongestBingeSession     BingeSession `json:"longest_binge_session"`
	TopBingedShows          []BingedShow `json:"top_binged_shows"`
}
