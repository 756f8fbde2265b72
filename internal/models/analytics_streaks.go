// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package models

// StreakPeriod is a run of consecutive days with at least one episode watched
type StreakPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

// WatchStreakStats represents consecutive-day watch streaks
type WatchStreakStats struct {
	CurrentStreak         int          `json:"current_streak"`
	LongestStreak         int          `json:"longest_streak"`
	StreakStartDate       string       `json:"streak_start_date"` // start of the current streak, empty if none
	LongestStreakPeriod   StreakPeriod `json:"longest_streak_period"`
	AverageEpisodesPerDay float64      `json:"average_episodes_per_day"`
}
