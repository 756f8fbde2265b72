// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package models

// DailyActivity is the watch activity for a single day (YYYY-MM-DD)
type DailyActivity struct {
	Date            string `json:"date"`
	EpisodesWatched int    `json:"episodes_watched"`
	ShowsWatched    int    `json:"shows_watched"`
}

// WeeklyActivity is the watch activity for a week, keyed by the Monday it starts on
type WeeklyActivity struct {
	WeekStart       string `json:"week_start"`
	EpisodesWatched int    `json:"episodes_watched"`
}

// MonthlyActivity is the watch activity for a month (YYYY-MM)
type MonthlyActivity struct {
	Month           string `json:"month"`
	EpisodesWatched int    `json:"episodes_watched"`
	MoviesWatched   int    `json:"movies_watched"`
}

// ActivityTimeline groups watch activity by day, week and month
type ActivityTimeline struct {
	DailyActivity   []DailyActivity   `json:"daily_activity"`
	WeeklyActivity  []WeeklyActivity  `json:"weekly_activity"`
	MonthlyActivity []MonthlyActivity `json:"monthly_activity"`
}
