// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package models

// ShowCompletion is how long a profile took to finish a show after adding it
type ShowCompletion struct {
	ShowID         int    `json:"show_id"`
	ShowTitle      string `json:"show_title"`
	DaysToComplete int    `json:"days_to_complete"`
}

// BacklogAging buckets unwatched content by how long it has been waiting
type BacklogAging struct {
	UnwatchedOver30Days  int `json:"unwatched_over_30_days"`
	UnwatchedOver90Days  int `json:"unwatched_over_90_days"`
	UnwatchedOver365Days int `json:"unwatched_over_365_days"`
}

// TimeToWatchStats represents how quickly tracked content gets watched
type TimeToWatchStats struct {
	AverageDaysToStartShow    float64          `json:"average_days_to_start_show"`
	AverageDaysToCompleteShow float64          `json:"average_days_to_complete_show"`
	FastestCompletions        []ShowCompletion `json:"fastest_completions"`
	BacklogAging              BacklogAging     `json:"backlog_aging"`
}
