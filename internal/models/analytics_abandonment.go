// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package models

// ShowAtRisk is a show the profile started but has not touched for a while
type ShowAtRisk struct {
	ShowID             int         `json:"show_id"`
	ShowTitle          string      `json:"show_title"`
	DaysSinceLastWatch int         `json:"days_since_last_watch"`
	UnwatchedEpisodes  int         `json:"unwatched_episodes"`
	Status             WatchStatus `json:"status"`
}

// AbandonmentRiskStats represents abandonment risk across started shows
type AbandonmentRiskStats struct {
	ShowsAtRisk         []ShowAtRisk `json:"shows_at_risk"`
	ShowAbandonmentRate float64      `json:"show_abandonment_rate"` // % of started shows considered abandoned
}
