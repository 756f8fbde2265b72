// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package models

import (
	"time"
)

// MilestoneType identifies the quantity a milestone is measured against
type MilestoneType string

const (
	MilestoneEpisodes MilestoneType = "episodes"
	MilestoneMovies   MilestoneType = "movies"
	MilestoneHours    MilestoneType = "hours"
)

// Milestone is a threshold-based achievement. It is derived on read and never stored.
type Milestone struct {
	Type      MilestoneType `json:"type"`
	Threshold int           `json:"threshold"`
	Achieved  bool          `json:"achieved"`
	Progress  float64       `json:"progress"` // 0-100, one decimal
}

// Achievement is a dated, human-readable milestone event
type Achievement struct {
	Description  string    `json:"description"`
	AchievedDate time.Time `json:"achieved_date"`
}

// MilestoneTotals are the lifetime totals milestones are computed from
type MilestoneTotals struct {
	TotalEpisodesWatched int           `json:"total_episodes_watched"`
	TotalMoviesWatched   int           `json:"total_movies_watched"`
	TotalHoursWatched    int           `json:"total_hours_watched"`
	RecentAchievements   []Achievement `json:"recent_achievements"`
}

// MilestoneStats represents lifetime totals with their milestones
type MilestoneStats struct {
	TotalEpisodesWatched int           `json:"total_episodes_watched"`
	TotalMoviesWatched   int           `json:"total_movies_watched"`
	TotalHoursWatched    int           `json:"total_hours_watched"`
	Milestones           []Milestone   `json:"milestones"`
	RecentAchievements   []Achievement `json:"recent_achievements"`
}
