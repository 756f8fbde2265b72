// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package models

// WatchStatusCounts counts tracked items per watch status.
type WatchStatusCounts struct {
	NotWatched int `json:"not_watched"`
	Watching   int `json:"watching"`
	Watched    int `json:"watched"`
	UpToDate   int `json:"up_to_date"`
	Unaired    int `json:"unaired"`
}

// Add increments the counter matching status by n. Unknown statuses are ignored.
func (c *WatchStatusCounts) Add(status WatchStatus, n int) {
	switch status {
	case StatusNotWatched:
		c.NotWatched += n
	case StatusWatching:
		c.Watching += n
	case StatusWatched:
		c.Watched += n
	case StatusUpToDate:
		c.UpToDate += n
	case StatusUnaired:
		c.Unaired += n
	}
}

// Completed returns the number of items that are WATCHED or UP_TO_DATE.
func (c WatchStatusCounts) Completed() int {
	return c.Watched + c.UpToDate
}

// ContentStatistics summarizes the shows or movies tracked by a profile.
type ContentStatistics struct {
	Total               int               `json:"total"`
	WatchStatusCounts   WatchStatusCounts `json:"watch_status_counts"`
	GenreDistribution   map[string]int    `json:"genre_distribution"`
	ServiceDistribution map[string]int    `json:"service_distribution"`
	WatchProgress       float64           `json:"watch_progress"` // % of items completed
}

// ShowProgress is the episode progress of a single tracked show.
type ShowProgress struct {
	ShowID          int         `json:"show_id"`
	Title           string      `json:"title"`
	Status          WatchStatus `json:"status"`
	TotalEpisodes   int         `json:"total_episodes"`
	WatchedEpisodes int         `json:"watched_episodes"`
	Percentage      float64     `json:"percentage"`
}

// EpisodeWatchProgress is the aired-episode progress across all tracked shows.
type EpisodeWatchProgress struct {
	TotalEpisodes   int            `json:"total_episodes"`
	WatchedEpisodes int            `json:"watched_episodes"`
	WatchProgress   float64        `json:"watch_progress"`
	ShowsProgress   []ShowProgress `json:"shows_progress"`
}

// ProfileStatistics is the combined show, movie and episode statistics of one profile.
type ProfileStatistics struct {
	ProfileID            int                  `json:"profile_id"`
	ShowStatistics       ContentStatistics    `json:"show_statistics"`
	MovieStatistics      ContentStatistics    `json:"movie_statistics"`
	EpisodeWatchProgress EpisodeWatchProgress `json:"episode_watch_progress"`
}

// UniqueContentCounts counts distinct shows and movies tracked anywhere in an account.
type UniqueContentCounts struct {
	ShowCount  int `json:"show_count"`
	MovieCount int `json:"movie_count"`
}

// ProfileSummary is a per-profile line in the account statistics breakdown.
type ProfileSummary struct {
	ProfileID       int     `json:"profile_id"`
	ProfileName     string  `json:"profile_name"`
	ShowProgress    float64 `json:"show_progress"`
	MovieProgress   float64 `json:"movie_progress"`
	EpisodeProgress float64 `json:"episode_progress"`
}

// AccountStatistics rolls profile statistics up to the account level.
type AccountStatistics struct {
	AccountID            int                  `json:"account_id"`
	ProfileCount         int                  `json:"profile_count"`
	UniqueContent        UniqueContentCounts  `json:"unique_content"`
	ShowStatistics       ContentStatistics    `json:"show_statistics"`
	MovieStatistics      ContentStatistics    `json:"movie_statistics"`
	EpisodeWatchProgress EpisodeWatchProgress `json:"episode_watch_progress"`
	ProfileBreakdown     []ProfileSummary     `json:"profile_breakdown"`
}
