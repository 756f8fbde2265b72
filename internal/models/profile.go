// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package models

// Account is the owner of a set of profiles.
type Account struct {
	ID int `json:"id"`
}

// Profile is a named watch-tracking identity belonging to one account.
type Profile struct {
	ID        int    `json:"id"`
	AccountID int    `json:"account_id"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
}

// WatchStatus is the watch state of a show, season, episode or movie for a profile.
type WatchStatus string

const (
	StatusNotWatched WatchStatus = "NOT_WATCHED"
	StatusWatching   WatchStatus = "WATCHING"
	StatusWatched    WatchStatus = "WATCHED"
	StatusUpToDate   WatchStatus = "UP_TO_DATE"

	// StatusUnaired marks content whose release date is in the future.
	// It only shows up in watch status counts, never as a stored state.
	StatusUnaired WatchStatus = "UNAIRED"
)

// IsValid reports whether s is one of the stored watch states.
func (s WatchStatus) IsValid() bool {
	switch s {
	case StatusNotWatched, StatusWatching, StatusWatched, StatusUpToDate:
		return true
	}
	return false
}

// IsComplete reports whether s counts as fully watched.
func (s WatchStatus) IsComplete() bool {
	return s == StatusWatched || s == StatusUpToDate
}
