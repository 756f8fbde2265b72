// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package validation

import (
	"strconv"

	"github.com/tomtom215/watchstats/internal/cache"
)

// ProfileRequest identifies the profile a statistics request is for.
type ProfileRequest struct {
	ProfileID int    `validate:"required,gt=0"`
	Metric    string `validate:"omitempty,cachemetric"`
}

// AccountRequest identifies the account a statistics request is for.
type AccountRequest struct {
	AccountID int    `validate:"required,gt=0"`
	Metric    string `validate:"omitempty,cachemetric"`
}

// InvalidationRequest names the cache entries to drop. An empty Metric drops
// every metric for the scope and id.
type InvalidationRequest struct {
	Scope  string `validate:"required,cachescope"`
	ID     int    `validate:"required,gt=0"`
	Metric string `validate:"omitempty,cachemetric"`
}

// CacheScope returns the validated scope.
func (r InvalidationRequest) CacheScope() cache.Scope {
	return cache.Scope(r.Scope)
}

// CacheMetric returns the validated metric, empty when none was given.
func (r InvalidationRequest) CacheMetric() cache.Metric {
	return cache.Metric(r.Metric)
}

// ParseID converts a path parameter to an int. Non-numeric input becomes 0,
// which the gt=0 rule then rejects with a field-level message.
func ParseID(raw string) int {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return id
}
