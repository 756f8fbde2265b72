// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package cache

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Entry lifetimes. Account aggregates cost N profile computations, so they live twice as long.
const (
	ProfileTTL = 1800 * time.Second
	AccountTTL = 2 * ProfileTTL
)

// Scope is the owner namespace of a cache key.
type Scope string

const (
	ScopeProfile Scope = "profile"
	ScopeAccount Scope = "account"
)

// Valid reports whether s is a known scope.
func (s Scope) Valid() bool {
	return s == ScopeProfile || s == ScopeAccount
}

// Metric names a cached statistic family.
type Metric string

const (
	MetricStatistics          Metric = "statistics"
	MetricAbandonmentRisk     Metric = "abandonment_risk_stats"
	MetricActivityTimeline    Metric = "activity_timeline"
	MetricBingeWatchingStats  Metric = "binge_watching_stats"
	MetricMilestoneStats      Metric = "milestone_stats"
	MetricWatchStreakStats    Metric = "watch_streak_stats"
	MetricTimeToWatchStats    Metric = "time_to_watch_stats"
	MetricUnairedContentStats Metric = "unaired_content_stats"
)

// AllMetrics lists every metric family in a stable order.
var AllMetrics = []Metric{
	MetricStatistics,
	MetricAbandonmentRisk,
	MetricActivityTimeline,
	MetricBingeWatchingStats,
	MetricMilestoneStats,
	MetricWatchStreakStats,
	MetricTimeToWatchStats,
	MetricUnairedContentStats,
}

// Valid reports whether m is a known metric.
func (m Metric) Valid() bool {
	for _, known := range AllMetrics {
		if m == known {
			return true
		}
	}
	return false
}

// Key builds "{scope}_{id}_{metric}".
func Key(scope Scope, id int, metric Metric) string {
	return fmt.Sprintf("%s_%d_%s", scope, id, metric)
}

// ProfileKey builds a profile scoped key, e.g. profile_12_binge_watching_stats.
func ProfileKey(profileID int, metric Metric) string {
	return Key(ScopeProfile, profileID, metric)
}

// AccountKey builds an account scoped key, e.g. account_3_milestone_stats.
func AccountKey(accountID int, metric Metric) string {
	return Key(ScopeAccount, accountID, metric)
}

// ParseKey splits a key built by Key. ok is false for anything else.
func ParseKey(key string) (scope Scope, id int, metric Metric, ok bool) {
	parts := strings.SplitN(key, "_", 3)
	if len(parts) != 3 {
		return "", 0, "", false
	}
	scope = Scope(parts[0])
	metric = Metric(parts[2])
	id, err := strconv.Atoi(parts[1])
	if err != nil || !scope.Valid() || !metric.Valid() {
		return "", 0, "", false
	}
	return scope, id, metric, true
}
