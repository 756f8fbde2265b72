// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

// Package database is the read-only data layer behind the statistics services.
//
// # Overview
//
// DB runs the raw per-profile queries against the watch-status tables
// (show_watch_status, season_watch_status, episode_watch_status and
// movie_watch_status) and the profile directory. It implements
// statistics.DataSource and statistics.ProfileDirectory; nothing in this
// package caches or merges results.
//
// Two drivers are supported through database/sql:
//   - duckdb (default): embedded file database, extension autoload disabled
//   - postgres: lib/pq, for deployments that share the tracker's database
//
// All queries use $n placeholders, which both drivers accept.
//
// # Organization
//
//   - database.go: connection lifecycle and pool configuration
//   - database_utils.go: query timeouts, metrics and date helpers
//   - profiles.go: profile directory and account-wide unique counts
//   - stats_content.go: show/movie status counts and episode progress
//   - analytics_*.go: abandonment, activity, binge, milestones, streaks,
//     time-to-watch and unaired queries
//   - breaker.go: circuit breaker wrapper around any Source
//
// Aggregations that are awkward to express portably (streak runs, milestone
// crossings, binge ranking, backlog buckets) are computed in Go from compact
// per-day result sets.
//
// # Time
//
// Day boundaries are UTC. DB.now is the clock used for "today" and can be
// replaced in tests.
//
// # Errors
//
// Query failures are wrapped with fmt.Errorf and %w. A missing row surfaces as
// sql.ErrNoRows, which apperr classifies as not found. Every query records its
// duration and outcome through the metrics package.
package database
