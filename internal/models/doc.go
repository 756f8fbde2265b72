// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

/*
Package models defines the data contracts shared by the statistics services,
the cache layer, the data source and the HTTP API.

Every metric result is a plain JSON-serializable struct. The same struct is
returned whether it was computed from the data source or decoded from the
cache, so callers never need to know where a value came from.

Model Categories:

1. Identity:
  - Account: owns one or more profiles
  - Profile: named watch-tracking identity under an account
  - WatchStatus: NOT_WATCHED, WATCHING, WATCHED, UP_TO_DATE

2. Profile metric families (one cache entry each):
  - ProfileStatistics: show/movie counts plus episode watch progress
  - AbandonmentRiskStats: shows drifting towards abandonment
  - ActivityTimeline: daily/weekly/monthly watch counts
  - BingeWatchingStats: binge sessions and most binged shows
  - MilestoneStats: lifetime totals and threshold milestones
  - WatchStreakStats: consecutive watch-day streaks
  - TimeToWatchStats: start/completion latency and backlog aging
  - UnairedContentStats: tracked content that has not aired yet

3. Account metric families:
  - AccountStatistics: profile statistics rolled up across an account
  - The remaining families reuse the profile structs for the merged view

4. API envelope:
  - APIResponse, Metadata, APIError
*/
package models
