// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

/*
Package cache provides the read-through cache that fronts every statistics
computation.

# Overview

A Service wraps a Store and exposes cache-aside semantics:

	stats, err := cache.GetOrSet(ctx, svc, cache.ProfileKey(12, cache.MetricBingeWatchingStats),
	    cache.ProfileTTL, func(ctx context.Context) (models.BingeWatchingStats, error) {
	        return source.GetBingeWatching(ctx, 12)
	    })

On a hit the cached value is decoded and returned. On a miss the compute
function runs, its result is stored for the TTL and returned. A failed compute
caches nothing and its error is returned unchanged.

Concurrent misses on one key may both compute. WithSingleFlight collapses them
into a single call per process.

# Stores

  - MemoryStore: process-local map with lazy expiry and a janitor sweep
  - BadgerStore: embedded BadgerDB using native entry TTLs, survives restarts
  - RedisStore: shared Redis instance, for running several replicas

Values are JSON encoded before they reach a store, so a hit has exactly the
shape of a freshly computed value regardless of backend.

# Keys

Keys are "{scope}_{id}_{metric}" with scope profile or account, for example
profile_12_binge_watching_stats or account_3_milestone_stats. Profile entries
live 30 minutes and account entries 60 minutes.

# Errors

A Store failure is returned as an apperr.KindCache error. There is no fallback
to stale data.
*/
package cache
