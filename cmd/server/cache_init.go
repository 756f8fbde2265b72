// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package main

import (
	"context"
	"fmt"

	"github.com/tomtom215/watchstats/internal/cache"
	"github.com/tomtom215/watchstats/internal/config"
	"github.com/tomtom215/watchstats/internal/logging"
)

// openCacheStore opens the store selected by cfg.Backend.
func openCacheStore(ctx context.Context, cfg *config.CacheConfig) (cache.Store, error) {
	switch cache.Backend(cfg.Backend) {
	case cache.BackendMemory, "":
		logging.Info().Msg("Using in-process memory cache")
		return cache.NewMemoryStore(), nil

	case cache.BackendBadger:
		store, err := cache.OpenBadgerStore(cfg.BadgerPath)
		if err != nil {
			return nil, fmt.Errorf("open badger cache at %q: %w", cfg.BadgerPath, err)
		}
		logging.Info().Str("path", cfg.BadgerPath).Msg("Using badger cache")
		return store, nil

	case cache.BackendRedis:
		store, err := cache.NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis cache: %w", err)
		}
		logging.Info().Msg("Using redis cache")
		return store, nil

	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
