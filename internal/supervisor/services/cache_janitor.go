// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/watchstats/internal/cache"
	"github.com/tomtom215/watchstats/internal/logging"
)

// badgerDiscardRatio is the fraction of a value log file that must be garbage
// before badger rewrites it.
const badgerDiscardRatio = 0.5

// expirySweeper drops expired entries. *cache.MemoryStore implements it.
type expirySweeper interface {
	Cleanup() int
}

// valueLogCollector reclaims disk space. *cache.BadgerStore implements it.
type valueLogCollector interface {
	RunValueLogGC(discardRatio float64) error
}

// CacheJanitor periodically maintains a cache store: it sweeps expired entries
// from the memory store and runs value log GC on badger. Redis expires keys
// itself and needs no janitor.
type CacheJanitor struct {
	store    cache.Store
	interval time.Duration
	logger   zerolog.Logger
}

// NewCacheJanitor creates a janitor for store running every interval.
// A non-positive interval means 5 minutes.
func NewCacheJanitor(store cache.Store, interval time.Duration) *CacheJanitor {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &CacheJanitor{
		store:    store,
		interval: interval,
		logger:   logging.WithComponent("cache-janitor"),
	}
}

// Supported reports whether the store has any maintenance to run.
func (j *CacheJanitor) Supported() bool {
	switch j.store.(type) {
	case expirySweeper, valueLogCollector:
		return true
	}
	return false
}

// Serve implements suture.Service. A GC error is returned so the supervisor
// restarts the janitor with backoff.
func (j *CacheJanitor) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := j.RunOnce(); err != nil {
				return err
			}
		}
	}
}

// RunOnce performs one maintenance pass.
func (j *CacheJanitor) RunOnce() error {
	switch s := j.store.(type) {
	case expirySweeper:
		if evicted := s.Cleanup(); evicted > 0 {
			j.logger.Debug().Int("evicted", evicted).Msg("expired cache entries removed")
		}
	case valueLogCollector:
		if err := s.RunValueLogGC(badgerDiscardRatio); err != nil {
			j.logger.Warn().Err(err).Msg("badger value log GC failed")
			return err
		}
	}
	return nil
}

// String implements fmt.Stringer for suture logs.
func (j *CacheJanitor) String() string {
	return "cache-janitor-" + j.store.Name()
}
