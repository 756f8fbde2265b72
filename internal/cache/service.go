// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/watchstats/internal/apperr"
	"github.com/tomtom215/watchstats/internal/logging"
	"github.com/tomtom215/watchstats/internal/metrics"
)

// Service is the cache-aside façade shared by the statistics services.
// One Service is constructed per process and passed by reference.
type Service struct {
	store  Store
	flight *singleflight.Group
	logger zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithSingleFlight collapses concurrent misses on the same key into one compute.
func WithSingleFlight() Option {
	return func(s *Service) {
		s.flight = &singleflight.Group{}
	}
}

// WithLogger sets the logger used for cache diagnostics.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a Service over store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: logging.WithComponent("cache"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backend returns the name of the backing store.
func (s *Service) Backend() string {
	return s.store.Name()
}

// Store returns the backing store.
func (s *Service) Store() Store {
	return s.store
}

// GetOrSet returns the live cached value for key, or runs compute, caches its
// result for ttl and returns it. A compute error is returned as is and nothing
// is cached. Store failures are returned as apperr.KindCache errors.
//
// It is a function rather than a method because methods cannot have type parameters.
func GetOrSet[T any](ctx context.Context, s *Service, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	var zero T
	scope, metric := keyLabels(key)

	data, err := s.store.Get(ctx, key)
	switch {
	case err == nil:
		var value T
		decodeErr := json.Unmarshal(data, &value)
		if decodeErr == nil {
			metrics.RecordCacheLookup(scope, metric, true)
			return value, nil
		}
		// An undecodable entry is recomputed and overwritten.
		metrics.RecordCacheError("decode")
		s.logger.Warn().Err(decodeErr).Str("key", key).Msg("discarding undecodable cache entry")
	case errors.Is(err, ErrMiss):
	default:
		metrics.RecordCacheError("get")
		return zero, apperr.Cache("cache get "+key, err)
	}

	metrics.RecordCacheLookup(scope, metric, false)

	if s.flight == nil {
		return computeAndStore(ctx, s, key, ttl, scope, metric, compute)
	}

	// The shared compute outlives any single caller: it runs detached from the
	// leader's cancellation and each caller stops waiting only on its own ctx.
	// Data source queries stay bounded by their own query timeout.
	shared := context.WithoutCancel(ctx)
	ch := s.flight.DoChan(key, func() (interface{}, error) {
		return computeAndStore(shared, s, key, ttl, scope, metric, compute)
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		value, ok := res.Val.(T)
		if !ok {
			return zero, fmt.Errorf("cache: single-flight result for %s has type %T", key, res.Val)
		}
		return value, nil
	}
}

func computeAndStore[T any](ctx context.Context, s *Service, key string, ttl time.Duration, scope, metric string, compute func(context.Context) (T, error)) (T, error) {
	var zero T

	start := time.Now()
	value, err := compute(ctx)
	if err != nil {
		return zero, err
	}
	metrics.RecordCompute(scope, metric, time.Since(start))

	data, err := json.Marshal(value)
	if err != nil {
		metrics.RecordCacheError("encode")
		return zero, apperr.Cache("cache encode "+key, err)
	}
	if err := s.store.Set(ctx, key, data, ttl); err != nil {
		metrics.RecordCacheError("set")
		return zero, apperr.Cache("cache set "+key, err)
	}
	return value, nil
}

// Invalidate deletes key so the next GetOrSet misses.
func (s *Service) Invalidate(ctx context.Context, key string) error {
	if err := s.store.Delete(ctx, key); err != nil {
		metrics.RecordCacheError("delete")
		return apperr.Cache("cache delete "+key, err)
	}
	scope, _ := keyLabels(key)
	metrics.RecordInvalidation(scope, 1)
	return nil
}

// InvalidateProfile deletes every metric cached for a profile.
func (s *Service) InvalidateProfile(ctx context.Context, profileID int) error {
	return s.invalidateScope(ctx, ScopeProfile, profileID)
}

// InvalidateAccount deletes every metric cached for an account.
func (s *Service) InvalidateAccount(ctx context.Context, accountID int) error {
	return s.invalidateScope(ctx, ScopeAccount, accountID)
}

func (s *Service) invalidateScope(ctx context.Context, scope Scope, id int) error {
	keys := make([]string, 0, len(AllMetrics))
	for _, m := range AllMetrics {
		keys = append(keys, Key(scope, id, m))
	}
	if err := s.store.Delete(ctx, keys...); err != nil {
		metrics.RecordCacheError("delete")
		return apperr.Cache(fmt.Sprintf("cache delete %s %d", scope, id), err)
	}
	metrics.RecordInvalidation(string(scope), len(keys))
	s.logger.Debug().Str("scope", string(scope)).Int("id", id).Msg("cache scope invalidated")
	return nil
}

// Close closes the backing store.
func (s *Service) Close() error {
	return s.store.Close()
}

// keyLabels returns bounded metric labels for key.
func keyLabels(key string) (scope, metric string) {
	sc, _, m, ok := ParseKey(key)
	if !ok {
		return "other", "other"
	}
	return string(sc), string(m)
}
