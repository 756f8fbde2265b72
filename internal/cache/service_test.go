// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/watchstats/internal/apperr"
)

type sample struct {
	Count   int       `json:"count"`
	Average float64   `json:"average"`
	Titles  []string  `json:"titles"`
	When    time.Time `json:"when"`
}

// brokenStore fails every operation.
type brokenStore struct {
	getErr, setErr, delErr error
	inner                  Store
}

func (b *brokenStore) Get(ctx context.Context, key string) ([]byte, error) {
	if b.getErr != nil {
		return nil, b.getErr
	}
	return b.inner.Get(ctx, key)
}

func (b *brokenStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if b.setErr != nil {
		return b.setErr
	}
	return b.inner.Set(ctx, key, value, ttl)
}

func (b *brokenStore) Delete(ctx context.Context, keys ...string) error {
	if b.delErr != nil {
		return b.delErr
	}
	return b.inner.Delete(ctx, keys...)
}

func (b *brokenStore) Name() string { return "broken" }
func (b *brokenStore) Close() error { return nil }

func TestGetOrSetComputesOnce(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())
	key := ProfileKey(12, MetricBingeWatchingStats)

	var calls int
	compute := func(context.Context) (sample, error) {
		calls++
		return sample{Count: 15, Average: 5.2, Titles: []string{"Dark"}, When: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}, nil
	}

	first, err := GetOrSet(ctx, svc, key, ProfileTTL, compute)
	if err != nil {
		t.Fatalf("first GetOrSet: %v", err)
	}
	second, err := GetOrSet(ctx, svc, key, ProfileTTL, compute)
	if err != nil {
		t.Fatalf("second GetOrSet: %v", err)
	}

	if calls != 1 {
		t.Errorf("expected 1 compute call, got %d", calls)
	}
	if second.Count != first.Count || second.Average != first.Average || !second.When.Equal(first.When) || second.Titles[0] != "Dark" {
		t.Errorf("cached value %+v differs from computed %+v", second, first)
	}
}

func TestGetOrSetAfterInvalidate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())
	key := ProfileKey(12, MetricMilestoneStats)

	var calls int
	compute := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	if _, err := GetOrSet(ctx, svc, key, ProfileTTL, compute); err != nil {
		t.Fatal(err)
	}
	if err := svc.Invalidate(ctx, key); err != nil {
		t.Fatal(err)
	}
	got, err := GetOrSet(ctx, svc, key, ProfileTTL, compute)
	if err != nil {
		t.Fatal(err)
	}

	if calls != 2 {
		t.Errorf("expected 2 compute calls, got %d", calls)
	}
	if got != 2 {
		t.Errorf("expected recomputed value 2, got %d", got)
	}
}

func TestGetOrSetComputeErrorNotCached(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewService(store)
	key := AccountKey(3, MetricActivityTimeline)
	boom := errors.New("query failed")

	_, err := GetOrSet(ctx, svc, key, AccountTTL, func(context.Context) (int, error) {
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected compute error to propagate, got %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("expected nothing cached after failure, got %d entries", store.Len())
	}

	var calls int
	got, err := GetOrSet(ctx, svc, key, AccountTTL, func(context.Context) (int, error) {
		calls++
		return 8, nil
	})
	if err != nil || got != 8 || calls != 1 {
		t.Errorf("expected retry to compute once, got value=%d calls=%d err=%v", got, calls, err)
	}
}

func TestGetOrSetStoreFailures(t *testing.T) {
	ctx := context.Background()
	key := ProfileKey(1, MetricUnairedContentStats)
	compute := func(context.Context) (int, error) { return 1, nil }

	t.Run("get failure", func(t *testing.T) {
		svc := NewService(&brokenStore{getErr: errors.New("connection refused"), inner: NewMemoryStore()})
		_, err := GetOrSet(ctx, svc, key, ProfileTTL, compute)
		if apperr.KindOf(err) != apperr.KindCache {
			t.Errorf("expected cache error, got %v", err)
		}
	})

	t.Run("set failure", func(t *testing.T) {
		svc := NewService(&brokenStore{setErr: errors.New("read only"), inner: NewMemoryStore()})
		_, err := GetOrSet(ctx, svc, key, ProfileTTL, compute)
		if apperr.KindOf(err) != apperr.KindCache {
			t.Errorf("expected cache error, got %v", err)
		}
	})

	t.Run("delete failure", func(t *testing.T) {
		svc := NewService(&brokenStore{delErr: errors.New("gone"), inner: NewMemoryStore()})
		if err := svc.Invalidate(ctx, key); apperr.KindOf(err) != apperr.KindCache {
			t.Errorf("expected cache error, got %v", err)
		}
	})
}

func TestGetOrSetUndecodableEntryRecomputed(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewService(store)
	key := ProfileKey(5, MetricWatchStreakStats)

	_ = store.Set(ctx, key, []byte("{not json"), time.Minute)

	got, err := GetOrSet(ctx, svc, key, ProfileTTL, func(context.Context) (sample, error) {
		return sample{Count: 4}, nil
	})
	if err != nil || got.Count != 4 {
		t.Fatalf("expected recompute, got %+v err=%v", got, err)
	}

	data, _ := store.Get(ctx, key)
	if string(data) == "{not json" {
		t.Error("expected entry to be overwritten")
	}
}

func TestInvalidateScopes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewService(store)

	for _, m := range AllMetrics {
		_ = store.Set(ctx, ProfileKey(1, m), []byte("1"), time.Minute)
		_ = store.Set(ctx, ProfileKey(2, m), []byte("1"), time.Minute)
		_ = store.Set(ctx, AccountKey(1, m), []byte("1"), time.Minute)
	}

	if err := svc.InvalidateProfile(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if err := svc.InvalidateAccount(ctx, 1); err != nil {
		t.Fatal(err)
	}

	if store.Len() != len(AllMetrics) {
		t.Errorf("expected only profile 2 entries to remain, got %d", store.Len())
	}
	if _, err := store.Get(ctx, ProfileKey(2, MetricStatistics)); err != nil {
		t.Errorf("profile 2 should be untouched: %v", err)
	}
}

func TestGetOrSetSingleFlight(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore(), WithSingleFlight())
	key := AccountKey(9, MetricBingeWatchingStats)

	var calls atomic.Int32
	release := make(chan struct{})
	compute := func(context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 25, nil
	}

	const callers = 8
	var wg sync.WaitGroup
	results := make([]int, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := GetOrSet(ctx, svc, key, AccountTTL, compute)
			if err != nil {
				t.Errorf("GetOrSet: %v", err)
			}
			results[i] = v
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("expected concurrent misses to share one compute, got %d", got)
	}
	for i, v := range results {
		if v != 25 {
			t.Errorf("caller %d got %d", i, v)
		}
	}
}

func TestGetOrSetSingleFlightLeaderCancellation(t *testing.T) {
	svc := NewService(NewMemoryStore(), WithSingleFlight())
	key := ProfileKey(1, MetricStatistics)

	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	compute := func(ctx context.Context) (int, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return 42, nil
	}

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := GetOrSet(leaderCtx, svc, key, ProfileTTL, compute)
		leaderErr <- err
	}()
	<-started

	type result struct {
		value int
		err   error
	}
	follower := make(chan result, 1)
	go func() {
		v, err := GetOrSet(context.Background(), svc, key, ProfileTTL, compute)
		follower <- result{v, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelLeader()
	select {
	case err := <-leaderErr:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("leader: expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("canceled leader kept waiting for the shared compute")
	}

	close(release)
	select {
	case res := <-follower:
		if res.err != nil {
			t.Fatalf("follower inherited the leader's cancellation: %v", res.err)
		}
		if res.value != 42 {
			t.Errorf("follower got %d, want 42", res.value)
		}
	case <-time.After(time.Second):
		t.Fatal("follower never received the shared result")
	}

	if got := calls.Load(); got != 1 {
		t.Errorf("expected one shared compute, got %d", got)
	}

	// The detached compute still populated the cache.
	v, err := GetOrSet(context.Background(), svc, key, ProfileTTL, func(context.Context) (int, error) {
		return 0, errors.New("should be served from cache")
	})
	if err != nil || v != 42 {
		t.Errorf("expected cached 42, got %d, %v", v, err)
	}
}

func TestServiceBackend(t *testing.T) {
	svc := NewService(NewMemoryStore())
	if svc.Backend() != "memory" {
		t.Errorf("expected memory backend, got %s", svc.Backend())
	}
	if err := svc.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
