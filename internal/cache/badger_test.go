// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
)

func setupBadgerStore(t *testing.T) *BadgerStore {
	t.Helper()

	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("Failed to open in-memory badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewBadgerStore(db)
}

func TestBadgerStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := setupBadgerStore(t)

	if err := store.Set(ctx, "profile_1_statistics", []byte(`{"profile_id":1}`), time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.Get(ctx, "profile_1_statistics")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `{"profile_id":1}` {
		t.Errorf("unexpected value %s", got)
	}

	if _, err := store.Get(ctx, "profile_2_statistics"); !errors.Is(err, ErrMiss) {
		t.Errorf("expected ErrMiss, got %v", err)
	}
}

func TestBadgerStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := setupBadgerStore(t)

	_ = store.Set(ctx, "a", []byte("1"), time.Hour)
	_ = store.Set(ctx, "b", []byte("2"), time.Hour)

	if err := store.Delete(ctx, "a", "b", "never-set"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	for _, key := range []string{"a", "b"} {
		if _, err := store.Get(ctx, key); !errors.Is(err, ErrMiss) {
			t.Errorf("expected %s to be deleted, got %v", key, err)
		}
	}
}

func TestBadgerStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := setupBadgerStore(t)

	// Badger TTLs have one second resolution.
	_ = store.Set(ctx, "short", []byte("1"), time.Second)
	time.Sleep(2100 * time.Millisecond)

	if _, err := store.Get(ctx, "short"); !errors.Is(err, ErrMiss) {
		t.Errorf("expected expired entry to miss, got %v", err)
	}
}

func TestBadgerStoreWithService(t *testing.T) {
	ctx := context.Background()
	svc := NewService(setupBadgerStore(t))

	calls := 0
	compute := func(context.Context) (sample, error) {
		calls++
		return sample{Count: 3, Titles: []string{"a", "b"}}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := GetOrSet(ctx, svc, ProfileKey(4, MetricActivityTimeline), ProfileTTL, compute)
		if err != nil {
			t.Fatal(err)
		}
		if got.Count != 3 || len(got.Titles) != 2 {
			t.Errorf("unexpected value %+v", got)
		}
	}
	if calls != 1 {
		t.Errorf("expected 1 compute, got %d", calls)
	}
	if svc.Backend() != "badger" {
		t.Errorf("expected badger backend, got %s", svc.Backend())
	}
}

func TestOpenBadgerStoreInMemory(t *testing.T) {
	store, err := OpenBadgerStore("")
	if err != nil {
		t.Fatalf("OpenBadgerStore: %v", err)
	}
	if err := store.RunValueLogGC(0.5); err != nil {
		t.Errorf("RunValueLogGC in memory mode should be a no-op, got %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
