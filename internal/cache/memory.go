// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore is a thread-safe in-process Store.
//
// Expired entries are dropped lazily on Get and in bulk by Cleanup, which the
// supervisor's janitor service calls on an interval.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time

	statsMu sync.Mutex
	stats   Stats
}

// Stats tracks store performance
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
		stats:   Stats{LastCleanup: time.Now()},
	}
}

// Get returns the live value for key, or ErrMiss.
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	entry, exists := m.entries[key]
	m.mu.RUnlock()

	if !exists {
		m.record(func(s *Stats) { s.Misses++ })
		return nil, ErrMiss
	}

	if !m.now().Before(entry.expiresAt) {
		m.mu.Lock()
		// Re-check: a concurrent Set may have refreshed the entry.
		if current, ok := m.entries[key]; ok && !m.now().Before(current.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		m.record(func(s *Stats) { s.Misses++; s.Evictions++ })
		return nil, ErrMiss
	}

	m.record(func(s *Stats) { s.Hits++ })
	return entry.data, nil
}

// Set stores a copy of value under key for ttl.
func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	data := make([]byte, len(value))
	copy(data, value)

	m.mu.Lock()
	m.entries[key] = memoryEntry{data: data, expiresAt: m.now().Add(ttl)}
	total := int64(len(m.entries))
	m.mu.Unlock()

	m.record(func(s *Stats) { s.TotalKeys = total })
	return nil
}

// Delete removes keys.
func (m *MemoryStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	removed := int64(0)
	for _, key := range keys {
		if _, ok := m.entries[key]; ok {
			delete(m.entries, key)
			removed++
		}
	}
	total := int64(len(m.entries))
	m.mu.Unlock()

	m.record(func(s *Stats) {
		s.Evictions += removed
		s.TotalKeys = total
	})
	return nil
}

// Cleanup removes every expired entry and returns how many were dropped.
func (m *MemoryStore) Cleanup() int {
	now := m.now()

	m.mu.Lock()
	evicted := 0
	for key, entry := range m.entries {
		if !now.Before(entry.expiresAt) {
			delete(m.entries, key)
			evicted++
		}
	}
	total := int64(len(m.entries))
	m.mu.Unlock()

	m.record(func(s *Stats) {
		s.Evictions += int64(evicted)
		s.TotalKeys = total
		s.LastCleanup = now
	})
	return evicted
}

// Len returns the number of stored entries, expired or not.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// GetStats returns a snapshot of store statistics.
func (m *MemoryStore) GetStats() Stats {
	m.statsMu.Lock()
	defer m.statsMu.Unlock()
	return m.stats
}

// HitRate returns the hit rate as a percentage
func (m *MemoryStore) HitRate() float64 {
	stats := m.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// Name implements Store.
func (m *MemoryStore) Name() string { return string(BackendMemory) }

// Close implements Store. Entries are dropped.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	m.entries = make(map[string]memoryEntry)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) record(fn func(*Stats)) {
	m.statsMu.Lock()
	fn(&m.stats)
	m.statsMu.Unlock()
}
