// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package api

import (
	"context"
	"fmt"
	"sync"

	"github.com/tomtom215/watchstats/internal/models"
)

// recorder remembers which service methods were called, as "Method(id)".
type recorder struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (r *recorder) record(method string, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf("%s(%d)", method, id))
	return r.err
}

func (r *recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

type fakeProfiles struct{ recorder }

func (f *fakeProfiles) GetProfileStatistics(_ context.Context, id int) (models.ProfileStatistics, error) {
	return models.ProfileStatistics{ProfileID: id}, f.record("GetProfileStatistics", id)
}

func (f *fakeProfiles) GetAbandonmentRiskStats(_ context.Context, id int) (models.AbandonmentRiskStats, error) {
	return models.AbandonmentRiskStats{}, f.record("GetAbandonmentRiskStats", id)
}

func (f *fakeProfiles) GetActivityTimeline(_ context.Context, id int) (models.ActivityTimeline, error) {
	return models.ActivityTimeline{}, f.record("GetActivityTimeline", id)
}

func (f *fakeProfiles) GetBingeWatchingStats(_ context.Context, id int) (models.BingeWatchingStats, error) {
	return models.BingeWatchingStats{BingeSessionCount: id}, f.record("GetBingeWatchingStats", id)
}

func (f *fakeProfiles) GetMilestoneStats(_ context.Context, id int) (models.MilestoneStats, error) {
	return models.MilestoneStats{}, f.record("GetMilestoneStats", id)
}

func (f *fakeProfiles) GetWatchStreakStats(_ context.Context, id int) (models.WatchStreakStats, error) {
	return models.WatchStreakStats{}, f.record("GetWatchStreakStats", id)
}

func (f *fakeProfiles) GetTimeToWatchStats(_ context.Context, id int) (models.TimeToWatchStats, error) {
	return models.TimeToWatchStats{}, f.record("GetTimeToWatchStats", id)
}

func (f *fakeProfiles) GetUnairedContentStats(_ context.Context, id int) (models.UnairedContentStats, error) {
	return models.UnairedContentStats{}, f.record("GetUnairedContentStats", id)
}

func (f *fakeProfiles) InvalidateProfile(_ context.Context, id int) error {
	return f.record("InvalidateProfile", id)
}

type fakeAccounts struct{ recorder }

func (f *fakeAccounts) GetAccountStatistics(_ context.Context, id int) (models.AccountStatistics, error) {
	return models.AccountStatistics{AccountID: id}, f.record("GetAccountStatistics", id)
}

func (f *fakeAccounts) GetAccountAbandonmentRiskStats(_ context.Context, id int) (models.AbandonmentRiskStats, error) {
	return models.AbandonmentRiskStats{}, f.record("GetAccountAbandonmentRiskStats", id)
}

func (f *fakeAccounts) GetAccountActivityTimeline(_ context.Context, id int) (models.ActivityTimeline, error) {
	return models.ActivityTimeline{}, f.record("GetAccountActivityTimeline", id)
}

func (f *fakeAccounts) GetAccountBingeWatchingStats(_ context.Context, id int) (models.BingeWatchingStats, error) {
	return models.BingeWatchingStats{}, f.record("GetAccountBingeWatchingStats", id)
}

func (f *fakeAccounts) GetAccountMilestoneStats(_ context.Context, id int) (models.MilestoneStats, error) {
	return models.MilestoneStats{TotalEpisodesWatched: 450}, f.record("GetAccountMilestoneStats", id)
}

func (f *fakeAccounts) GetAccountWatchStreakStats(_ context.Context, id int) (models.WatchStreakStats, error) {
	return models.WatchStreakStats{}, f.record("GetAccountWatchStreakStats", id)
}

func (f *fakeAccounts) GetAccountTimeToWatchStats(_ context.Context, id int) (models.TimeToWatchStats, error) {
	return models.TimeToWatchStats{}, f.record("GetAccountTimeToWatchStats", id)
}

func (f *fakeAccounts) GetAccountUnairedContentStats(_ context.Context, id int) (models.UnairedContentStats, error) {
	return models.UnairedContentStats{}, f.record("GetAccountUnairedContentStats", id)
}

func (f *fakeAccounts) InvalidateAccount(_ context.Context, id int) error {
	return f.record("InvalidateAccount", id)
}

type fakeCache struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (f *fakeCache) Invalidate(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, key)
	return f.err
}

func (f *fakeCache) Backend() string { return "memory" }

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type fakeBreaker string

func (f fakeBreaker) State() string { return string(f) }
