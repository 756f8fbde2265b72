// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package statistics

import (
	"context"
	"sync"

	"github.com/tomtom215/watchstats/internal/apperr"
	"github.com/tomtom215/watchstats/internal/cache"
	"github.com/tomtom215/watchstats/internal/models"
)

// profileData is everything the fake source returns for one profile.
type profileData struct {
	shows       models.ContentStatistics
	movies      models.ContentStatistics
	progress    models.EpisodeWatchProgress
	abandonment models.AbandonmentRiskStats
	activity    models.ActivityTimeline
	binge       models.BingeWatchingStats
	milestones  models.MilestoneTotals
	streaks     models.WatchStreakStats
	timeToWatch models.TimeToWatchStats
	unaired     models.UnairedContentStats
}

// fakeSource is an in-memory DataSource and ProfileDirectory that counts calls.
type fakeSource struct {
	mu       sync.Mutex
	calls    map[string]int
	data     map[int]profileData
	accounts map[int][]models.Profile
	unique   models.UniqueContentCounts
	fail     map[int]error
	dirErr   error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		calls:    make(map[string]int),
		data:     make(map[int]profileData),
		accounts: make(map[int][]models.Profile),
		fail:     make(map[int]error),
	}
}

func (f *fakeSource) record(method string, profileID int) (profileData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
	if err := f.fail[profileID]; err != nil {
		return profileData{}, err
	}
	return f.data[profileID], nil
}

func (f *fakeSource) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeSource) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for method, n := range f.calls {
		if method != "GetProfilesByAccountID" {
			total += n
		}
	}
	return total
}

func (f *fakeSource) GetShowStatistics(_ context.Context, id int) (models.ContentStatistics, error) {
	d, err := f.record("GetShowStatistics", id)
	return d.shows, err
}

func (f *fakeSource) GetMovieStatistics(_ context.Context, id int) (models.ContentStatistics, error) {
	d, err := f.record("GetMovieStatistics", id)
	return d.movies, err
}

func (f *fakeSource) GetWatchProgress(_ context.Context, id int) (models.EpisodeWatchProgress, error) {
	d, err := f.record("GetWatchProgress", id)
	return d.progress, err
}

func (f *fakeSource) GetAbandonmentRisk(_ context.Context, id int) (models.AbandonmentRiskStats, error) {
	d, err := f.record("GetAbandonmentRisk", id)
	return d.abandonment, err
}

func (f *fakeSource) GetActivityTimeline(_ context.Context, id int) (models.ActivityTimeline, error) {
	d, err := f.record("GetActivityTimeline", id)
	return d.activity, err
}

func (f *fakeSource) GetBingeWatching(_ context.Context, id int) (models.BingeWatchingStats, error) {
	d, err := f.record("GetBingeWatching", id)
	return d.binge, err
}

func (f *fakeSource) GetMilestoneTotals(_ context.Context, id int) (models.MilestoneTotals, error) {
	d, err := f.record("GetMilestoneTotals", id)
	return d.milestones, err
}

func (f *fakeSource) GetWatchStreaks(_ context.Context, id int) (models.WatchStreakStats, error) {
	d, err := f.record("GetWatchStreaks", id)
	return d.streaks, err
}

func (f *fakeSource) GetTimeToWatch(_ context.Context, id int) (models.TimeToWatchStats, error) {
	d, err := f.record("GetTimeToWatch", id)
	return d.timeToWatch, err
}

func (f *fakeSource) GetUnairedContent(_ context.Context, id int) (models.UnairedContentStats, error) {
	d, err := f.record("GetUnairedContent", id)
	return d.unaired, err
}

func (f *fakeSource) CountAccountUniqueContent(_ context.Context, _ int) (models.UniqueContentCounts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["CountAccountUniqueContent"]++
	return f.unique, nil
}

func (f *fakeSource) GetProfilesByAccountID(_ context.Context, accountID int) ([]models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["GetProfilesByAccountID"]++
	if f.dirErr != nil {
		return nil, f.dirErr
	}
	return f.accounts[accountID], nil
}

// recordingReporter remembers every label it was handed.
type recordingReporter struct {
	mu     sync.Mutex
	labels []string
}

func (r *recordingReporter) HandleError(err error, label string) error {
	r.mu.Lock()
	r.labels = append(r.labels, label)
	r.mu.Unlock()
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		kind = apperr.KindDependency
	}
	return apperr.New(kind, label, err)
}

func (r *recordingReporter) Labels() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.labels...)
}

// harness wires both services over one memory cache and one fake source.
type harness struct {
	source   *fakeSource
	store    *cache.MemoryStore
	cache    *cache.Service
	reporter *recordingReporter
	profiles *ProfileService
	accounts *AccountService
}

func newHarness() *harness {
	h := &harness{
		source:   newFakeSource(),
		store:    cache.NewMemoryStore(),
		reporter: &recordingReporter{},
	}
	h.cache = cache.NewService(h.store)
	h.profiles = NewProfileService(h.cache, h.source, h.reporter)
	h.accounts = NewAccountService(h.source, h.profiles, h.source, h.cache, h.reporter)
	return h
}
