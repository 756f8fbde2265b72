// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package api

import (
	"context"
	"time"

	"github.com/tomtom215/watchstats/internal/models"
	"github.com/tomtom215/watchstats/internal/statistics"
)

// ProfileStatistics is the profile service surface the handlers serve.
type ProfileStatistics interface {
	statistics.ProfileReader
	InvalidateProfile(ctx context.Context, profileID int) error
}

// AccountStatistics is the account service surface the handlers serve.
type AccountStatistics interface {
	GetAccountStatistics(ctx context.Context, accountID int) (models.AccountStatistics, error)
	GetAccountAbandonmentRiskStats(ctx context.Context, accountID int) (models.AbandonmentRiskStats, error)
	GetAccountActivityTimeline(ctx context.Context, accountID int) (models.ActivityTimeline, error)
	GetAccountBingeWatchingStats(ctx context.Context, accountID int) (models.BingeWatchingStats, error)
	GetAccountMilestoneStats(ctx context.Context, accountID int) (models.MilestoneStats, error)
	GetAccountWatchStreakStats(ctx context.Context, accountID int) (models.WatchStreakStats, error)
	GetAccountTimeToWatchStats(ctx context.Context, accountID int) (models.TimeToWatchStats, error)
	GetAccountUnairedContentStats(ctx context.Context, accountID int) (models.UnairedContentStats, error)
	InvalidateAccount(ctx context.Context, accountID int) error
}

// CacheInvalidator drops single cache keys. *cache.Service implements it.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, key string) error
	Backend() string
}

// Pinger checks data source connectivity. *database.DB implements it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BreakerStater reports a circuit breaker state. *database.BreakerSource implements it.
type BreakerStater interface {
	State() string
}

// Handler serves the statistics read API.
type Handler struct {
	profiles  ProfileStatistics
	accounts  AccountStatistics
	cache     CacheInvalidator
	db        Pinger
	breaker   BreakerStater
	version   string
	startTime time.Time
}

// NewHandler creates a Handler. db may be nil, in which case health reports
// the database as unavailable.
func NewHandler(profiles ProfileStatistics, accounts AccountStatistics, c CacheInvalidator, db Pinger, version string) *Handler {
	return &Handler{
		profiles:  profiles,
		accounts:  accounts,
		cache:     c,
		db:        db,
		version:   version,
		startTime: time.Now(),
	}
}

// SetBreaker attaches the data source circuit breaker so health can report its state.
func (h *Handler) SetBreaker(b BreakerStater) {
	h.breaker = b
}
