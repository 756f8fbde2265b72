// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/watchstats/docs" // Import generated swagger docs
	"github.com/tomtom215/watchstats/internal/api"
	"github.com/tomtom215/watchstats/internal/apperr"
	"github.com/tomtom215/watchstats/internal/cache"
	"github.com/tomtom215/watchstats/internal/config"
	"github.com/tomtom215/watchstats/internal/database"
	"github.com/tomtom215/watchstats/internal/logging"
	"github.com/tomtom215/watchstats/internal/statistics"
	"github.com/tomtom215/watchstats/internal/supervisor"
	"github.com/tomtom215/watchstats/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

//go:generate swag init -g main.go -d .,../../internal/api,../../internal/models -o ../../docs --outputTypes go

// @title Watchstats API
// @version 1.0
// @description Watch-behavior statistics for the profiles and accounts of a media-tracking database.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/watchstats/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
//nolint:gocyclo // Main initialization function with sequential setup steps
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("version", version).
		Str("driver", cfg.Database.Driver).
		Str("cache_backend", cfg.Cache.Backend).
		Bool("breaker", cfg.Breaker.Enabled).
		Msg("Starting watchstats")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	var source database.Source = db
	var breaker *database.BreakerSource
	if cfg.Breaker.Enabled {
		breaker = database.NewBreakerSource(db, cfg.Breaker)
		source = breaker
	}

	store, err := openCacheStore(ctx, &cfg.Cache)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize cache store")
	}
	cacheOpts := []cache.Option{cache.WithLogger(logging.WithComponent("cache"))}
	if cfg.Cache.SingleFlight {
		cacheOpts = append(cacheOpts, cache.WithSingleFlight())
	}
	cacheSvc := cache.NewService(store, cacheOpts...)
	defer func() {
		if err := cacheSvc.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing cache store")
		}
	}()

	reporter := apperr.NewReporter(logging.WithComponent("statistics"))
	profiles := statistics.NewProfileService(cacheSvc, source, reporter,
		statistics.WithProfileTTL(cfg.Cache.ProfileTTL))
	accounts := statistics.NewAccountService(source, profiles, source, cacheSvc, reporter,
		statistics.WithAccountTTL(cfg.Cache.AccountTTL),
		statistics.WithMaxFanout(cfg.Statistics.MaxFanout))

	handler := api.NewHandler(profiles, accounts, cacheSvc, db, version)
	if breaker != nil {
		handler.SetBreaker(breaker)
	}
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromServer(cfg.Server)))

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfigFrom(cfg.Supervisor))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	janitor := services.NewCacheJanitor(store, cfg.Cache.CleanupInterval)
	if janitor.Supported() {
		tree.AddCacheService(janitor)
		logging.Info().Str("service", janitor.String()).Dur("interval", cfg.Cache.CleanupInterval).Msg("Cache janitor added to supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(httpServer, cfg.Server.ShutdownTimeout))

	logging.Info().Str("addr", httpServer.Addr).Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
