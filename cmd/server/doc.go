// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

/*
Package main is the entry point for the watchstats server.

Watchstats serves watch-behavior statistics (abandonment risk, activity
timeline, binge sessions, milestones, streaks, time to watch and unaired
content) for the profiles of a media-tracking account. Results are computed
from the tracking database on demand and cached per profile and per account.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("watchstats")
	├── CacheSupervisor ("cache-layer")
	│   └── Cache janitor (memory sweep or badger value log GC)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment variables
 2. Logging: zerolog with JSON/console output modes
 3. Database: DuckDB or PostgreSQL, optionally behind a circuit breaker
 4. Cache: memory, badger or redis store behind the cache-aside service
 5. Statistics: profile and account services
 6. Supervisor Tree: cache janitor and HTTP server

# Configuration

Common environment variables:

	DATABASE_DRIVER=postgres
	DATABASE_DSN=postgres://user:pass@db:5432/tracker?sslmode=disable
	CACHE_BACKEND=redis
	REDIS_URL=redis://cache:6379/0
	HTTP_PORT=8080

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests within HTTP_SHUTDOWN_TIMEOUT, then the cache store and database
connections are closed.
*/
package main
