// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

/*
Package config provides centralized configuration management for Watchstats.

# Configuration Sources

Load layers three sources with Koanf v2, later sources winning:
  - Built-in defaults (defaultConfig)
  - An optional YAML file: CONFIG_PATH, else config.yaml / config.yml in the
    working directory, else /etc/watchstats/config.yaml
  - Environment variables, through an explicit name mapping

# Environment Variables

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 3857)
  - HTTP_READ_TIMEOUT / HTTP_WRITE_TIMEOUT: Request timeouts (default: 15s / 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown limit (default: 15s)
  - RATE_LIMIT_REQS / RATE_LIMIT_WINDOW: Per-IP rate limit (default: 300 per 1m)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Data Source (DatabaseConfig):
  - DATABASE_DRIVER: duckdb or postgres (default: duckdb)
  - DATABASE_DSN or DATABASE_URL: Connection string or DuckDB file path
  - DATABASE_MAX_OPEN_CONNS / DATABASE_MAX_IDLE_CONNS: Pool limits
  - DATABASE_QUERY_TIMEOUT: Per-query timeout (default: 10s)

Cache (CacheConfig):
  - CACHE_BACKEND: memory, badger or redis (default: memory)
  - CACHE_PROFILE_TTL: Profile statistics lifetime (default: 30m)
  - CACHE_ACCOUNT_TTL: Account statistics lifetime (default: 1h)
  - CACHE_CLEANUP_INTERVAL: Expired entry sweep period (default: 5m)
  - CACHE_SINGLE_FLIGHT: Collapse concurrent misses (default: true)
  - CACHE_BADGER_PATH: Badger directory (default: /data/cache)
  - REDIS_URL: Redis connection URL, required for the redis backend

Circuit Breaker (BreakerConfig):
  - BREAKER_ENABLED, BREAKER_MAX_REQUESTS, BREAKER_INTERVAL, BREAKER_TIMEOUT,
    BREAKER_MIN_REQUESTS, BREAKER_FAILURE_RATIO

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file and line (default: false)

# Validation

Load returns an error when a value is out of range, when the driver or cache
backend is unknown, or when a backend is selected without its required
setting (badger path, Redis URL).
*/
package config
