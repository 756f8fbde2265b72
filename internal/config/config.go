// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml or CONFIG_PATH)
//  3. Environment Variables: Override any setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	db, err := database.New(&cfg.Database)
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Database   DatabaseConfig   `koanf:"database"`
	Cache      CacheConfig      `koanf:"cache"`
	Breaker    BreakerConfig    `koanf:"breaker"`
	Statistics StatisticsConfig `koanf:"statistics"`
	Logging    LoggingConfig    `koanf:"logging"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs"` // Requests per window per client IP, 0 disables
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	CORSOrigins     []string      `koanf:"cors_origins"`
}

// Addr returns the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Database drivers.
const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"
)

// DatabaseConfig holds the connection settings of the watch-tracking database.
// The schema is owned by the tracking service; this process only reads it.
type DatabaseConfig struct {
	Driver       string        `koanf:"driver"` // duckdb or postgres
	DSN          string        `koanf:"dsn"`
	MaxOpenConns int           `koanf:"max_open_conns"` // 0 = NumCPU
	MaxIdleConns int           `koanf:"max_idle_conns"`
	QueryTimeout time.Duration `koanf:"query_timeout"`
}

// CacheConfig selects and tunes the statistics cache store.
type CacheConfig struct {
	Backend         string        `koanf:"backend"` // memory, badger or redis
	ProfileTTL      time.Duration `koanf:"profile_ttl"`
	AccountTTL      time.Duration `koanf:"account_ttl"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"` // memory janitor and badger value-log GC period
	SingleFlight    bool          `koanf:"single_flight"`    // Collapse concurrent misses on the same key
	BadgerPath      string        `koanf:"badger_path"`
	RedisURL        string        `koanf:"redis_url"`
}

// BreakerConfig tunes the circuit breaker in front of the data source.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"` // Trial requests allowed in half-open state
	Interval     time.Duration `koanf:"interval"`     // Closed-state counter reset period
	Timeout      time.Duration `koanf:"timeout"`      // Open-state duration before probing
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// StatisticsConfig tunes the account fan-out.
type StatisticsConfig struct {
	MaxFanout int `koanf:"max_fanout"` // Profiles queried concurrently per account, 0 = unbounded
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// SupervisorConfig tunes the suture supervisor tree.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureDecay     float64       `koanf:"failure_decay"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
}
