// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/lib/pq"

	"github.com/tomtom215/watchstats/internal/config"
	"github.com/tomtom215/watchstats/internal/logging"
	"github.com/tomtom215/watchstats/internal/statistics"
)

// DB wraps a read-only connection to the watch-tracking database and
// implements the statistics data source and profile directory over it.
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig

	// now is the clock used for streaks and relative windows computed in Go.
	now func() time.Time
}

var (
	_ statistics.DataSource       = (*DB)(nil)
	_ statistics.ProfileDirectory = (*DB)(nil)
)

// New opens the database described by cfg and verifies the connection.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	driverName, dsn, err := connectionString(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := NewWithConn(conn, cfg)
	db.configureConnectionPool()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Driver, err)
	}

	logging.Info().Str("driver", cfg.Driver).Msg("Connected to watch-tracking database")
	return db, nil
}

// NewWithConn wraps an already open connection. Used by tests with sqlmock.
func NewWithConn(conn *sql.DB, cfg *config.DatabaseConfig) *DB {
	if cfg == nil {
		cfg = &config.DatabaseConfig{Driver: config.DriverPostgres, QueryTimeout: 10 * time.Second}
	}
	return &DB{conn: conn, cfg: cfg, now: time.Now}
}

// connectionString maps the configured driver to a database/sql driver name and DSN.
func connectionString(cfg *config.DatabaseConfig) (driverName, dsn string, err error) {
	switch cfg.Driver {
	case config.DriverDuckDB:
		// Ensure parent directory exists for database file
		// Use 0750 permissions (owner: rwx, group: rx, other: none) per gosec G301
		path := cfg.DSN
		if i := strings.IndexByte(path, '?'); i >= 0 {
			path = path[:i]
		}
		if dir := filepath.Dir(path); path != ":memory:" && dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return "", "", fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
		if strings.Contains(cfg.DSN, "?") {
			return "duckdb", cfg.DSN, nil
		}
		// Disable auto-install/auto-load to prevent hangs in restricted network environments
		return "duckdb", cfg.DSN + "?autoinstall_known_extensions=false&autoload_known_extensions=false", nil
	case config.DriverPostgres:
		return "postgres", cfg.DSN, nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// configureConnectionPool sets connection pool parameters
func (db *DB) configureConnectionPool() {
	maxOpen := db.cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = runtime.NumCPU()
	}
	db.conn.SetMaxOpenConns(maxOpen)
	db.conn.SetMaxIdleConns(db.cfg.MaxIdleConns)
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}

// Conn returns the underlying SQL database connection.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Driver returns the configured driver name.
func (db *DB) Driver() string {
	return db.cfg.Driver
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}
