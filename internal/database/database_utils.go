// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

/*
database_utils.go - Query Helpers

Context Management:
  - queryContext(): Applies the configured query timeout when the caller's
    context has no earlier deadline

Instrumentation:
  - observe(): Records duration and failures of each named query in the
    watchstats_datasource_query_* metrics

Scanning:
  - scanCounts(): Reads (label, count) rows into a map
  - dateKey(): Formats a DATE column as YYYY-MM-DD
  - daysBetween(): Whole calendar days between two timestamps
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/tomtom215/watchstats/internal/metrics"
)

// queryContext bounds ctx by the configured query timeout.
func (db *DB) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := db.cfg.QueryTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// observe records the outcome of a named query. Call it deferred with a
// pointer to the named error result.
func observe(query string, start time.Time, err *error) {
	metrics.RecordDataSourceQuery(query, time.Since(start), *err)
}

// scanCounts reads two-column (label, count) rows into a map.
func scanCounts(rows *sql.Rows) (map[string]int, error) {
	defer closeWithLog(rows, "rows")

	counts := make(map[string]int)
	for rows.Next() {
		var label string
		var n int
		if err := rows.Scan(&label, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count row: %w", err)
		}
		counts[label] += n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating count rows: %w", err)
	}
	return counts, nil
}

// dateKey formats a DATE column value.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// today returns the current date at midnight UTC.
func (db *DB) today() time.Time {
	y, m, d := db.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the number of calendar days from a to b, by UTC date.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
