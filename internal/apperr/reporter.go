// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package apperr

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/watchstats/internal/metrics"
)

// Reporter centralizes error logging for the statistics services. It logs the
// failure with its operation label, counts it, and returns the error the caller
// should propagate.
type Reporter struct {
	logger zerolog.Logger
}

// NewReporter creates a Reporter writing to logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewReporter(logger zerolog.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// HandleError logs err under label (for example "getBingeWatchingStats(12)")
// and returns it wrapped in an *Error with label as its Op. Unclassified errors
// become KindDependency: anything reaching the reporter came from the data
// source or a nested call. A nil err returns nil.
func (r *Reporter) HandleError(err error, label string) error {
	if err == nil {
		return nil
	}

	kind := KindOf(err)
	if kind == KindInternal {
		kind = KindDependency
	}

	event := r.logger.Error()
	if kind == KindValidation || kind == KindNotFound {
		event = r.logger.Warn()
	}
	event.Err(err).
		Str("label", label).
		Str("kind", string(kind)).
		Msg("statistics operation failed")

	metrics.RecordError(operationName(label), string(kind))

	return &Error{Kind: kind, Op: label, Err: err}
}

// operationName strips the id suffix from a label so it is safe as a metric label.
func operationName(label string) string {
	if i := strings.IndexByte(label, '('); i > 0 {
		return label[:i]
	}
	return label
}
