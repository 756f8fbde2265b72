// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

// Package apperr defines the error taxonomy shared by the statistics core and
// the reporter that logs and labels failures before they are returned.
//
// Every failure the core returns is an *Error carrying a Kind and the
// operation label it happened in:
//
//	getBingeWatchingStats(12): dependency: query binge sessions: connection refused
//
// Callers branch on the kind with KindOf or errors.Is against the sentinels.
package apperr

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Kind classifies an error for logging and transport mapping.
type Kind string

const (
	// KindValidation is a malformed or missing id, or an account without profiles.
	KindValidation Kind = "validation"
	// KindNotFound means the account or profile resolved to no data.
	KindNotFound Kind = "not_found"
	// KindDependency is a failure of the data source or a nested statistics call.
	KindDependency Kind = "dependency"
	// KindCache is a backing store failure. It is handled like KindDependency.
	KindCache Kind = "cache"
	// KindInternal is anything unclassified.
	KindInternal Kind = "internal"
)

// Sentinel errors for errors.Is checks.
var (
	ErrNotFound   = errors.New("not found")
	ErrNoProfiles = errors.New("account has no profiles")
	ErrInvalidID  = errors.New("id must be a positive integer")
)

// Error is a classified failure tagged with the operation it occurred in.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Op == "" {
		return msg
	}
	return e.Op + ": " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an *Error of kind for op wrapping err.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Validation returns a KindValidation error for op.
func Validation(op string, err error) *Error {
	return New(KindValidation, op, err)
}

// Validationf returns a KindValidation error for op with a formatted message.
func Validationf(op, format string, args ...any) *Error {
	return New(KindValidation, op, fmt.Errorf(format, args...))
}

// Cache returns a KindCache error for op.
func Cache(op string, err error) *Error {
	return New(KindCache, op, err)
}

// KindOf returns the kind of the outermost *Error in err's chain. Errors that
// carry no kind are classified by their cause.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return classify(err)
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, sql.ErrNoRows):
		return KindNotFound
	case errors.Is(err, ErrNoProfiles), errors.Is(err, ErrInvalidID):
		return KindValidation
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindDependency
	default:
		return KindInternal
	}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// IsNotFound reports whether err means the requested data does not exist.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsUnavailable reports whether err came from an unavailable dependency.
// Cache failures count, since there is no stale-on-error fallback.
func IsUnavailable(err error) bool {
	k := KindOf(err)
	return k == KindDependency || k == KindCache
}
