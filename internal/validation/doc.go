// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

// Package validation validates HTTP request parameters using go-playground/validator v10.
//
// The validator is a thread-safe singleton created with WithRequiredStructEnabled.
// Two custom tags are registered against the cache key vocabulary:
//   - cachescope: profile or account
//   - cachemetric: one of the cached statistics metric names
//
// # Usage
//
//	req := validation.ProfileRequest{ProfileID: validation.ParseID(chi.URLParam(r, "profileID"))}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// Failures can also be lifted into the apperr taxonomy with AppError, which
// keeps HTTP status mapping in one place.
package validation
