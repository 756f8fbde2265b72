// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package api

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/watchstats/internal/apperr"
	"github.com/tomtom215/watchstats/internal/logging"
	"github.com/tomtom215/watchstats/internal/models"
	"github.com/tomtom215/watchstats/internal/validation"
)

// Error codes for API responses
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeDependency       = "DEPENDENCY_ERROR"
	ErrCodeInternal         = "INTERNAL_ERROR"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// sanitizeLogValue escapes control characters so client input cannot forge log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	if status == http.StatusOK {
		w.Header().Set("Cache-Control", "private, max-age=60")
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag hashes the response body with FNV-1a.
func generateETag(data []byte) string {
	h := fnv.New32a()
	_, _ = h.Write(data)
	return strconv.Quote(strconv.FormatUint(uint64(h.Sum32()), 16))
}

// respondSuccess wraps data in a success envelope with the elapsed time since start.
func respondSuccess(w http.ResponseWriter, data interface{}, start time.Time) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondError sends an error envelope.
func respondError(w http.ResponseWriter, status int, code, message string, details map[string]interface{}) {
	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Data:     nil,
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func respondValidationError(w http.ResponseWriter, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
}

// respondAppError maps an apperr kind to a status code:
// validation 400, not found 404, dependency and cache 503, anything else 500.
// Server-side failures are logged with the request context and answered with
// a generic message.
func respondAppError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	logger := logging.Ctx(r.Context())

	switch kind {
	case apperr.KindValidation:
		respondError(w, http.StatusBadRequest, ErrCodeValidation, clientMessage(err), nil)
	case apperr.KindNotFound:
		respondError(w, http.StatusNotFound, ErrCodeNotFound, clientMessage(err), nil)
	case apperr.KindDependency, apperr.KindCache:
		logger.Warn().Str("kind", string(kind)).Str("error", sanitizeLogValue(err.Error())).Msg("API dependency failure")
		w.Header().Set("Retry-After", "30")
		respondError(w, http.StatusServiceUnavailable, ErrCodeDependency, "Statistics are temporarily unavailable", nil)
	default:
		logger.Error().Str("kind", string(kind)).Str("error", sanitizeLogValue(err.Error())).Msg("API internal error")
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "Internal server error", nil)
	}
}

// clientMessage strips the operation label so internal call names are not exposed.
func clientMessage(err error) string {
	var e *apperr.Error
	if errors.As(err, &e) && e.Err != nil {
		return e.Err.Error()
	}
	return err.Error()
}
