// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/watchstats/internal/apperr"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

func TestValidateStruct_ProfileRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     ProfileRequest
		wantTag string
		wantMsg string
	}{
		{name: "valid", req: ProfileRequest{ProfileID: 12}},
		{name: "valid with metric", req: ProfileRequest{ProfileID: 12, Metric: "binge_watching_stats"}},
		{name: "zero id", req: ProfileRequest{}, wantTag: "required", wantMsg: "ProfileID is required"},
		{name: "negative id", req: ProfileRequest{ProfileID: -4}, wantTag: "gt", wantMsg: "ProfileID must be greater than 0"},
		{name: "unknown metric", req: ProfileRequest{ProfileID: 1, Metric: "popcorn"}, wantTag: "cachemetric", wantMsg: "Metric must be a known statistics metric"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.req)
			if tt.wantTag == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() unexpected error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}
			errs := verr.Fields
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), verr)
			}
			if errs[0].Tag != tt.wantTag {
				t.Errorf("Tag = %q, want %q", errs[0].Tag, tt.wantTag)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateStruct_AccountRequest(t *testing.T) {
	if verr := ValidateStruct(&AccountRequest{AccountID: 3, Metric: "milestone_stats"}); verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}

	verr := ValidateStruct(&AccountRequest{AccountID: 0})
	if verr == nil {
		t.Fatal("expected error for zero account id")
	}
	if got := verr.Fields[0].Field; got != "AccountID" {
		t.Errorf("Field = %q, want AccountID", got)
	}
}

func TestValidateStruct_InvalidationRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       InvalidationRequest
		wantValid bool
		wantCount int
	}{
		{name: "profile all metrics", req: InvalidationRequest{Scope: "profile", ID: 5}, wantValid: true},
		{name: "account single metric", req: InvalidationRequest{Scope: "account", ID: 5, Metric: "statistics"}, wantValid: true},
		{name: "bad scope", req: InvalidationRequest{Scope: "household", ID: 5}, wantCount: 1},
		{name: "missing scope", req: InvalidationRequest{ID: 5}, wantCount: 1},
		{name: "everything wrong", req: InvalidationRequest{Scope: "x", ID: -1, Metric: "y"}, wantCount: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.req)
			if tt.wantValid {
				if verr != nil {
					t.Fatalf("unexpected error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("expected error, got nil")
			}
			if len(verr.Fields) != tt.wantCount {
				t.Errorf("got %d errors, want %d: %v", len(verr.Fields), tt.wantCount, verr)
			}
		})
	}
}

func TestInvalidationRequest_Accessors(t *testing.T) {
	req := InvalidationRequest{Scope: "account", ID: 9, Metric: "watch_streak_stats"}
	if req.CacheScope() != "account" {
		t.Errorf("CacheScope() = %q", req.CacheScope())
	}
	if req.CacheMetric() != "watch_streak_stats" {
		t.Errorf("CacheMetric() = %q", req.CacheMetric())
	}
}

func TestParseID(t *testing.T) {
	tests := map[string]int{
		"12":   12,
		"-3":   -3,
		"":     0,
		"abc":  0,
		"1.5":  0,
		"0012": 12,
	}
	for raw, want := range tests {
		if got := ParseID(raw); got != want {
			t.Errorf("ParseID(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestRequestValidationError_ToAPIError_Single(t *testing.T) {
	verr := ValidateStruct(&ProfileRequest{ProfileID: -1})
	if verr == nil {
		t.Fatal("expected error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Message != "ProfileID must be greater than 0" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "ProfileID" {
		t.Errorf("Details[field] = %v", apiErr.Details["field"])
	}
}

func TestRequestValidationError_ToAPIError_Multiple(t *testing.T) {
	verr := ValidateStruct(&InvalidationRequest{Scope: "x", ID: -1})
	if verr == nil {
		t.Fatal("expected error")
	}

	apiErr := verr.ToAPIError()
	if !strings.Contains(apiErr.Message, "Scope: Scope must be profile or account") {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if !strings.Contains(apiErr.Message, "ID: ID must be greater than 0") {
		t.Errorf("Message = %q", apiErr.Message)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("Details[fields] = %#v", apiErr.Details["fields"])
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	verr := &RequestValidationError{}
	if verr.Error() != "validation failed" {
		t.Errorf("Error() = %q", verr.Error())
	}
	if verr.ToAPIError().Message != "Validation failed" {
		t.Errorf("ToAPIError().Message = %q", verr.ToAPIError().Message)
	}
}

func TestRequestValidationError_AppError(t *testing.T) {
	verr := ValidateStruct(&AccountRequest{})
	if verr == nil {
		t.Fatal("expected error")
	}

	err := verr.AppError("getAccountStatistics")
	if !apperr.IsValidation(err) {
		t.Errorf("KindOf() = %q, want validation", apperr.KindOf(err))
	}
	var target *RequestValidationError
	if !errors.As(err, &target) {
		t.Error("errors.As should find the RequestValidationError")
	}
	if !strings.HasPrefix(err.Error(), "getAccountStatistics: validation: ") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestValidateStruct_NonStruct(t *testing.T) {
	verr := ValidateStruct(42)
	if verr == nil {
		t.Fatal("expected error for non-struct input")
	}
	if verr.Fields[0].Field != "unknown" {
		t.Errorf("Field = %q, want unknown", verr.Fields[0].Field)
	}
}
