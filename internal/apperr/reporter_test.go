// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package apperr

import (
	"bytes"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/watchstats/internal/metrics"
)

func TestReporter_HandleError(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(zerolog.New(&buf))

	before := testutil.ToFloat64(metrics.Errors.WithLabelValues("getBingeWatchingStats", "dependency"))

	cause := errors.New("connection refused")
	err := r.HandleError(cause, "getBingeWatchingStats(12)")

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindDependency, KindOf(err))
	assert.Equal(t, "getBingeWatchingStats(12): dependency: connection refused", err.Error())

	assert.Contains(t, buf.String(), `"label":"getBingeWatchingStats(12)"`)
	assert.Contains(t, buf.String(), `"kind":"dependency"`)
	assert.Contains(t, buf.String(), `"level":"error"`)

	after := testutil.ToFloat64(metrics.Errors.WithLabelValues("getBingeWatchingStats", "dependency"))
	assert.Equal(t, 1.0, after-before)
}

func TestReporter_PreservesKindWhenNested(t *testing.T) {
	r := NewReporter(zerolog.Nop())

	inner := r.HandleError(Cache("get", errors.New("redis down")), "getMilestoneStats(4)")
	outer := r.HandleError(inner, "getAccountMilestoneStats(2)")

	assert.Equal(t, KindCache, KindOf(outer))
	assert.Contains(t, outer.Error(), "getAccountMilestoneStats(2): ")
	assert.Contains(t, outer.Error(), "getMilestoneStats(4): ")
}

func TestReporter_NotFoundLogsAtWarn(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(zerolog.New(&buf))

	err := r.HandleError(ErrNotFound, "getUnairedContentStats(9)")

	assert.True(t, IsNotFound(err))
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestReporter_Nil(t *testing.T) {
	r := NewReporter(zerolog.Nop())
	assert.NoError(t, r.HandleError(nil, "anything"))
}

func TestOperationName(t *testing.T) {
	assert.Equal(t, "getAccountActivityTimeline", operationName("getAccountActivityTimeline(3)"))
	assert.Equal(t, "plain", operationName("plain"))
}
