// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/tomtom215/watchstats/docs"
)

func TestRouter_SwaggerDocJSON(t *testing.T) {
	s := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var doc struct {
		Swagger  string `json:"swagger"`
		BasePath string `json:"basePath"`
		Info     struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.Equal(t, "Watchstats API", doc.Info.Title)
	for _, path := range []string{
		"/profiles/{profileID}/statistics/{metric}",
		"/accounts/{accountID}/statistics/{metric}",
		"/cache/{scope}/{id}/{metric}",
		"/health",
	} {
		assert.Contains(t, doc.Paths, path)
	}
}

func TestRouter_SwaggerUI(t *testing.T) {
	s := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "swagger-ui")
}
