// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

/*
Package api is the HTTP read API over the statistics services.

Routes:

	GET    /api/v1/health, /api/v1/health/live, /api/v1/health/ready
	GET    /api/v1/profiles/{profileID}/statistics[/{metric}]
	GET    /api/v1/accounts/{accountID}/statistics[/{metric}]
	DELETE /api/v1/cache/{scope}/{id}[/{metric}]
	GET    /metrics
	GET    /swagger/* (swagger UI, /swagger/doc.json from the docs package)

{metric} is a cache metric name such as binge_watching_stats or
milestone_stats; without it the full profile or account statistics are
returned.

Every response uses the models.APIResponse envelope:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "...", "query_time_ms": 12}}
	{"status": "error", "data": null, "error": {"code": "VALIDATION_ERROR", "message": "..."}}

Errors map from apperr kinds:

  - validation (bad id, unknown metric, account without profiles): 400 VALIDATION_ERROR
  - not found: 404 NOT_FOUND
  - dependency or cache failure: 503 DEPENDENCY_ERROR with Retry-After
  - anything else: 500 INTERNAL_ERROR

Middleware: request IDs and Prometheus instrumentation from the middleware
package, go-chi/cors, go-chi/httprate per-IP limits on the statistics routes,
chi's Recoverer, RealIP and gzip Compress.

Handlers carry swag annotations; run go generate ./cmd/server after changing
them to refresh the docs package.
*/
package api
