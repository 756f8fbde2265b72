// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

/*
Package services provides suture.Service wrappers for watchstats components.

Each wrapper implements suture's Serve(ctx) error and fmt.Stringer:

  - HTTPServerService: ListenAndServe with graceful Shutdown on cancel
  - CacheJanitor: periodic MemoryStore.Cleanup or BadgerStore.RunValueLogGC

Returning an error from Serve asks the supervisor to restart the service;
returning ctx.Err() after cancellation is a clean stop.
*/
package services
