// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

/*
Package statistics computes watch-behavior statistics per profile and rolls
them up per account.

# Services

ProfileService exposes one getter per metric family. Each getter is cached
independently under profile_{id}_{metric} for 30 minutes:

	stats, err := profiles.GetBingeWatchingStats(ctx, 12)

AccountService resolves the profiles of an account, fetches the same metric
for every profile concurrently, merges the results and caches the merged value
under account_{id}_{metric} for 60 minutes:

	stats, err := accounts.GetAccountBingeWatchingStats(ctx, 3)

Account results are looked up in the cache first; the ProfileDirectory is only
queried on a miss. An account without profiles fails with an apperr.KindValidation
error before anything is cached or the data source is queried. Any failing profile fails the whole
account call; partial merges are never returned.

# Merge Rules

The merge functions in merge.go are pure and exported so they can be tested
and reused. Where an output order is defined as first-seen, it follows the
order the ProfileDirectory returned the profiles in.

  - abandonment risk: unweighted mean of rates, at-risk lists concatenated
  - activity timeline: periods grouped by key and summed, first-seen order
  - binge watching: counts summed, average weighted by session count
  - milestones: totals summed, milestones recomputed from standard thresholds
  - time to watch: unweighted means, fastest completions ascending
  - watch streaks: maxima, with the matching periods
  - unaired content: sums

# Errors

Every failure except validation passes through the ErrorReporter with a label
of the form "getBingeWatchingStats(12)" or "getAccountBingeWatchingStats(3)".
*/
package statistics
