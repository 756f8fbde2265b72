// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package statistics

import (
	"sort"

	"github.com/tomtom215/watchstats/internal/models"
)

// Display caps applied to account rollups.
const (
	MaxTopBingedShows     = 5
	MaxFastestCompletions = 10
)

// MergeAbandonmentRisk averages the per-profile abandonment rates without
// weighting and concatenates the at-risk shows.
func MergeAbandonmentRisk(values []models.AbandonmentRiskStats) models.AbandonmentRiskStats {
	merged := models.AbandonmentRiskStats{ShowsAtRisk: []models.ShowAtRisk{}}
	if len(values) == 0 {
		return merged
	}

	rates := 0.0
	for _, v := range values {
		rates += v.ShowAbandonmentRate
		merged.ShowsAtRisk = append(merged.ShowsAtRisk, v.ShowsAtRisk...)
	}
	merged.ShowAbandonmentRate = rates / float64(len(values))
	return merged
}

// MergeActivityTimeline sums activity for matching periods across profiles.
// Periods keep the order in which they were first seen.
func MergeActivityTimeline(values []models.ActivityTimeline) models.ActivityTimeline {
	daily := make([][]models.DailyActivity, 0, len(values))
	weekly := make([][]models.WeeklyActivity, 0, len(values))
	monthly := make([][]models.MonthlyActivity, 0, len(values))
	for _, v := range values {
		daily = append(daily, v.DailyActivity)
		weekly = append(weekly, v.WeeklyActivity)
		monthly = append(monthly, v.MonthlyActivity)
	}

	return models.ActivityTimeline{
		DailyActivity: mergeByKey(daily,
			func(d models.DailyActivity) string { return d.Date },
			func(dst *models.DailyActivity, src models.DailyActivity) {
				dst.EpisodesWatched += src.EpisodesWatched
				dst.ShowsWatched += src.ShowsWatched
			}),
		WeeklyActivity: mergeByKey(weekly,
			func(w models.WeeklyActivity) string { return w.WeekStart },
			func(dst *models.WeeklyActivity, src models.WeeklyActivity) {
				dst.EpisodesWatched += src.EpisodesWatched
			}),
		MonthlyActivity: mergeByKey(monthly,
			func(m models.MonthlyActivity) string { return m.Month },
			func(dst *models.MonthlyActivity, src models.MonthlyActivity) {
				dst.EpisodesWatched += src.EpisodesWatched
				dst.MoviesWatched += src.MoviesWatched
			}),
	}
}

// MergeBingeWatching sums session counts and weights each profile's average
// episodes per binge by its session count. The longest session is the one
// with the most episodes, the earliest profile winning ties. Top shows are
// regrouped by show across profiles.
func MergeBingeWatching(values []models.BingeWatchingStats) models.BingeWatchingStats {
	merged := models.BingeWatchingStats{TopBingedShows: []models.BingedShow{}}

	weighted := 0.0
	longestSet := false
	lists := make([][]models.BingedShow, 0, len(values))
	for _, v := range values {
		merged.BingeSessionCount += v.BingeSessionCount
		weighted += float64(v.BingeSessionCount) * v.AverageEpisodesPerBinge
		if !longestSet || v.LongestBingeSession.EpisodeCount > merged.LongestBingeSession.EpisodeCount {
			merged.LongestBingeSession = v.LongestBingeSession
			longestSet = true
		}
		lists = append(lists, v.TopBingedShows)
	}
	if merged.BingeSessionCount > 0 {
		merged.AverageEpisodesPerBinge = weighted / float64(merged.BingeSessionCount)
	}

	shows := mergeByKey(lists,
		func(s models.BingedShow) int { return s.ShowID },
		func(dst *models.BingedShow, src models.BingedShow) {
			dst.BingeSessionCount += src.BingeSessionCount
		})
	sort.SliceStable(shows, func(i, j int) bool {
		return shows[i].BingeSessionCount > shows[j].BingeSessionCount
	})
	if len(shows) > MaxTopBingedShows {
		shows = shows[:MaxTopBingedShows]
	}
	merged.TopBingedShows = shows
	return merged
}

// MergeMilestones sums lifetime totals and recomputes milestones from the
// standard thresholds. Recent achievements are merged newest first.
func MergeMilestones(values []models.MilestoneStats) models.MilestoneStats {
	var totals models.MilestoneTotals
	achievements := []models.Achievement{}
	for _, v := range values {
		totals.TotalEpisodesWatched += v.TotalEpisodesWatched
		totals.TotalMoviesWatched += v.TotalMoviesWatched
		totals.TotalHoursWatched += v.TotalHoursWatched
		achievements = append(achievements, v.RecentAchievements...)
	}

	sort.SliceStable(achievements, func(i, j int) bool {
		return achievements[i].AchievedDate.After(achievements[j].AchievedDate)
	})
	if len(achievements) > MaxRecentAchievements {
		achievements = achievements[:MaxRecentAchievements]
	}
	totals.RecentAchievements = achievements

	return BuildMilestoneStats(totals)
}

// MergeTimeToWatch averages the per-profile averages without weighting, lists
// the fastest completions across profiles and sums the backlog buckets.
func MergeTimeToWatch(values []models.TimeToWatchStats) models.TimeToWatchStats {
	merged := models.TimeToWatchStats{FastestCompletions: []models.ShowCompletion{}}
	if len(values) == 0 {
		return merged
	}

	var start, complete float64
	for _, v := range values {
		start += v.AverageDaysToStartShow
		complete += v.AverageDaysToCompleteShow
		merged.FastestCompletions = append(merged.FastestCompletions, v.FastestCompletions...)
		merged.BacklogAging.UnwatchedOver30Days += v.BacklogAging.UnwatchedOver30Days
		merged.BacklogAging.UnwatchedOver90Days += v.BacklogAging.UnwatchedOver90Days
		merged.BacklogAging.UnwatchedOver365Days += v.BacklogAging.UnwatchedOver365Days
	}
	n := float64(len(values))
	merged.AverageDaysToStartShow = start / n
	merged.AverageDaysToCompleteShow = complete / n

	sort.SliceStable(merged.FastestCompletions, func(i, j int) bool {
		return merged.FastestCompletions[i].DaysToComplete < merged.FastestCompletions[j].DaysToComplete
	})
	if len(merged.FastestCompletions) > MaxFastestCompletions {
		merged.FastestCompletions = merged.FastestCompletions[:MaxFastestCompletions]
	}
	return merged
}

// MergeWatchStreaks reports the best streaks of any profile. The longest
// period comes from the profile holding the longest streak, and the current
// streak start is the earliest among profiles tied on the current streak.
// Average episodes per day is summed into account-wide throughput.
func MergeWatchStreaks(values []models.WatchStreakStats) models.WatchStreakStats {
	var merged models.WatchStreakStats
	for i, v := range values {
		merged.AverageEpisodesPerDay += v.AverageEpisodesPerDay

		if i == 0 || v.LongestStreak > merged.LongestStreak {
			merged.LongestStreak = v.LongestStreak
			merged.LongestStreakPeriod = v.LongestStreakPeriod
		}

		switch {
		case i == 0 || v.CurrentStreak > merged.CurrentStreak:
			merged.CurrentStreak = v.CurrentStreak
			merged.StreakStartDate = v.StreakStartDate
		case v.CurrentStreak == merged.CurrentStreak && v.StreakStartDate != "" &&
			(merged.StreakStartDate == "" || v.StreakStartDate < merged.StreakStartDate):
			merged.StreakStartDate = v.StreakStartDate
		}
	}
	return merged
}

// MergeUnairedContent sums every count.
func MergeUnairedContent(values []models.UnairedContentStats) models.UnairedContentStats {
	var merged models.UnairedContentStats
	for _, v := range values {
		merged.UnairedShowCount += v.UnairedShowCount
		merged.UnairedSeasonCount += v.UnairedSeasonCount
		merged.UnairedMovieCount += v.UnairedMovieCount
		merged.UnairedEpisodeCount += v.UnairedEpisodeCount
	}
	return merged
}

// MergeAccountStatistics rolls per-profile statistics into an account view.
// profiles and values are parallel slices in directory order.
func MergeAccountStatistics(accountID int, profiles []models.Profile, values []models.ProfileStatistics, unique models.UniqueContentCounts) models.AccountStatistics {
	merged := models.AccountStatistics{
		AccountID:        accountID,
		ProfileCount:     len(profiles),
		UniqueContent:    unique,
		ProfileBreakdown: make([]models.ProfileSummary, 0, len(values)),
	}

	shows := make([]models.ContentStatistics, 0, len(values))
	movies := make([]models.ContentStatistics, 0, len(values))
	episodes := make([]models.EpisodeWatchProgress, 0, len(values))
	for i, v := range values {
		shows = append(shows, v.ShowStatistics)
		movies = append(movies, v.MovieStatistics)
		episodes = append(episodes, v.EpisodeWatchProgress)

		summary := models.ProfileSummary{
			ProfileID:       v.ProfileID,
			ShowProgress:    v.ShowStatistics.WatchProgress,
			MovieProgress:   v.MovieStatistics.WatchProgress,
			EpisodeProgress: v.EpisodeWatchProgress.WatchProgress,
		}
		if i < len(profiles) {
			summary.ProfileName = profiles[i].Name
		}
		merged.ProfileBreakdown = append(merged.ProfileBreakdown, summary)
	}

	merged.ShowStatistics = MergeContentStatistics(shows)
	merged.MovieStatistics = MergeContentStatistics(movies)
	merged.EpisodeWatchProgress = MergeEpisodeProgress(episodes)
	return merged
}

// MergeContentStatistics sums counts and distributions. Watch progress is
// re-derived from the summed counts rather than averaged.
func MergeContentStatistics(values []models.ContentStatistics) models.ContentStatistics {
	merged := models.ContentStatistics{
		GenreDistribution:   map[string]int{},
		ServiceDistribution: map[string]int{},
	}
	for _, v := range values {
		merged.Total += v.Total
		c := v.WatchStatusCounts
		merged.WatchStatusCounts.Add(models.StatusNotWatched, c.NotWatched)
		merged.WatchStatusCounts.Add(models.StatusWatching, c.Watching)
		merged.WatchStatusCounts.Add(models.StatusWatched, c.Watched)
		merged.WatchStatusCounts.Add(models.StatusUpToDate, c.UpToDate)
		merged.WatchStatusCounts.Add(models.StatusUnaired, c.Unaired)
		for genre, n := range v.GenreDistribution {
			merged.GenreDistribution[genre] += n
		}
		for service, n := range v.ServiceDistribution {
			merged.ServiceDistribution[service] += n
		}
	}
	merged.WatchProgress = Percentage(merged.WatchStatusCounts.Completed(), merged.Total)
	return merged
}

// MergeEpisodeProgress sums episode counts across profiles. Per-show progress
// is grouped by show and reports the furthest any profile has got.
func MergeEpisodeProgress(values []models.EpisodeWatchProgress) models.EpisodeWatchProgress {
	merged := models.EpisodeWatchProgress{}
	lists := make([][]models.ShowProgress, 0, len(values))
	for _, v := range values {
		merged.TotalEpisodes += v.TotalEpisodes
		merged.WatchedEpisodes += v.WatchedEpisodes
		lists = append(lists, v.ShowsProgress)
	}
	merged.WatchProgress = Percentage(merged.WatchedEpisodes, merged.TotalEpisodes)

	merged.ShowsProgress = mergeByKey(lists,
		func(p models.ShowProgress) int { return p.ShowID },
		func(dst *models.ShowProgress, src models.ShowProgress) {
			if src.TotalEpisodes > dst.TotalEpisodes {
				dst.TotalEpisodes = src.TotalEpisodes
			}
			if src.WatchedEpisodes > dst.WatchedEpisodes {
				dst.WatchedEpisodes = src.WatchedEpisodes
				dst.Status = src.Status
			}
			dst.Percentage = Percentage(dst.WatchedEpisodes, dst.TotalEpisodes)
		})
	return merged
}

// mergeByKey flattens lists, combining items that share a key with add.
// The result keeps first-seen order and is never nil.
func mergeByKey[T any, K comparable](lists [][]T, key func(T) K, add func(dst *T, src T)) []T {
	index := make(map[K]int)
	merged := make([]T, 0)
	for _, list := range lists {
		for _, item := range list {
			k := key(item)
			if i, ok := index[k]; ok {
				add(&merged[i], item)
				continue
			}
			index[k] = len(merged)
			merged = append(merged, item)
		}
	}
	return merged
}
