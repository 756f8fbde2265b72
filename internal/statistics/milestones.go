// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package statistics

import (
	"math"

	"github.com/tomtom215/watchstats/internal/models"
)

// Standard milestone thresholds, ascending.
var (
	EpisodeThresholds = []int{100, 500, 1000, 5000, 10000}
	MovieThresholds   = []int{10, 25, 50, 100, 250, 500}
	HourThresholds    = []int{24, 100, 500, 1000, 5000}
)

// MaxRecentAchievements caps the achievements shown in an account rollup.
const MaxRecentAchievements = 10

// CalculateMilestones maps current against each threshold, preserving the
// order of thresholds. Progress is capped at 100 and rounded to one decimal.
// A threshold of zero or less has nothing to make progress toward, so its
// progress is 100 once achieved.
func CalculateMilestones(current float64, thresholds []int, typ models.MilestoneType) []models.Milestone {
	milestones := make([]models.Milestone, 0, len(thresholds))
	for _, threshold := range thresholds {
		t := float64(threshold)
		m := models.Milestone{
			Type:      typ,
			Threshold: threshold,
			Achieved:  current >= t,
		}
		switch {
		case threshold <= 0 && m.Achieved:
			m.Progress = 100
		case threshold <= 0:
			m.Progress = 0
		default:
			m.Progress = roundTo(math.Max(0, math.Min(current/t*100, 100)), 1)
		}
		milestones = append(milestones, m)
	}
	return milestones
}

// StandardMilestones computes the episode, movie and hour milestones, in that order.
func StandardMilestones(episodes, movies, hours int) []models.Milestone {
	milestones := CalculateMilestones(float64(episodes), EpisodeThresholds, models.MilestoneEpisodes)
	milestones = append(milestones, CalculateMilestones(float64(movies), MovieThresholds, models.MilestoneMovies)...)
	return append(milestones, CalculateMilestones(float64(hours), HourThresholds, models.MilestoneHours)...)
}

// BuildMilestoneStats derives milestone statistics from lifetime totals.
func BuildMilestoneStats(totals models.MilestoneTotals) models.MilestoneStats {
	achievements := totals.RecentAchievements
	if achievements == nil {
		achievements = []models.Achievement{}
	}
	return models.MilestoneStats{
		TotalEpisodesWatched: totals.TotalEpisodesWatched,
		TotalMoviesWatched:   totals.TotalMoviesWatched,
		TotalHoursWatched:    totals.TotalHoursWatched,
		Milestones:           StandardMilestones(totals.TotalEpisodesWatched, totals.TotalMoviesWatched, totals.TotalHoursWatched),
		RecentAchievements:   achievements,
	}
}

// Percentage returns part/whole as a percentage rounded to two decimals, or 0 when whole is 0.
func Percentage(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return roundTo(float64(part)/float64(whole)*100, 2)
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
