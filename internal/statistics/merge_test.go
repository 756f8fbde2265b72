// Watchstats - Watch Behavior Statistics for Multi-Profile Media Tracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchstats

package statistics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/watchstats/internal/models"
)

func TestMergeAbandonmentRisk(t *testing.T) {
	merged := MergeAbandonmentRisk([]models.AbandonmentRiskStats{
		{
			ShowAbandonmentRate: 15.5,
			ShowsAtRisk: []models.ShowAtRisk{
				{ShowID: 1, ShowTitle: "Lost", DaysSinceLastWatch: 45},
				{ShowID: 2, ShowTitle: "Dark", DaysSinceLastWatch: 60},
			},
		},
		{
			ShowAbandonmentRate: 12.0,
			ShowsAtRisk:         []models.ShowAtRisk{{ShowID: 3, ShowTitle: "Fargo", DaysSinceLastWatch: 31}},
		},
	})

	assert.Equal(t, 13.75, merged.ShowAbandonmentRate)
	assert.Len(t, merged.ShowsAtRisk, 3)
}

func TestMergeAbandonmentRisk_Empty(t *testing.T) {
	merged := MergeAbandonmentRisk(nil)
	assert.Equal(t, 0.0, merged.ShowAbandonmentRate)
	assert.NotNil(t, merged.ShowsAtRisk)
}

func TestMergeActivityTimeline(t *testing.T) {
	merged := MergeActivityTimeline([]models.ActivityTimeline{
		{
			DailyActivity: []models.DailyActivity{
				{Date: "2024-01-01", EpisodesWatched: 5, ShowsWatched: 2},
				{Date: "2024-01-02", EpisodesWatched: 1, ShowsWatched: 1},
			},
			WeeklyActivity:  []models.WeeklyActivity{{WeekStart: "2024-01-01", EpisodesWatched: 6}},
			MonthlyActivity: []models.MonthlyActivity{{Month: "2024-01", EpisodesWatched: 6, MoviesWatched: 1}},
		},
		{
			DailyActivity: []models.DailyActivity{
				{Date: "2023-12-31", EpisodesWatched: 2, ShowsWatched: 1},
				{Date: "2024-01-01", EpisodesWatched: 3, ShowsWatched: 1},
			},
			WeeklyActivity:  []models.WeeklyActivity{{WeekStart: "2024-01-01", EpisodesWatched: 3}, {WeekStart: "2023-12-25", EpisodesWatched: 2}},
			MonthlyActivity: []models.MonthlyActivity{{Month: "2024-01", EpisodesWatched: 3, MoviesWatched: 2}},
		},
	})

	require.Len(t, merged.DailyActivity, 3)
	assert.Equal(t, models.DailyActivity{Date: "2024-01-01", EpisodesWatched: 8, ShowsWatched: 3}, merged.DailyActivity[0])
	assert.Equal(t, "2024-01-02", merged.DailyActivity[1].Date)
	assert.Equal(t, "2023-12-31", merged.DailyActivity[2].Date, "unmatched periods pass through in first-seen order")

	require.Len(t, merged.WeeklyActivity, 2)
	assert.Equal(t, 9, merged.WeeklyActivity[0].EpisodesWatched)

	require.Len(t, merged.MonthlyActivity, 1)
	assert.Equal(t, models.MonthlyActivity{Month: "2024-01", EpisodesWatched: 9, MoviesWatched: 3}, merged.MonthlyActivity[0])
}

func TestMergeActivityTimeline_SameDay(t *testing.T) {
	merged := MergeActivityTimeline([]models.ActivityTimeline{
		{DailyActivity: []models.DailyActivity{{Date: "2024-01-01", EpisodesWatched: 5}}},
		{DailyActivity: []models.DailyActivity{{Date: "2024-01-01", EpisodesWatched: 3}}},
	})

	require.Len(t, merged.DailyActivity, 1)
	assert.Equal(t, "2024-01-01", merged.DailyActivity[0].Date)
	assert.Equal(t, 8, merged.DailyActivity[0].EpisodesWatched)
	assert.NotNil(t, merged.WeeklyActivity)
	assert.NotNil(t, merged.MonthlyActivity)
}

func TestMergeBingeWatching(t *testing.T) {
	start := time.Date(2024, 2, 1, 20, 0, 0, 0, time.UTC)
	merged := MergeBingeWatching([]models.BingeWatchingStats{
		{
			BingeSessionCount:       15,
			AverageEpisodesPerBinge: 5.2,
			LongestBingeSession:     models.BingeSession{ShowID: 1, ShowTitle: "Dark", EpisodeCount: 9, StartDate: start},
			TopBingedShows: []models.BingedShow{
				{ShowID: 1, ShowTitle: "Dark", BingeSessionCount: 6},
				{ShowID: 2, ShowTitle: "Lost", BingeSessionCount: 5},
			},
		},
		{
			BingeSessionCount:       10,
			AverageEpisodesPerBinge: 4.8,
			LongestBingeSession:     models.BingeSession{ShowID: 3, ShowTitle: "Fargo", EpisodeCount: 9},
			TopBingedShows: []models.BingedShow{
				{ShowID: 2, ShowTitle: "Lost", BingeSessionCount: 4},
				{ShowID: 3, ShowTitle: "Fargo", BingeSessionCount: 3},
			},
		},
	})

	assert.Equal(t, 25, merged.BingeSessionCount)
	assert.InDelta(t, 5.04, merged.AverageEpisodesPerBinge, 1e-9)
	assert.NotEqual(t, 5.0, merged.AverageEpisodesPerBinge)

	assert.Equal(t, "Dark", merged.LongestBingeSession.ShowTitle, "ties go to the first profile")
	assert.True(t, merged.LongestBingeSession.StartDate.Equal(start))

	require.Len(t, merged.TopBingedShows, 3)
	assert.Equal(t, models.BingedShow{ShowID: 2, ShowTitle: "Lost", BingeSessionCount: 9}, merged.TopBingedShows[0])
	assert.Equal(t, 1, merged.TopBingedShows[1].ShowID)
	assert.Equal(t, 3, merged.TopBingedShows[2].ShowID)
}

func TestMergeBingeWatching_LongestAndCap(t *testing.T) {
	var values []models.BingeWatchingStats
	for p := 0; p < 3; p++ {
		v := models.BingeWatchingStats{
			BingeSessionCount:   4,
			LongestBingeSession: models.BingeSession{ShowID: 100 + p, EpisodeCount: 3 + p},
		}
		for s := 0; s < 4; s++ {
			v.TopBingedShows = append(v.TopBingedShows, models.BingedShow{ShowID: p*10 + s, ShowTitle: fmt.Sprintf("show-%d-%d", p, s), BingeSessionCount: 1})
		}
		values = append(values, v)
	}

	merged := MergeBingeWatching(values)

	assert.Equal(t, 102, merged.LongestBingeSession.ShowID)
	require.Len(t, merged.TopBingedShows, MaxTopBingedShows)
	// All tied at one session: first-seen order survives the sort.
	assert.Equal(t, 0, merged.TopBingedShows[0].ShowID)
	assert.Equal(t, 10, merged.TopBingedShows[4].ShowID)
}

func TestMergeBingeWatching_NoSessions(t *testing.T) {
	merged := MergeBingeWatching([]models.BingeWatchingStats{{}, {}})
	assert.Equal(t, 0, merged.BingeSessionCount)
	assert.Equal(t, 0.0, merged.AverageEpisodesPerBinge)
	assert.NotNil(t, merged.TopBingedShows)
}

func TestMergeMilestones(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	merged := MergeMilestones([]models.MilestoneStats{
		{
			TotalEpisodesWatched: 1500, TotalMoviesWatched: 250, TotalHoursWatched: 2500,
			RecentAchievements: []models.Achievement{
				{Description: "Watched 1000 episodes", AchievedDate: base.AddDate(0, 1, 0)},
				{Description: "Watched 250 movies", AchievedDate: base.AddDate(0, 3, 0)},
			},
		},
		{
			TotalEpisodesWatched: 1200, TotalMoviesWatched: 200, TotalHoursWatched: 2000,
			RecentAchievements: []models.Achievement{
				{Description: "Watched 1000 hours", AchievedDate: base.AddDate(0, 2, 0)},
			},
		},
	})

	assert.Equal(t, 2700, merged.TotalEpisodesWatched)
	assert.Equal(t, 450, merged.TotalMoviesWatched)
	assert.Equal(t, 4500, merged.TotalHoursWatched)

	assert.Equal(t, StandardMilestones(2700, 450, 4500), merged.Milestones)

	require.Len(t, merged.RecentAchievements, 3)
	assert.Equal(t, "Watched 250 movies", merged.RecentAchievements[0].Description)
	assert.Equal(t, "Watched 1000 hours", merged.RecentAchievements[1].Description)
	assert.Equal(t, "Watched 1000 episodes", merged.RecentAchievements[2].Description)
}

func TestMergeMilestones_CapsAchievements(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var values []models.MilestoneStats
	for p := 0; p < 3; p++ {
		v := models.MilestoneStats{}
		for i := 0; i < 5; i++ {
			v.RecentAchievements = append(v.RecentAchievements, models.Achievement{
				Description:  fmt.Sprintf("p%d-a%d", p, i),
				AchievedDate: base.AddDate(0, 0, p*5+i),
			})
		}
		values = append(values, v)
	}

	merged := MergeMilestones(values)

	require.Len(t, merged.RecentAchievements, MaxRecentAchievements)
	assert.Equal(t, "p2-a4", merged.RecentAchievements[0].Description)
	for i := 1; i < len(merged.RecentAchievements); i++ {
		assert.False(t, merged.RecentAchievements[i].AchievedDate.After(merged.RecentAchievements[i-1].AchievedDate))
	}
}

func TestMergeTimeToWatch(t *testing.T) {
	merged := MergeTimeToWatch([]models.TimeToWatchStats{
		{
			AverageDaysToStartShow:    4,
			AverageDaysToCompleteShow: 30,
			FastestCompletions:        []models.ShowCompletion{{ShowID: 1, DaysToComplete: 12}, {ShowID: 2, DaysToComplete: 3}},
			BacklogAging:              models.BacklogAging{UnwatchedOver30Days: 5, UnwatchedOver90Days: 3, UnwatchedOver365Days: 1},
		},
		{
			AverageDaysToStartShow:    10,
			AverageDaysToCompleteShow: 45,
			FastestCompletions:        []models.ShowCompletion{{ShowID: 3, DaysToComplete: 7}},
			BacklogAging:              models.BacklogAging{UnwatchedOver30Days: 2, UnwatchedOver90Days: 1},
		},
	})

	assert.Equal(t, 7.0, merged.AverageDaysToStartShow)
	assert.Equal(t, 37.5, merged.AverageDaysToCompleteShow)

	require.Len(t, merged.FastestCompletions, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{
		merged.FastestCompletions[0].ShowID,
		merged.FastestCompletions[1].ShowID,
		merged.FastestCompletions[2].ShowID,
	})

	assert.Equal(t, models.BacklogAging{UnwatchedOver30Days: 7, UnwatchedOver90Days: 4, UnwatchedOver365Days: 1}, merged.BacklogAging)
}

func TestMergeWatchStreaks(t *testing.T) {
	merged := MergeWatchStreaks([]models.WatchStreakStats{
		{
			CurrentStreak: 4, LongestStreak: 12, StreakStartDate: "2024-03-07",
			LongestStreakPeriod:   models.StreakPeriod{StartDate: "2023-06-01", EndDate: "2023-06-12", Days: 12},
			AverageEpisodesPerDay: 1.5,
		},
		{
			CurrentStreak: 4, LongestStreak: 20, StreakStartDate: "2024-03-05",
			LongestStreakPeriod:   models.StreakPeriod{StartDate: "2023-01-01", EndDate: "2023-01-20", Days: 20},
			AverageEpisodesPerDay: 2.0,
		},
		{CurrentStreak: 0, LongestStreak: 20, AverageEpisodesPerDay: 0.5},
	})

	assert.Equal(t, 4, merged.CurrentStreak)
	assert.Equal(t, "2024-03-05", merged.StreakStartDate)
	assert.Equal(t, 20, merged.LongestStreak)
	assert.Equal(t, "2023-01-01", merged.LongestStreakPeriod.StartDate, "ties on longest keep the first profile")
	assert.Equal(t, 4.0, merged.AverageEpisodesPerDay)
}

func TestMergeUnairedContent(t *testing.T) {
	merged := MergeUnairedContent([]models.UnairedContentStats{
		{UnairedShowCount: 1, UnairedSeasonCount: 2, UnairedMovieCount: 3, UnairedEpisodeCount: 4},
		{UnairedShowCount: 10, UnairedSeasonCount: 20, UnairedMovieCount: 30, UnairedEpisodeCount: 40},
	})
	assert.Equal(t, models.UnairedContentStats{UnairedShowCount: 11, UnairedSeasonCount: 22, UnairedMovieCount: 33, UnairedEpisodeCount: 44}, merged)
}

func TestMergeAccountStatistics(t *testing.T) {
	profiles := []models.Profile{{ID: 1, Name: "Alex"}, {ID: 2, Name: "Sam"}}
	values := []models.ProfileStatistics{
		{
			ProfileID: 1,
			ShowStatistics: models.ContentStatistics{
				Total:             4,
				WatchStatusCounts: models.WatchStatusCounts{Watched: 2, Watching: 2},
				GenreDistribution: map[string]int{"Drama": 3, "Comedy": 1},
				WatchProgress:     50,
			},
			EpisodeWatchProgress: models.EpisodeWatchProgress{
				TotalEpisodes: 20, WatchedEpisodes: 10, WatchProgress: 50,
				ShowsProgress: []models.ShowProgress{{ShowID: 7, TotalEpisodes: 20, WatchedEpisodes: 10, Status: models.StatusWatching}},
			},
		},
		{
			ProfileID: 2,
			ShowStatistics: models.ContentStatistics{
				Total:               4,
				WatchStatusCounts:   models.WatchStatusCounts{UpToDate: 1, NotWatched: 3},
				GenreDistribution:   map[string]int{"Drama": 4},
				ServiceDistribution: map[string]int{"Netflix": 4},
				WatchProgress:       25,
			},
			EpisodeWatchProgress: models.EpisodeWatchProgress{
				TotalEpisodes: 20, WatchedEpisodes: 20, WatchProgress: 100,
				ShowsProgress: []models.ShowProgress{{ShowID: 7, TotalEpisodes: 20, WatchedEpisodes: 20, Status: models.StatusWatched}},
			},
		},
	}

	merged := MergeAccountStatistics(9, profiles, values, models.UniqueContentCounts{ShowCount: 5, MovieCount: 2})

	assert.Equal(t, 9, merged.AccountID)
	assert.Equal(t, 2, merged.ProfileCount)
	assert.Equal(t, 5, merged.UniqueContent.ShowCount)
	assert.Equal(t, 8, merged.ShowStatistics.Total)
	assert.Equal(t, 37.5, merged.ShowStatistics.WatchProgress)
	assert.Equal(t, map[string]int{"Drama": 7, "Comedy": 1}, merged.ShowStatistics.GenreDistribution)
	assert.Equal(t, map[string]int{"Netflix": 4}, merged.ShowStatistics.ServiceDistribution)
	assert.Equal(t, 0.0, merged.MovieStatistics.WatchProgress)

	assert.Equal(t, 40, merged.EpisodeWatchProgress.TotalEpisodes)
	assert.Equal(t, 75.0, merged.EpisodeWatchProgress.WatchProgress)
	require.Len(t, merged.EpisodeWatchProgress.ShowsProgress, 1)
	assert.Equal(t, models.StatusWatched, merged.EpisodeWatchProgress.ShowsProgress[0].Status)
	assert.Equal(t, 100.0, merged.EpisodeWatchProgress.ShowsProgress[0].Percentage)

	require.Len(t, merged.ProfileBreakdown, 2)
	assert.Equal(t, models.ProfileSummary{ProfileID: 2, ProfileName: "Sam", ShowProgress: 25, EpisodeProgress: 100}, merged.ProfileBreakdown[1])
}

func TestMergeRulesIgnoreProfileOrder(t *testing.T) {
	a := models.BingeWatchingStats{BingeSessionCount: 15, AverageEpisodesPerBinge: 5.2, TopBingedShows: []models.BingedShow{{ShowID: 1, BingeSessionCount: 3}}}
	b := models.BingeWatchingStats{BingeSessionCount: 10, AverageEpisodesPerBinge: 4.8, TopBingedShows: []models.BingedShow{{ShowID: 2, BingeSessionCount: 7}}}

	ab := MergeBingeWatching([]models.BingeWatchingStats{a, b})
	ba := MergeBingeWatching([]models.BingeWatchingStats{b, a})
	assert.Equal(t, ab.BingeSessionCount, ba.BingeSessionCount)
	assert.InDelta(t, ab.AverageEpisodesPerBinge, ba.AverageEpisodesPerBinge, 1e-9)
	assert.Equal(t, ab.TopBingedShows, ba.TopBingedShows)

	ra := models.AbandonmentRiskStats{ShowAbandonmentRate: 15.5}
	rb := models.AbandonmentRiskStats{ShowAbandonmentRate: 12.0}
	assert.Equal(t,
		MergeAbandonmentRisk([]models.AbandonmentRiskStats{ra, rb}).ShowAbandonmentRate,
		MergeAbandonmentRisk([]models.AbandonmentRiskStats{rb, ra}).ShowAbandonmentRate)
}
