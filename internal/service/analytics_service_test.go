package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/vital/internal/contract"
	"github.com/alexanderramin/vital/internal/domain"
	"github.com/alexanderramin/vital/internal/narrative"
	"github.com/alexanderramin/vital/internal/repository"
	"github.com/alexanderramin/vital/internal/testutil"
)

type analyticsFixture struct {
	entries   EntryService
	analytics AnalyticsService
	profiles  repository.ProfileRepo
}

func newAnalyticsFixture(t *testing.T, seed int64) analyticsFixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	health := repository.NewSQLiteHealthRepo(db)
	moods := repository.NewSQLiteMoodRepo(db)
	profiles := repository.NewSQLiteProfileRepo(db)
	entries := NewEntryService(health, moods, profiles)
	engine := narrative.NewEngine(narrative.WithRand(rand.New(rand.NewSource(seed))))
	return analyticsFixture{
		entries:   entries,
		analytics: NewAnalyticsService(entries, profiles, engine),
		profiles:  profiles,
	}
}

// seedWeek logs a plausible improving week across 2025-06-02 .. 2025-06-08.
func seedWeek(t *testing.T, entries EntryService) {
	t.Helper()
	ctx := context.Background()

	days := []struct {
		date  string
		sleep float64
		steps int
		mood  domain.MoodValue
	}{
		{"2025-06-02", 6, 4000, domain.MoodLow},
		{"2025-06-03", 6.5, 5000, domain.MoodOkay},
		{"2025-06-04", 7, 7000, domain.MoodOkay},
		{"2025-06-05", 7.5, 8000, domain.MoodGood},
		{"2025-06-06", 8, 9000, domain.MoodGood},
		{"2025-06-07", 8, 10000, domain.MoodGreat},
		{"2025-06-08", 8, 11000, domain.MoodGood},
	}
	for _, d := range days {
		require.NoError(t, entries.LogHealth(ctx, &domain.HealthSample{
			Date: d.date, Steps: d.steps, SleepHours: d.sleep,
		}))
		require.NoError(t, entries.LogMood(ctx, &domain.MoodSample{
			Date: d.date, Value: d.mood,
		}))
	}
}

func weekRequest() contract.WeeklyRequest {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 8, 18, 0, 0, 0, time.UTC)
	req := contract.NewWeeklyRequest()
	req.Start = &start
	req.Now = &now
	return req
}

func TestAnalyticsService_GenerateWeeklyAnalytics(t *testing.T) {
	f := newAnalyticsFixture(t, 1)
	seedWeek(t, f.entries)

	resp, err := f.analytics.GenerateWeeklyAnalytics(context.Background(), weekRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Analytics)

	a := resp.Analytics
	assert.Equal(t, "2025-06-02", a.WeekStart)
	assert.Equal(t, "2025-06-08", a.WeekEnd)
	assert.Equal(t, 7, a.TotalEntries)
	assert.Equal(t, domain.TrendImproving, a.EnergyTrend.Trend)
	assert.Equal(t, domain.MoodGood, a.MostCommonMood)
	require.NotNil(t, a.BestEnergyDay)
	require.NotNil(t, a.WorstEnergyDay)
	assert.Equal(t, "2025-06-02", a.WorstEnergyDay.Date)
}

func TestAnalyticsService_WeeklyAnalyticsCarriesHabitHighlights(t *testing.T) {
	f := newAnalyticsFixture(t, 1)
	seedWeek(t, f.entries)

	resp, err := f.analytics.GenerateWeeklyAnalytics(context.Background(), weekRequest())
	require.NoError(t, err)

	// One sleep line and one activity line; conditions within a category
	// are mutually exclusive, so the draw is deterministic.
	require.Len(t, resp.Highlights, 2)
	assert.Contains(t, resp.Highlights[0], "Sleep averaged")
	assert.Contains(t, resp.Highlights[1], "steps a day")
}

func TestAnalyticsService_EmptyWeekHasNoHighlights(t *testing.T) {
	f := newAnalyticsFixture(t, 1)

	resp, err := f.analytics.GenerateWeeklyAnalytics(context.Background(), weekRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Highlights)
}

func TestAnalyticsService_DefaultWindowEndsToday(t *testing.T) {
	f := newAnalyticsFixture(t, 1)
	seedWeek(t, f.entries)

	now := time.Date(2025, 6, 8, 18, 0, 0, 0, time.UTC)
	req := contract.NewWeeklyRequest()
	req.Now = &now

	resp, err := f.analytics.GenerateWeeklyAnalytics(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", resp.Analytics.WeekStart)
	assert.Equal(t, "2025-06-08", resp.Analytics.WeekEnd)
}

func TestAnalyticsService_FutureWeekRejected(t *testing.T) {
	f := newAnalyticsFixture(t, 1)

	now := time.Date(2025, 6, 8, 18, 0, 0, 0, time.UTC)
	start := now.AddDate(0, 0, 7)
	req := contract.NewWeeklyRequest()
	req.Start = &start
	req.Now = &now

	_, err := f.analytics.GenerateWeeklyAnalytics(context.Background(), req)
	require.Error(t, err)

	var weeklyErr *contract.WeeklyError
	require.ErrorAs(t, err, &weeklyErr)
	assert.Equal(t, contract.WeeklyErrInvalidRange, weeklyErr.Code)
}

func TestAnalyticsService_GenerateWeeklyStory_UsesProfileName(t *testing.T) {
	f := newAnalyticsFixture(t, 7)
	seedWeek(t, f.entries)
	require.NoError(t, f.entries.SetUserName(context.Background(), "Alex"))

	resp, err := f.analytics.GenerateWeeklyStory(context.Background(), weekRequest())
	require.NoError(t, err)

	assert.Contains(t, resp.Story, "Alex")
	assert.NotContains(t, resp.Story, "friend")
	require.NotNil(t, resp.Analytics)
	assert.Equal(t, 7, resp.Analytics.TotalEntries)
}

func TestAnalyticsService_GenerateWeeklyStory_FallbackName(t *testing.T) {
	f := newAnalyticsFixture(t, 7)
	seedWeek(t, f.entries)

	resp, err := f.analytics.GenerateWeeklyStory(context.Background(), weekRequest())
	require.NoError(t, err)
	assert.Contains(t, resp.Story, "friend")
}

func TestAnalyticsService_GenerateWeeklyStory_RequestNameOverridesProfile(t *testing.T) {
	f := newAnalyticsFixture(t, 7)
	seedWeek(t, f.entries)
	require.NoError(t, f.entries.SetUserName(context.Background(), "Alex"))

	req := weekRequest()
	req.UserName = "Sam"
	resp, err := f.analytics.GenerateWeeklyStory(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, resp.Story, "Sam")
}

func TestAnalyticsService_StoryDeterministicForSeed(t *testing.T) {
	first := newAnalyticsFixture(t, 42)
	seedWeek(t, first.entries)
	second := newAnalyticsFixture(t, 42)
	seedWeek(t, second.entries)

	a, err := first.analytics.GenerateWeeklyStory(context.Background(), weekRequest())
	require.NoError(t, err)
	b, err := second.analytics.GenerateWeeklyStory(context.Background(), weekRequest())
	require.NoError(t, err)

	assert.Equal(t, a.Story, b.Story)
}

func TestAnalyticsService_EmptyWeekStillTellsAStory(t *testing.T) {
	f := newAnalyticsFixture(t, 3)

	resp, err := f.analytics.GenerateWeeklyStory(context.Background(), weekRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Story)
	assert.Equal(t, 0, resp.Analytics.TotalEntries)
}
