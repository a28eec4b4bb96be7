package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/vital/internal/contract"
	"github.com/alexanderramin/vital/internal/domain"
	"github.com/alexanderramin/vital/internal/forecast"
	"github.com/alexanderramin/vital/internal/repository"
	"github.com/alexanderramin/vital/internal/testutil"
)

var forecastNow = time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)

func newForecastFixture(t *testing.T) (ForecastService, EntryService) {
	t.Helper()
	db := testutil.NewTestDB(t)
	health := repository.NewSQLiteHealthRepo(db)
	moods := repository.NewSQLiteMoodRepo(db)
	profiles := repository.NewSQLiteProfileRepo(db)
	return NewForecastService(health), NewEntryService(health, moods, profiles)
}

func simulateRequest(targetSleep float64, targetSteps int) contract.SimulateRequest {
	req := contract.NewSimulateRequest(targetSleep, targetSteps)
	now := forecastNow
	req.Now = &now
	return req
}

func withBaseline(req *contract.SimulateRequest, sleep float64, steps int) {
	req.BaselineSleep = &sleep
	req.BaselineSteps = &steps
}

func TestForecastService_Simulate_ExplicitBaseline(t *testing.T) {
	svc, _ := newForecastFixture(t)

	req := simulateRequest(8, 9000)
	withBaseline(&req, 6, 4000)

	resp, err := svc.Simulate(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Points, forecast.DefaultSimulationDays)
	assert.Equal(t, 1, resp.Points[0].Day)
	assert.Equal(t, "2025-06-09", resp.Points[0].Date)

	// 6h/4000 steps up to 8h/9000 steps is a believable plan.
	assert.Equal(t, domain.ConfidenceHigh, resp.Feasibility.Confidence)
	assert.False(t, resp.Feasibility.IsUnrealistic)
	assert.NotEmpty(t, resp.Insight)
	assert.NotEmpty(t, resp.Avatar.RuleID)

	// Nothing logged, so data confidence bottoms out.
	assert.Equal(t, domain.ConfidenceLow, resp.DataConfidence.Confidence)
	assert.Equal(t, 0, resp.DataConfidence.LoggedDays)
}

func TestForecastService_Simulate_BaselineFromHistory(t *testing.T) {
	svc, entries := newForecastFixture(t)
	ctx := context.Background()

	// A week of 6h / 4000-step days ending at the request date.
	for i := 0; i < 7; i++ {
		date := forecastNow.AddDate(0, 0, -i).Format(domain.DateFormat)
		require.NoError(t, entries.LogHealth(ctx, &domain.HealthSample{
			Date: date, Steps: 4000, SleepHours: 6,
		}))
	}

	resp, err := svc.Simulate(ctx, simulateRequest(8, 9000))
	require.NoError(t, err)

	assert.Equal(t, domain.ConfidenceHigh, resp.DataConfidence.Confidence)
	assert.Equal(t, 7, resp.DataConfidence.LoggedDays)

	// Simulating the same habits as history should hold flat at the
	// baseline energy, which confirms the baseline came from history.
	flat, err := svc.Simulate(ctx, simulateRequest(6, 4000))
	require.NoError(t, err)
	base := forecast.PredictedEnergy(6, 4000)
	for _, p := range flat.Points {
		assert.InDelta(t, base, p.PredictedEnergy, 2)
	}
}

func TestForecastService_Simulate_ExplicitZeroBaselineWins(t *testing.T) {
	svc, entries := newForecastFixture(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		date := forecastNow.AddDate(0, 0, -i).Format(domain.DateFormat)
		require.NoError(t, entries.LogHealth(ctx, &domain.HealthSample{
			Date: date, Steps: 4000, SleepHours: 6,
		}))
	}

	// A sedentary starting point is a valid scenario; zero must not be
	// silently replaced with the history average.
	req := simulateRequest(8, 9000)
	zeroSteps := 0
	req.BaselineSteps = &zeroSteps

	resp, err := svc.Simulate(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Scenario.BaselineSteps)
	assert.InDelta(t, 6, resp.Scenario.BaselineSleep, 0.01)
}

func TestForecastService_Simulate_NoHistoryNoBaselineHoldsFlat(t *testing.T) {
	svc, _ := newForecastFixture(t)

	resp, err := svc.Simulate(context.Background(), simulateRequest(7, 6000))
	require.NoError(t, err)

	base := forecast.PredictedEnergy(7, 6000)
	for _, p := range resp.Points {
		assert.InDelta(t, base, p.PredictedEnergy, 2)
	}
}

func TestForecastService_Simulate_ExtremeScenarioFlagged(t *testing.T) {
	svc, _ := newForecastFixture(t)

	req := simulateRequest(3, 19000)
	withBaseline(&req, 7, 6000)

	resp, err := svc.Simulate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.ConfidenceLow, resp.Feasibility.Confidence)
	assert.True(t, resp.Feasibility.IsUnrealistic)
	assert.NotEmpty(t, resp.Feasibility.Warnings)
	assert.Equal(t, forecast.AvatarSleepy, resp.Avatar.State)
}

func TestForecastService_Simulate_Validation(t *testing.T) {
	svc, _ := newForecastFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		mod  func(*contract.SimulateRequest)
		code contract.SimulateErrorCode
	}{
		{
			name: "negative sleep",
			mod:  func(r *contract.SimulateRequest) { r.TargetSleep = -1 },
			code: contract.SimulateErrInvalidScenario,
		},
		{
			name: "sleep beyond a day",
			mod:  func(r *contract.SimulateRequest) { r.TargetSleep = 25 },
			code: contract.SimulateErrInvalidScenario,
		},
		{
			name: "negative steps",
			mod:  func(r *contract.SimulateRequest) { r.TargetSteps = -500 },
			code: contract.SimulateErrInvalidScenario,
		},
		{
			name: "horizon too long",
			mod:  func(r *contract.SimulateRequest) { r.Days = 1000 },
			code: contract.SimulateErrInvalidHorizon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := simulateRequest(8, 9000)
			tt.mod(&req)

			_, err := svc.Simulate(ctx, req)
			require.Error(t, err)

			var simErr *contract.SimulateError
			require.ErrorAs(t, err, &simErr)
			assert.Equal(t, tt.code, simErr.Code)
		})
	}
}
