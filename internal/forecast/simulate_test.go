package forecast

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var simStart = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestSimulateHabits_FlatScenarioStaysNearBaseline(t *testing.T) {
	s := Scenario{BaselineSleep: 6, BaselineSteps: 5000, TargetSleep: 6, TargetSteps: 5000}
	points := SimulateHabits(s, simStart, 30)
	require.Len(t, points, 30)

	base := PredictedEnergy(6, 5000) // 65
	for _, p := range points {
		// Noise is bounded by ±1.5; rounding widens the band to ±2.
		assert.InDelta(t, base, p.PredictedEnergy, 2, "day %d", p.Day)
	}
}

func TestSimulateHabits_Deterministic(t *testing.T) {
	s := Scenario{BaselineSleep: 6, BaselineSteps: 4000, TargetSleep: 8, TargetSteps: 9000}
	first := SimulateHabits(s, simStart, 30)
	second := SimulateHabits(s, simStart, 30)
	assert.Equal(t, first, second, "noise is input-deterministic, not per-call random")
}

func TestSimulateHabits_DifferentScenariosDiffer(t *testing.T) {
	a := SimulateHabits(Scenario{6, 4000, 8, 9000}, simStart, 30)
	b := SimulateHabits(Scenario{6, 4000, 8.5, 9000}, simStart, 30)
	assert.NotEqual(t, a, b)
}

func TestSimulateHabits_ApproachesTarget(t *testing.T) {
	s := Scenario{BaselineSleep: 5, BaselineSteps: 2000, TargetSleep: 8, TargetSteps: 10000}
	points := SimulateHabits(s, simStart, 30)

	target := PredictedEnergy(8, 10000) // 100, but noise can pull below
	final := points[len(points)-1]
	assert.InDelta(t, target, final.PredictedEnergy, 2)

	// By day 10 roughly 85% of the change has landed.
	base := float64(PredictedEnergy(5, 2000))
	diff := float64(target) - base
	day10 := points[9]
	expected := base + diff*(1-math.Exp(-2))
	assert.InDelta(t, expected, float64(day10.PredictedEnergy), 2)
}

func TestSimulateHabits_DatesFollowStart(t *testing.T) {
	points := SimulateHabits(Scenario{7, 6000, 7, 6000}, simStart, 3)
	require.Len(t, points, 3)
	assert.Equal(t, 1, points[0].Day)
	assert.Equal(t, "2025-06-02", points[0].Date)
	assert.Equal(t, "2025-06-04", points[2].Date)
}

func TestSimulateHabits_DefaultHorizon(t *testing.T) {
	points := SimulateHabits(Scenario{7, 6000, 8, 8000}, simStart, 0)
	assert.Len(t, points, DefaultSimulationDays)
}

func TestSimulateHabits_EnergyAlwaysInRange(t *testing.T) {
	scenarios := []Scenario{
		{0, 0, 12, 30000},
		{12, 30000, 0, 0},
		{8, 10000, 8, 10000},
	}
	for _, s := range scenarios {
		for _, p := range SimulateHabits(s, simStart, 30) {
			assert.GreaterOrEqual(t, p.PredictedEnergy, 0)
			assert.LessOrEqual(t, p.PredictedEnergy, 100)
		}
	}
}

func TestSimulateHabits_MoodTracksSimulatedSleep(t *testing.T) {
	// Climbing from 4h to 8h of sleep: the first days should still read
	// as sleep-deprived, the final stretch should not.
	s := Scenario{BaselineSleep: 4, BaselineSteps: 6000, TargetSleep: 8, TargetSteps: 6000}
	points := SimulateHabits(s, simStart, 30)

	assert.Contains(t, []PredictedMood{MoodExhausted, MoodTired}, points[0].PredictedMood)
	final := points[len(points)-1]
	assert.NotContains(t, []PredictedMood{MoodExhausted, MoodTired}, final.PredictedMood)
}

func TestNoiseBounds(t *testing.T) {
	phase := noisePhase(Scenario{6, 5000, 8, 9000})
	for day := 1; day <= 365; day++ {
		n := noise(day, phase)
		assert.LessOrEqual(t, math.Abs(n), 1.5)
	}
}
