package analytics

import (
	"testing"

	"github.com/alexanderramin/vital/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeEnergyScore_Baseline(t *testing.T) {
	result := ComputeEnergyScore(8, 10000)

	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, 60.0, result.SleepContribution)
	assert.Equal(t, 40.0, result.StepsContribution)
	assert.Equal(t, domain.EnergyExcellent, result.Level)
}

func TestComputeEnergyScore_Zero(t *testing.T) {
	result := ComputeEnergyScore(0, 0)

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, domain.EnergyVeryLow, result.Level)
	assert.NotEmpty(t, result.Feedback)
}

func TestComputeEnergyScore_NegativeInputsClampToZero(t *testing.T) {
	result := ComputeEnergyScore(-3, -500)
	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, domain.EnergyVeryLow, result.Level)
}

func TestComputeEnergyScore_OversleepAndOveractivityCaps(t *testing.T) {
	// Sleep credit caps at 125% of baseline, steps at 150%. The raw sum
	// exceeds 100 but the score clamps.
	result := ComputeEnergyScore(14, 30000)
	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, 75.0, result.SleepContribution, "10h of credit max: 1.25 * 60")
	assert.Equal(t, 60.0, result.StepsContribution, "15000 steps of credit max: 1.5 * 40")
}

func TestComputeEnergyScore_Levels(t *testing.T) {
	tests := []struct {
		name  string
		sleep float64
		steps int
		level domain.EnergyLevel
	}{
		{"very low", 2, 1000, domain.EnergyVeryLow},    // 15 + 4 = 19
		{"low", 4, 3000, domain.EnergyLow},             // 30 + 12 = 42
		{"moderate", 6, 5000, domain.EnergyModerate},   // 45 + 20 = 65
		{"good", 7.5, 7000, domain.EnergyGood},         // 56.3 + 28 = 84.3
		{"excellent", 8, 9500, domain.EnergyExcellent}, // 60 + 38 = 98
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeEnergyScore(tt.sleep, tt.steps)
			assert.Equal(t, tt.level, result.Level, "score was %v", result.Score)
		})
	}
}

func TestComputeEnergyScore_ScoreAlwaysInRange(t *testing.T) {
	for sleep := 0.0; sleep <= 16; sleep += 0.5 {
		for steps := 0; steps <= 40000; steps += 2500 {
			result := ComputeEnergyScore(sleep, steps)
			assert.GreaterOrEqual(t, result.Score, 0.0)
			assert.LessOrEqual(t, result.Score, 100.0)
		}
	}
}

func TestEnergyFeedback_ModerateTierBranches(t *testing.T) {
	// All four moderate-tier messages are distinct and keyed on the
	// needs-sleep / needs-steps booleans.
	bothShort := ComputeEnergyScore(5.5, 4500)    // 41.3 + 18 = 59.3
	sleepShort := ComputeEnergyScore(5.5, 6000)   // 41.3 + 24 = 65.3
	stepsShort := ComputeEnergyScore(7, 3500)     // 52.5 + 14 = 66.5
	neitherShort := ComputeEnergyScore(6.5, 5200) // 48.8 + 20.8 = 69.6

	for _, r := range []EnergyScore{bothShort, sleepShort, stepsShort, neitherShort} {
		assert.Equal(t, domain.EnergyModerate, r.Level, "score was %v", r.Score)
	}

	messages := map[string]bool{
		bothShort.Feedback:    true,
		sleepShort.Feedback:   true,
		stepsShort.Feedback:   true,
		neitherShort.Feedback: true,
	}
	assert.Len(t, messages, 4, "each moderate branch has its own message")
}
