package analytics

import (
	"testing"

	"github.com/alexanderramin/vital/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeEmotionScore_BaseOnly(t *testing.T) {
	tests := []struct {
		mood  domain.MoodValue
		score float64
		level domain.EmotionLevel
	}{
		{domain.MoodGreat, 90, domain.EmotionVeryPositive},
		{domain.MoodGood, 75, domain.EmotionPositive},
		{domain.MoodOkay, 50, domain.EmotionNeutral},
		{domain.MoodLow, 30, domain.EmotionNegative},
		{domain.MoodBad, 15, domain.EmotionVeryNegative},
	}
	for _, tt := range tests {
		t.Run(string(tt.mood), func(t *testing.T) {
			result := ComputeEmotionScore(tt.mood, "")
			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.score, result.MoodBaseScore)
			assert.Equal(t, 0.0, result.TextAdjustment)
			assert.Equal(t, tt.level, result.Level)
			assert.NotEmpty(t, result.Feedback)
		})
	}
}

func TestComputeEmotionScore_PositiveDiaryLiftsBadMood(t *testing.T) {
	// Substring matching hits "feel great", "great", "happy" and "proud",
	// so the raw adjustment of +12 clamps to the +10 ceiling.
	result := ComputeEmotionScore(domain.MoodBad, "I feel great and happy and proud")

	assert.Equal(t, 15.0, result.MoodBaseScore)
	assert.Equal(t, 10.0, result.TextAdjustment)
	assert.Equal(t, 25.0, result.Score)
	assert.Equal(t, domain.EmotionVeryNegative, result.Level)
}

func TestComputeEmotionScore_NegativeDiary(t *testing.T) {
	result := ComputeEmotionScore(domain.MoodOkay, "so tired and stressed today")

	assert.Equal(t, -6.0, result.TextAdjustment)
	assert.Equal(t, 44.0, result.Score)
	assert.Equal(t, domain.EmotionNegative, result.Level)
}

func TestComputeEmotionScore_AdjustmentClampsBothWays(t *testing.T) {
	down := ComputeEmotionScore(domain.MoodGreat,
		"sad tired angry stressed anxious worried")
	assert.Equal(t, -10.0, down.TextAdjustment)
	assert.Equal(t, 80.0, down.Score)

	up := ComputeEmotionScore(domain.MoodLow,
		"grateful, calm, relaxed and so productive")
	assert.Equal(t, 10.0, up.TextAdjustment)
	assert.Equal(t, 40.0, up.Score)
}

func TestComputeEmotionScore_CaseInsensitive(t *testing.T) {
	result := ComputeEmotionScore(domain.MoodOkay, "GRATEFUL and CALM")
	assert.Equal(t, 6.0, result.TextAdjustment)
}

func TestComputeEmotionScore_SubstringMatchInsideLongerWord(t *testing.T) {
	// "tired" matches inside "retired". Known limitation, preserved so
	// historical scores stay reproducible.
	result := ComputeEmotionScore(domain.MoodOkay, "my neighbor retired yesterday")
	assert.Equal(t, -3.0, result.TextAdjustment)
}

func TestComputeEmotionScore_MixedDiaryCancelsOut(t *testing.T) {
	result := ComputeEmotionScore(domain.MoodOkay, "happy but tired")
	assert.Equal(t, 0.0, result.TextAdjustment)
	assert.Equal(t, 50.0, result.Score)
}

func TestComputeEmotionScore_ScoreClampsToRange(t *testing.T) {
	top := ComputeEmotionScore(domain.MoodGreat, "happy grateful calm relaxed")
	assert.Equal(t, 100.0, top.Score)

	bottom := ComputeEmotionScore(domain.MoodBad,
		"sad angry stressed anxious worried exhausted")
	assert.Equal(t, 5.0, bottom.Score)
}
