package analytics

import (
	"testing"

	"github.com/alexanderramin/vital/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDetectTrend_Flat(t *testing.T) {
	result := DetectTrend([]float64{50, 50, 50, 50})
	assert.Equal(t, domain.TrendStable, result.Trend)
	assert.Equal(t, 0.0, result.Change)
}

func TestDetectTrend_Improving(t *testing.T) {
	result := DetectTrend([]float64{40, 40, 80, 80})
	assert.Equal(t, domain.TrendImproving, result.Trend)
	assert.Equal(t, 40.0, result.Change)
}

func TestDetectTrend_Declining(t *testing.T) {
	result := DetectTrend([]float64{80, 75, 60, 55})
	assert.Equal(t, domain.TrendDeclining, result.Trend)
	assert.Equal(t, -20.0, result.Change)
}

func TestDetectTrend_SmallChangeIsStable(t *testing.T) {
	// A 5-point change is not beyond the threshold, so still stable.
	result := DetectTrend([]float64{50, 50, 55, 55})
	assert.Equal(t, domain.TrendStable, result.Trend)
	assert.Equal(t, 5.0, result.Change)
}

func TestDetectTrend_OddLengthGivesRemainderToRecentHalf(t *testing.T) {
	// Older half is [30, 30], recent half is [60, 60, 60].
	result := DetectTrend([]float64{30, 30, 60, 60, 60})
	assert.Equal(t, domain.TrendImproving, result.Trend)
	assert.Equal(t, 30.0, result.Change)
}

func TestDetectTrend_InsufficientData(t *testing.T) {
	for _, scores := range [][]float64{nil, {}, {42}} {
		result := DetectTrend(scores)
		assert.Equal(t, domain.TrendStable, result.Trend)
		assert.Equal(t, 0.0, result.Change)
		assert.Equal(t, "insufficient data", result.Description)
	}
}

func TestDetectTrend_ChangeRoundsToOneDecimal(t *testing.T) {
	result := DetectTrend([]float64{50, 50, 55.55, 55.55})
	assert.Equal(t, 5.6, result.Change)
}

func TestExtremes(t *testing.T) {
	entries := []DatedScore{
		{Date: "2025-06-02", Score: 70},
		{Date: "2025-06-03", Score: 40},
		{Date: "2025-06-04", Score: 90},
		{Date: "2025-06-05", Score: 40},
	}
	best, worst := Extremes(entries)
	assert.Equal(t, "2025-06-04", best.Date)
	assert.Equal(t, 90.0, best.Score)
	assert.Equal(t, "2025-06-03", worst.Date, "ties keep the first occurrence")
}

func TestExtremes_TiesKeepFirst(t *testing.T) {
	entries := []DatedScore{
		{Date: "2025-06-02", Score: 60},
		{Date: "2025-06-03", Score: 60},
	}
	best, worst := Extremes(entries)
	assert.Equal(t, "2025-06-02", best.Date)
	assert.Equal(t, "2025-06-02", worst.Date)
}

func TestExtremes_Empty(t *testing.T) {
	best, worst := Extremes(nil)
	assert.Nil(t, best)
	assert.Nil(t, worst)
}
