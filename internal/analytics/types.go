package analytics

import (
	"math"

	"github.com/alexanderramin/vital/internal/domain"
)

// EnergyScore is the derived 0-100 energy composite for one day.
type EnergyScore struct {
	Score             float64
	SleepContribution float64
	StepsContribution float64
	Level             domain.EnergyLevel
	Feedback          string
}

// EmotionScore is the derived 0-100 emotion composite for one day.
type EmotionScore struct {
	Score          float64
	MoodBaseScore  float64
	TextAdjustment float64
	Level          domain.EmotionLevel
	Feedback       string
}

// DatedScore pairs a score with the day it was computed for.
type DatedScore struct {
	Date  string
	Score float64
}

// TrendResult characterizes a score sequence by comparing the average of its
// older half against its recent half.
type TrendResult struct {
	Trend       domain.Trend
	Change      float64
	Description string
}

// CorrelationResult buckets a Pearson coefficient into a named strength.
type CorrelationResult struct {
	Strength    domain.CorrelationStrength
	Description string
}

// MoodPattern summarizes the distribution of mood values across a window.
type MoodPattern struct {
	MostCommon   domain.MoodValue
	Distribution map[domain.MoodValue]int
	VarietyPct   float64
}

// WeeklyAnalytics is the immutable aggregate over one week of entries.
type WeeklyAnalytics struct {
	WeekStart string
	WeekEnd   string

	AvgEnergyScore float64
	EnergyTrend    TrendResult
	BestEnergyDay  *DatedScore
	WorstEnergyDay *DatedScore

	AvgEmotionScore float64
	EmotionTrend    TrendResult
	MostCommonMood  domain.MoodValue

	AvgSteps     int
	AvgSleep     float64
	TotalEntries int

	SleepMoodCorrelation CorrelationResult
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
