package domain

import "fmt"

type MoodValue string

const (
	MoodGreat MoodValue = "great"
	MoodGood  MoodValue = "good"
	MoodOkay  MoodValue = "okay"
	MoodLow   MoodValue = "low"
	MoodBad   MoodValue = "bad"
)

// MoodOrder is the canonical enumeration order, best first. Tie-breaking in
// mood pattern analysis walks this slice, so the order is load-bearing.
var MoodOrder = []MoodValue{MoodGreat, MoodGood, MoodOkay, MoodLow, MoodBad}

var moodBaseScores = map[MoodValue]float64{
	MoodGreat: 90,
	MoodGood:  75,
	MoodOkay:  50,
	MoodLow:   30,
	MoodBad:   15,
}

// BaseScore returns the fixed emotion base score for the mood value.
// Unknown values score as okay.
func (m MoodValue) BaseScore() float64 {
	if s, ok := moodBaseScores[m]; ok {
		return s
	}
	return moodBaseScores[MoodOkay]
}

// ParseMoodValue validates a free-text mood label against the canonical set.
func ParseMoodValue(s string) (MoodValue, error) {
	m := MoodValue(s)
	if _, ok := moodBaseScores[m]; !ok {
		return "", fmt.Errorf("mood value %q must be one of great, good, okay, low, bad", s)
	}
	return m, nil
}

type EnergyLevel string

const (
	EnergyVeryLow   EnergyLevel = "very_low"
	EnergyLow       EnergyLevel = "low"
	EnergyModerate  EnergyLevel = "moderate"
	EnergyGood      EnergyLevel = "good"
	EnergyExcellent EnergyLevel = "excellent"
)

type EmotionLevel string

const (
	EmotionVeryNegative EmotionLevel = "very_negative"
	EmotionNegative     EmotionLevel = "negative"
	EmotionNeutral      EmotionLevel = "neutral"
	EmotionPositive     EmotionLevel = "positive"
	EmotionVeryPositive EmotionLevel = "very_positive"
)

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

type CorrelationStrength string

const (
	CorrelationStrongPositive   CorrelationStrength = "strong_positive"
	CorrelationModeratePositive CorrelationStrength = "moderate_positive"
	CorrelationWeak             CorrelationStrength = "weak"
	CorrelationModerateNegative CorrelationStrength = "moderate_negative"
	CorrelationStrongNegative   CorrelationStrength = "strong_negative"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)
