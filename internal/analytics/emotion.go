package analytics

import (
	"strings"

	"github.com/alexanderramin/vital/internal/domain"
)

// Fixed sentiment keyword lists. Matching is substring containment, not
// word-boundary matching: "feel great" and "great" both hit the same phrase,
// and "tired" hits inside "retired". This is a known limitation preserved
// deliberately, since correcting it would change historical score outputs.
var positiveKeywords = []string{
	"happy", "great", "feel great", "good", "feel good",
	"joy", "love", "excited", "amazing", "wonderful",
	"fantastic", "grateful", "proud", "calm", "relaxed",
	"energized", "productive", "motivated", "cheerful", "content",
}

var negativeKeywords = []string{
	"sad", "bad", "feel bad", "tired", "angry",
	"stressed", "anxious", "worried", "exhausted", "awful",
	"terrible", "depressed", "frustrated", "lonely", "upset",
	"overwhelmed", "sick", "pain", "hopeless", "miserable",
}

const (
	keywordWeight     = 3.0
	adjustmentCeiling = 10.0
)

// ComputeEmotionScore computes the daily emotion composite from the logged
// mood value and an optional diary text.
func ComputeEmotionScore(mood domain.MoodValue, diaryText string) EmotionScore {
	base := mood.BaseScore()

	var adjustment float64
	if diaryText != "" {
		pos, neg := countKeywordHits(diaryText)
		adjustment = clamp(float64(pos-neg)*keywordWeight, -adjustmentCeiling, adjustmentCeiling)
	}

	score := clamp(base+adjustment, 0, 100)
	level := emotionLevelFor(score)

	return EmotionScore{
		Score:          round1(score),
		MoodBaseScore:  base,
		TextAdjustment: adjustment,
		Level:          level,
		Feedback:       emotionFeedback(level),
	}
}

func countKeywordHits(text string) (pos, neg int) {
	lower := strings.ToLower(text)
	for _, kw := range positiveKeywords {
		if strings.Contains(lower, kw) {
			pos++
		}
	}
	for _, kw := range negativeKeywords {
		if strings.Contains(lower, kw) {
			neg++
		}
	}
	return pos, neg
}

func emotionLevelFor(score float64) domain.EmotionLevel {
	switch {
	case score < 30:
		return domain.EmotionVeryNegative
	case score < 50:
		return domain.EmotionNegative
	case score < 70:
		return domain.EmotionNeutral
	case score < 85:
		return domain.EmotionPositive
	default:
		return domain.EmotionVeryPositive
	}
}

func emotionFeedback(level domain.EmotionLevel) string {
	switch level {
	case domain.EmotionVeryNegative:
		return "A heavy day. Be gentle with yourself, and consider reaching out to someone you trust."
	case domain.EmotionNegative:
		return "Things feel rough right now. Small comforts and rest can make tomorrow lighter."
	case domain.EmotionNeutral:
		return "An even-keeled day. Nothing dramatic, and that's perfectly fine."
	case domain.EmotionPositive:
		return "A genuinely good day. Worth noticing what contributed to it."
	default:
		return "A wonderful day. Savor it, and remember what made it feel this way."
	}
}
