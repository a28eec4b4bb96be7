package analytics

import (
	"fmt"
	"math"

	"github.com/alexanderramin/vital/internal/domain"
)

// minCorrelationPoints is the smallest paired-sample count worth correlating.
const minCorrelationPoints = 3

var correlationDescriptions = map[domain.CorrelationStrength]string{
	domain.CorrelationStrongPositive:   "Your mood tracks your sleep closely. Better nights reliably mean better days.",
	domain.CorrelationModeratePositive: "More sleep tends to come with better moods, though it isn't the whole story.",
	domain.CorrelationWeak:             "No clear link between your sleep and mood showed up this week.",
	domain.CorrelationModerateNegative: "Oddly, your better moods came on shorter nights this week. Worth watching.",
	domain.CorrelationStrongNegative:   "Your mood ran strongly opposite to your sleep this week, which is unusual.",
}

// CorrelateMoodWithSleep buckets the Pearson correlation between paired
// emotion scores and sleep hours. The two slices must be the same length and
// the same day-ordering; a mismatch is a caller bug and fails fast rather
// than silently truncating, which would misattribute a mood score to the
// wrong sleep value. Fewer than three pairs, or zero variance in either
// series, yields the weak bucket.
func CorrelateMoodWithSleep(emotionScores, sleepHours []float64) (CorrelationResult, error) {
	if len(emotionScores) != len(sleepHours) {
		return CorrelationResult{}, fmt.Errorf(
			"correlation input mismatch: %d emotion scores vs %d sleep values",
			len(emotionScores), len(sleepHours))
	}
	if len(emotionScores) < minCorrelationPoints {
		return bucketCorrelation(0), nil
	}

	r, ok := pearson(emotionScores, sleepHours)
	if !ok {
		// Zero variance makes r undefined; report weak instead of NaN.
		return bucketCorrelation(0), nil
	}
	return bucketCorrelation(r), nil
}

func bucketCorrelation(r float64) CorrelationResult {
	var strength domain.CorrelationStrength
	switch {
	case r > 0.7:
		strength = domain.CorrelationStrongPositive
	case r > 0.4:
		strength = domain.CorrelationModeratePositive
	case r < -0.7:
		strength = domain.CorrelationStrongNegative
	case r < -0.4:
		strength = domain.CorrelationModerateNegative
	default:
		strength = domain.CorrelationWeak
	}
	return CorrelationResult{
		Strength:    strength,
		Description: correlationDescriptions[strength],
	}
}

func pearson(xs, ys []float64) (float64, bool) {
	meanX := mean(xs)
	meanY := mean(ys)

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}
	return cov / math.Sqrt(varX*varY), true
}
