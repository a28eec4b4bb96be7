package analytics

import "github.com/alexanderramin/vital/internal/domain"

// trendThreshold is the minimum half-over-half change before a sequence is
// called improving or declining rather than stable.
const trendThreshold = 5.0

// DetectTrend compares the average of the older half of scores against the
// recent half. Fewer than two points yields the insufficient-data sentinel,
// not a computed result.
func DetectTrend(scores []float64) TrendResult {
	if len(scores) < 2 {
		return TrendResult{
			Trend:       domain.TrendStable,
			Change:      0,
			Description: "insufficient data",
		}
	}

	// The recent half takes any odd remainder.
	split := len(scores) / 2
	olderAvg := mean(scores[:split])
	recentAvg := mean(scores[split:])
	change := round1(recentAvg - olderAvg)

	result := TrendResult{Change: change}
	switch {
	case change > trendThreshold:
		result.Trend = domain.TrendImproving
		result.Description = "trending upward"
	case change < -trendThreshold:
		result.Trend = domain.TrendDeclining
		result.Description = "trending downward"
	default:
		result.Trend = domain.TrendStable
		result.Description = "holding steady"
	}
	return result
}

// Extremes returns the best and worst dated scores. Ties keep the first
// occurrence. Empty input returns nil for both.
func Extremes(entries []DatedScore) (best, worst *DatedScore) {
	for i := range entries {
		e := entries[i]
		if best == nil || e.Score > best.Score {
			b := e
			best = &b
		}
		if worst == nil || e.Score < worst.Score {
			w := e
			worst = &w
		}
	}
	return best, worst
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
