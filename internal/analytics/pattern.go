package analytics

import "github.com/alexanderramin/vital/internal/domain"

// AnalyzeMoodPattern summarizes mood distribution over a window. The most
// common value breaks frequency ties by canonical enumeration order (great
// before good before okay before low before bad). Variety is the share of
// the five possible moods actually observed.
func AnalyzeMoodPattern(moods []domain.MoodValue) MoodPattern {
	distribution := make(map[domain.MoodValue]int, len(domain.MoodOrder))
	for _, m := range moods {
		distribution[m]++
	}

	var mostCommon domain.MoodValue
	bestCount := 0
	for _, m := range domain.MoodOrder {
		if distribution[m] > bestCount {
			mostCommon = m
			bestCount = distribution[m]
		}
	}

	distinct := 0
	for _, m := range domain.MoodOrder {
		if distribution[m] > 0 {
			distinct++
		}
	}

	return MoodPattern{
		MostCommon:   mostCommon,
		Distribution: distribution,
		VarietyPct:   float64(distinct) / float64(len(domain.MoodOrder)) * 100,
	}
}
