package analytics

import (
	"math"

	"github.com/alexanderramin/vital/internal/domain"
)

// DayEntry is one calendar day's inputs to weekly aggregation. Either sample
// may be absent; days carry whatever was actually logged.
type DayEntry struct {
	Date   string
	Health *domain.HealthSample
	Mood   *domain.MoodSample
}

// BuildWeeklyAnalytics composes per-day scoring with trend, extremes,
// correlation and mood pattern analysis over ordered day entries.
//
// The correlation arrays must stay pairwise-aligned, so days missing either
// the mood or the sleep signal are excluded from both series symmetrically.
// Zero-filling a missing side would fabricate a correlation that was never
// observed.
func BuildWeeklyAnalytics(days []DayEntry, weekStart, weekEnd string) (*WeeklyAnalytics, error) {
	var (
		energyScores  []float64
		energyByDay   []DatedScore
		emotionScores []float64
		moods         []domain.MoodValue

		corrEmotion []float64
		corrSleep   []float64

		stepsSum int
		sleepSum float64
	)

	totalEntries := 0
	for _, day := range days {
		if day.Health == nil && day.Mood == nil {
			continue
		}
		totalEntries++

		var emotion *EmotionScore
		if day.Mood != nil {
			e := ComputeEmotionScore(day.Mood.Value, day.Mood.DiaryText)
			emotion = &e
			emotionScores = append(emotionScores, e.Score)
			moods = append(moods, day.Mood.Value)
		}

		if day.Health != nil {
			e := ComputeEnergyScore(day.Health.SleepHours, day.Health.Steps)
			energyScores = append(energyScores, e.Score)
			energyByDay = append(energyByDay, DatedScore{Date: day.Date, Score: e.Score})
			stepsSum += day.Health.Steps
			sleepSum += day.Health.SleepHours

			// Correlation needs both signals for the same day.
			if emotion != nil {
				corrEmotion = append(corrEmotion, emotion.Score)
				corrSleep = append(corrSleep, day.Health.SleepHours)
			}
		}
	}

	correlation, err := CorrelateMoodWithSleep(corrEmotion, corrSleep)
	if err != nil {
		return nil, err
	}

	best, worst := Extremes(energyByDay)
	pattern := AnalyzeMoodPattern(moods)

	analytics := &WeeklyAnalytics{
		WeekStart:            weekStart,
		WeekEnd:              weekEnd,
		AvgEnergyScore:       round1(mean(energyScores)),
		EnergyTrend:          DetectTrend(energyScores),
		BestEnergyDay:        best,
		WorstEnergyDay:       worst,
		AvgEmotionScore:      round1(mean(emotionScores)),
		EmotionTrend:         DetectTrend(emotionScores),
		MostCommonMood:       pattern.MostCommon,
		TotalEntries:         totalEntries,
		SleepMoodCorrelation: correlation,
	}
	if n := len(energyByDay); n > 0 {
		analytics.AvgSteps = int(math.Round(float64(stepsSum) / float64(n)))
		analytics.AvgSleep = round1(sleepSum / float64(n))
	}
	return analytics, nil
}
