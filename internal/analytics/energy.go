package analytics

import "github.com/alexanderramin/vital/internal/domain"

const (
	sleepBaselineHours = 8.0
	stepsBaseline      = 10000.0

	// Oversleep earns credit up to 125% of baseline, overactivity up to 150%.
	sleepNormCap = 1.25
	stepsNormCap = 1.5

	sleepWeight = 0.6
	stepsWeight = 0.4
)

// ComputeEnergyScore computes the daily energy composite from sleep and steps.
// Negative inputs are clamped to zero before scoring.
func ComputeEnergyScore(sleepHours float64, steps int) EnergyScore {
	if sleepHours < 0 {
		sleepHours = 0
	}
	if steps < 0 {
		steps = 0
	}

	sleepNorm := clamp(sleepHours/sleepBaselineHours, 0, sleepNormCap)
	stepsNorm := clamp(float64(steps)/stepsBaseline, 0, stepsNormCap)

	sleepContribution := sleepNorm * sleepWeight * 100
	stepsContribution := stepsNorm * stepsWeight * 100
	score := clamp(sleepContribution+stepsContribution, 0, 100)

	level := energyLevelFor(score)

	return EnergyScore{
		Score:             round1(score),
		SleepContribution: round1(sleepContribution),
		StepsContribution: round1(stepsContribution),
		Level:             level,
		Feedback:          energyFeedback(level, sleepHours, steps),
	}
}

func energyLevelFor(score float64) domain.EnergyLevel {
	switch {
	case score < 30:
		return domain.EnergyVeryLow
	case score < 50:
		return domain.EnergyLow
	case score < 70:
		return domain.EnergyModerate
	case score < 85:
		return domain.EnergyGood
	default:
		return domain.EnergyExcellent
	}
}

func energyFeedback(level domain.EnergyLevel, sleepHours float64, steps int) string {
	switch level {
	case domain.EnergyVeryLow:
		return "Your body is running on empty. Prioritize rest tonight and take it easy tomorrow."
	case domain.EnergyLow:
		return "Energy reserves are low. A short walk and an earlier bedtime would help a lot."
	case domain.EnergyModerate:
		needsSleep := sleepHours < 6
		needsSteps := steps < 5000
		switch {
		case needsSleep && needsSteps:
			return "You're getting by, but both sleep and movement are below where you need them."
		case needsSleep:
			return "Solid activity, but short sleep is holding your energy back. Aim for a fuller night."
		case needsSteps:
			return "Sleep looks fine. Adding more movement to your day would lift this score."
		default:
			return "A balanced middle ground. Small improvements on either front will push you higher."
		}
	case domain.EnergyGood:
		return "Good energy today. Your sleep and activity are working together nicely."
	default:
		return "Excellent energy. Whatever you're doing, keep doing it."
	}
}
