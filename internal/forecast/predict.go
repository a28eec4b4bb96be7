package forecast

import "math"

// PredictedMood labels live on the forecast surface only; they are not the
// journal's MoodValue enum.
type PredictedMood string

const (
	MoodRadiant   PredictedMood = "Radiant"
	MoodEnergetic PredictedMood = "Energetic"
	MoodBalanced  PredictedMood = "Balanced"
	MoodExhausted PredictedMood = "Exhausted"
	MoodTired     PredictedMood = "Tired"
	MoodLowEnergy PredictedMood = "Low Energy"
)

// PredictedEnergy estimates daily energy from a sleep/steps habit pair using
// hard component caps of 60 and 40. This is deliberately a different formula
// from analytics.ComputeEnergyScore, which grants oversleep and overactivity
// credit; unifying the two would change displayed numbers on either the
// dashboard or the forecast.
func PredictedEnergy(sleepHours float64, steps int) int {
	if sleepHours < 0 {
		sleepHours = 0
	}
	if steps < 0 {
		steps = 0
	}
	sleepComp := math.Min(sleepHours/8*60, 60)
	stepsComp := math.Min(float64(steps)/10000*40, 40)
	return int(math.Round(sleepComp + stepsComp))
}

// PredictMood maps a sleep/energy pair to a mood label. The cascade is
// ordered; the first matching rule wins.
func PredictMood(sleepHours float64, energy int) PredictedMood {
	switch {
	case sleepHours >= 7.5 && energy >= 80:
		return MoodRadiant
	case sleepHours >= 7 && energy >= 70:
		return MoodEnergetic
	case sleepHours >= 6 && energy >= 50:
		return MoodBalanced
	case sleepHours < 5 && energy < 40:
		return MoodExhausted
	case sleepHours < 6:
		return MoodTired
	default:
		return MoodLowEnergy
	}
}

// PredictionInsight summarizes what a habit change would do to energy.
// diff must exceed 5 points before the change is worth calling out.
func PredictionInsight(currentEnergy, predictedEnergy int, sleepDiff float64, stepsDiff int) string {
	diff := predictedEnergy - currentEnergy
	switch {
	case diff > 5 && sleepDiff > 0 && stepsDiff > 0:
		return "More sleep and more movement together would give you a real energy lift. This combination compounds."
	case diff > 5 && sleepDiff > 0:
		return "The extra sleep alone accounts for most of this gain. Your body is asking for the earlier night."
	case diff > 5:
		return "The added activity drives this improvement. Movement is your quickest lever right now."
	case diff < -5:
		return "This change would cost you energy. Reconsider before locking in a habit that works against you."
	default:
		return "This change keeps your energy roughly where it is today. Stability is a fine outcome too."
	}
}
