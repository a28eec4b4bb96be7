package forecast

import (
	"fmt"
	"math"

	"github.com/alexanderramin/vital/internal/domain"
)

type WarningCode string

const (
	WarnSleepExtremeLow  WarningCode = "SLEEP_EXTREME_LOW"
	WarnSleepExtremeHigh WarningCode = "SLEEP_EXTREME_HIGH"
	WarnStepsExtremeLow  WarningCode = "STEPS_EXTREME_LOW"
	WarnStepsExtremeHigh WarningCode = "STEPS_EXTREME_HIGH"
	WarnSleepDeltaLarge  WarningCode = "SLEEP_DELTA_LARGE"
	WarnStepsDeltaLarge  WarningCode = "STEPS_DELTA_LARGE"
	WarnComboOvertrained WarningCode = "COMBO_HIGH_ACTIVITY_LOW_SLEEP"
	WarnComboSedentary   WarningCode = "COMBO_LONG_SLEEP_NO_ACTIVITY"
)

// Warning is one triggered feasibility rule.
type Warning struct {
	Code    WarningCode
	Message string
}

// FeasibilityAssessment qualifies how believable a simulated scenario is.
type FeasibilityAssessment struct {
	Confidence    domain.Confidence
	Warnings      []Warning
	IsUnrealistic bool
}

// Risk thresholds: at mediumRiskThreshold the scenario is questionable, at
// unrealisticRiskThreshold it stops being a plan and becomes a wish.
const (
	mediumRiskThreshold      = 3
	unrealisticRiskThreshold = 6
)

// AssessFeasibility scores a simulated habit scenario against independent
// additive risk rules. Each triggered rule contributes risk and a warning;
// rules are independent, so a wild scenario collects several.
func AssessFeasibility(simSleep float64, simSteps int, baselineSleep float64, baselineSteps int) FeasibilityAssessment {
	risk := 0
	var warnings []Warning

	add := func(points int, code WarningCode, msg string) {
		risk += points
		warnings = append(warnings, Warning{Code: code, Message: msg})
	}

	if simSleep < 4 {
		add(3, WarnSleepExtremeLow,
			fmt.Sprintf("%.1f hours of sleep per night is below what anyone sustains. Expect this plan to collapse.", simSleep))
	} else if simSleep > 11 {
		add(2, WarnSleepExtremeHigh,
			fmt.Sprintf("%.1f hours of sleep every night usually signals avoidance or illness rather than rest.", simSleep))
	}

	if simSteps > 18000 {
		add(2, WarnStepsExtremeHigh,
			fmt.Sprintf("%d steps every single day is athlete territory. Plan rest days or plan injuries.", simSteps))
	} else if simSteps < 500 {
		add(1, WarnStepsExtremeLow,
			fmt.Sprintf("%d steps a day is near-total stillness, which works against any energy goal.", simSteps))
	}

	if math.Abs(simSleep-baselineSleep) >= 3 {
		add(2, WarnSleepDeltaLarge,
			fmt.Sprintf("Jumping from %.1f to %.1f hours of sleep is a drastic shift. Move in half-hour steps instead.", baselineSleep, simSleep))
	}
	if abs(simSteps-baselineSteps) >= 8000 {
		add(2, WarnStepsDeltaLarge,
			fmt.Sprintf("Going from %d to %d daily steps overnight rarely sticks. Ramp up across a few weeks.", baselineSteps, simSteps))
	}

	if simSleep <= 5 && simSteps >= 15000 {
		add(3, WarnComboOvertrained,
			"Very high activity on very little sleep is an overtraining recipe, not an energy plan.")
	}
	if simSleep >= 10 && simSteps <= 1000 {
		add(1, WarnComboSedentary,
			"Long sleep with almost no movement tends to lower energy, not raise it.")
	}

	assessment := FeasibilityAssessment{Warnings: warnings}
	switch {
	case risk >= unrealisticRiskThreshold:
		assessment.Confidence = domain.ConfidenceLow
		assessment.IsUnrealistic = true
	case risk >= mediumRiskThreshold:
		assessment.Confidence = domain.ConfidenceMedium
	default:
		assessment.Confidence = domain.ConfidenceHigh
	}
	return assessment
}

// DataConfidenceAssessment qualifies a historical window by how much of it
// was actually logged.
type DataConfidenceAssessment struct {
	Confidence domain.Confidence
	LoggedDays int
	TotalDays  int
	Note       string
}

// DefaultConfidenceWindowDays is the lookback used for data confidence.
const DefaultConfidenceWindowDays = 7

// AssessDataConfidence grades how much to trust predictions built on the
// last totalDays of history.
func AssessDataConfidence(loggedDays, totalDays int) DataConfidenceAssessment {
	if totalDays <= 0 {
		totalDays = DefaultConfidenceWindowDays
	}
	if loggedDays < 0 {
		loggedDays = 0
	}
	if loggedDays > totalDays {
		loggedDays = totalDays
	}

	a := DataConfidenceAssessment{LoggedDays: loggedDays, TotalDays: totalDays}
	switch {
	case loggedDays <= 2:
		a.Confidence = domain.ConfidenceLow
		a.Note = fmt.Sprintf("Only %d of the last %d days are logged, so forecasts are rough guesses for now.", loggedDays, totalDays)
	case loggedDays <= 4:
		a.Confidence = domain.ConfidenceMedium
		a.Note = fmt.Sprintf("%d of the last %d days are logged. Forecasts are directionally useful but imprecise.", loggedDays, totalDays)
	default:
		a.Confidence = domain.ConfidenceHigh
		a.Note = fmt.Sprintf("%d of the last %d days are logged. That's solid coverage for forecasting.", loggedDays, totalDays)
	}
	return a
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
