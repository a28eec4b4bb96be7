package forecast

import "fmt"

type AvatarState string

const (
	AvatarSleepy AvatarState = "sleepy"
	AvatarHappy  AvatarState = "happy"
	AvatarSad    AvatarState = "sad"
)

// AvatarDecision records which rule fired and why, so a surprising avatar
// can be explained from logs instead of re-deriving the cascade by hand.
type AvatarDecision struct {
	State       AvatarState
	RuleID      string
	Explanation string
}

// InferAvatarDecision maps a simulated scenario's sleep and predicted energy
// to an avatar state. The cascade is ordered; the first matching rule wins.
func InferAvatarDecision(simSleep float64, predictedEnergy int) AvatarDecision {
	switch {
	case simSleep < 5:
		return AvatarDecision{
			State:       AvatarSleepy,
			RuleID:      "deep_sleep_deficit",
			Explanation: fmt.Sprintf("matched because simulated sleep %.1fh is under 5h", simSleep),
		}
	case simSleep < 6:
		return AvatarDecision{
			State:       AvatarSleepy,
			RuleID:      "short_sleep",
			Explanation: fmt.Sprintf("matched because simulated sleep %.1fh is under 6h", simSleep),
		}
	case predictedEnergy < 40:
		return AvatarDecision{
			State:       AvatarSad,
			RuleID:      "depleted",
			Explanation: fmt.Sprintf("matched because predicted energy %d is under 40", predictedEnergy),
		}
	case predictedEnergy >= 75:
		return AvatarDecision{
			State:       AvatarHappy,
			RuleID:      "thriving",
			Explanation: fmt.Sprintf("matched because predicted energy %d is at least 75", predictedEnergy),
		}
	case predictedEnergy >= 55:
		return AvatarDecision{
			State:       AvatarHappy,
			RuleID:      "steady",
			Explanation: fmt.Sprintf("matched because predicted energy %d is at least 55", predictedEnergy),
		}
	default:
		return AvatarDecision{
			State:       AvatarSad,
			RuleID:      "flat",
			Explanation: fmt.Sprintf("matched because predicted energy %d fell below every positive rule", predictedEnergy),
		}
	}
}
