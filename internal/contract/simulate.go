package contract

import (
	"time"

	"github.com/alexanderramin/vital/internal/forecast"
)

// SimulateRequest describes a what-if habit scenario. Nil baselines are
// resolved from the logged history; explicit values, zero included, win.
type SimulateRequest struct {
	BaselineSleep *float64
	BaselineSteps *int
	TargetSleep   float64
	TargetSteps   int
	Days          int
	Now           *time.Time
}

func NewSimulateRequest(targetSleep float64, targetSteps int) SimulateRequest {
	return SimulateRequest{
		TargetSleep: targetSleep,
		TargetSteps: targetSteps,
		Days:        forecast.DefaultSimulationDays,
	}
}

type SimulateResponse struct {
	Scenario       forecast.Scenario
	Start          time.Time
	Points         []forecast.ForecastPoint
	Feasibility    forecast.FeasibilityAssessment
	DataConfidence forecast.DataConfidenceAssessment
	Insight        string
	Avatar         forecast.AvatarDecision
}

type SimulateErrorCode string

const (
	SimulateErrInvalidScenario SimulateErrorCode = "INVALID_SCENARIO"
	SimulateErrInvalidHorizon  SimulateErrorCode = "INVALID_HORIZON"
)

type SimulateError struct {
	Code    SimulateErrorCode
	Message string
}

func (e *SimulateError) Error() string {
	return string(e.Code) + ": " + e.Message
}
