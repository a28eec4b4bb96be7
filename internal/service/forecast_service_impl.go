package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/vital/internal/contract"
	"github.com/alexanderramin/vital/internal/domain"
	"github.com/alexanderramin/vital/internal/forecast"
	"github.com/alexanderramin/vital/internal/repository"
)

// maxSimulationDays bounds the forecast horizon; the adaptation curve is
// flat long before a year is out.
const maxSimulationDays = 365

type forecastService struct {
	health   repository.HealthRepo
	observer UseCaseObserver
}

func NewForecastService(health repository.HealthRepo, observers ...UseCaseObserver) ForecastService {
	return &forecastService{
		health:   health,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *forecastService) Simulate(ctx context.Context, req contract.SimulateRequest) (resp *contract.SimulateResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "simulate-habits",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields: map[string]any{
				"target_sleep": req.TargetSleep,
				"target_steps": req.TargetSteps,
			},
		})
	}()

	if err = validateSimulateRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	scenario, err := s.resolveScenario(ctx, req, now)
	if err != nil {
		return nil, err
	}

	points := forecast.SimulateHabits(scenario, now, req.Days)
	feasibility := forecast.AssessFeasibility(
		scenario.TargetSleep, scenario.TargetSteps,
		scenario.BaselineSleep, scenario.BaselineSteps,
	)
	confidence, err := s.assessConfidence(ctx, now)
	if err != nil {
		return nil, err
	}

	currentEnergy := forecast.PredictedEnergy(scenario.BaselineSleep, scenario.BaselineSteps)
	targetEnergy := forecast.PredictedEnergy(scenario.TargetSleep, scenario.TargetSteps)
	insight := forecast.PredictionInsight(
		currentEnergy, targetEnergy,
		scenario.TargetSleep-scenario.BaselineSleep,
		scenario.TargetSteps-scenario.BaselineSteps,
	)
	avatar := forecast.InferAvatarDecision(scenario.TargetSleep, targetEnergy)

	return &contract.SimulateResponse{
		Scenario:       scenario,
		Start:          now,
		Points:         points,
		Feasibility:    feasibility,
		DataConfidence: confidence,
		Insight:        insight,
		Avatar:         avatar,
	}, nil
}

// resolveScenario fills in missing baseline habits from the recent history.
// An explicit baseline in the request always wins, zero included; with no
// history and no explicit baseline the target doubles as the baseline, which
// makes the simulation a flat line rather than an error.
func (s *forecastService) resolveScenario(ctx context.Context, req contract.SimulateRequest, now time.Time) (forecast.Scenario, error) {
	scenario := forecast.Scenario{
		TargetSleep: req.TargetSleep,
		TargetSteps: req.TargetSteps,
	}
	haveSleep := req.BaselineSleep != nil
	haveSteps := req.BaselineSteps != nil
	if haveSleep {
		scenario.BaselineSleep = *req.BaselineSleep
	}
	if haveSteps {
		scenario.BaselineSteps = *req.BaselineSteps
	}
	if haveSleep && haveSteps {
		return fillMissingTargets(scenario), nil
	}

	end := now.Format(domain.DateFormat)
	start := now.AddDate(0, 0, -(forecast.DefaultConfidenceWindowDays - 1)).Format(domain.DateFormat)
	samples, err := s.health.ListRange(ctx, start, end)
	if err != nil {
		return forecast.Scenario{}, fmt.Errorf("loading baseline history: %w", err)
	}

	if len(samples) > 0 {
		var sleepSum float64
		var stepsSum int
		for _, sample := range samples {
			sleepSum += sample.SleepHours
			stepsSum += sample.Steps
		}
		if !haveSleep {
			scenario.BaselineSleep = sleepSum / float64(len(samples))
			haveSleep = scenario.BaselineSleep > 0
		}
		if !haveSteps {
			scenario.BaselineSteps = stepsSum / len(samples)
			haveSteps = scenario.BaselineSteps > 0
		}
	}

	if !haveSleep {
		scenario.BaselineSleep = scenario.TargetSleep
	}
	if !haveSteps {
		scenario.BaselineSteps = scenario.TargetSteps
	}
	return fillMissingTargets(scenario), nil
}

// fillMissingTargets holds any habit left out of the scenario at its
// current level.
func fillMissingTargets(scenario forecast.Scenario) forecast.Scenario {
	if scenario.TargetSleep <= 0 {
		scenario.TargetSleep = scenario.BaselineSleep
	}
	if scenario.TargetSteps <= 0 {
		scenario.TargetSteps = scenario.BaselineSteps
	}
	return scenario
}

func (s *forecastService) assessConfidence(ctx context.Context, now time.Time) (forecast.DataConfidenceAssessment, error) {
	end := now.Format(domain.DateFormat)
	start := now.AddDate(0, 0, -(forecast.DefaultConfidenceWindowDays - 1)).Format(domain.DateFormat)

	logged, err := s.health.CountLoggedDays(ctx, start, end)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logged = 0
		} else {
			return forecast.DataConfidenceAssessment{}, fmt.Errorf("counting logged days: %w", err)
		}
	}
	return forecast.AssessDataConfidence(logged, forecast.DefaultConfidenceWindowDays), nil
}

func validateSimulateRequest(req contract.SimulateRequest) error {
	if req.TargetSleep < 0 || (req.BaselineSleep != nil && *req.BaselineSleep < 0) {
		return &contract.SimulateError{
			Code:    contract.SimulateErrInvalidScenario,
			Message: "sleep hours must be non-negative",
		}
	}
	if req.TargetSleep > 24 {
		return &contract.SimulateError{
			Code:    contract.SimulateErrInvalidScenario,
			Message: fmt.Sprintf("target sleep %.1fh exceeds 24", req.TargetSleep),
		}
	}
	if req.TargetSteps < 0 || (req.BaselineSteps != nil && *req.BaselineSteps < 0) {
		return &contract.SimulateError{
			Code:    contract.SimulateErrInvalidScenario,
			Message: "steps must be non-negative",
		}
	}
	if req.Days < 0 || req.Days > maxSimulationDays {
		return &contract.SimulateError{
			Code:    contract.SimulateErrInvalidHorizon,
			Message: fmt.Sprintf("days must be between 1 and %d", maxSimulationDays),
		}
	}
	return nil
}
