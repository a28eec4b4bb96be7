package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/vital/internal/analytics"
	"github.com/alexanderramin/vital/internal/contract"
	"github.com/alexanderramin/vital/internal/domain"
	"github.com/alexanderramin/vital/internal/narrative"
	"github.com/alexanderramin/vital/internal/repository"
)

// fallbackUserName addresses the reader when no profile name is stored.
const fallbackUserName = "friend"

type analyticsService struct {
	entries  EntryService
	profiles repository.ProfileRepo
	engine   *narrative.Engine
	observer UseCaseObserver
}

func NewAnalyticsService(
	entries EntryService,
	profiles repository.ProfileRepo,
	engine *narrative.Engine,
	observers ...UseCaseObserver,
) AnalyticsService {
	if engine == nil {
		engine = narrative.NewEngine()
	}
	return &analyticsService{
		entries:  entries,
		profiles: profiles,
		engine:   engine,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *analyticsService) GenerateWeeklyAnalytics(ctx context.Context, req contract.WeeklyRequest) (resp *contract.WeeklyResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "weekly-analytics",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	weekly, err := s.buildWeekly(ctx, req)
	if err != nil {
		return nil, err
	}

	name, err := s.resolveUserName(ctx, req.UserName)
	if err != nil {
		return nil, err
	}

	return &contract.WeeklyResponse{
		Analytics:  weekly,
		Highlights: s.habitHighlights(weekly, name),
	}, nil
}

// habitHighlights draws the sleep and activity narrative lines shown on the
// weekly dashboard. A category with no applicable template contributes
// nothing.
func (s *analyticsService) habitHighlights(weekly *analytics.WeeklyAnalytics, name string) []string {
	var highlights []string
	for _, cat := range []narrative.Category{narrative.CategorySleep, narrative.CategoryActivity} {
		if line := s.engine.Section(cat, weekly, name); line != "" {
			highlights = append(highlights, line)
		}
	}
	return highlights
}

func (s *analyticsService) GenerateWeeklyStory(ctx context.Context, req contract.WeeklyRequest) (resp *contract.StoryResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "weekly-story",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	weekly, err := s.buildWeekly(ctx, req)
	if err != nil {
		return nil, err
	}

	name, err := s.resolveUserName(ctx, req.UserName)
	if err != nil {
		return nil, err
	}

	return &contract.StoryResponse{
		Story:     s.engine.GenerateStory(weekly, name),
		Analytics: weekly,
	}, nil
}

func (s *analyticsService) buildWeekly(ctx context.Context, req contract.WeeklyRequest) (*analytics.WeeklyAnalytics, error) {
	start, end, err := resolveWeekWindow(req)
	if err != nil {
		return nil, err
	}

	days, err := s.entries.ListEntries(ctx, start, end)
	if err != nil {
		return nil, err
	}

	weekly, err := analytics.BuildWeeklyAnalytics(days, start, end)
	if err != nil {
		return nil, &contract.WeeklyError{Code: contract.WeeklyErrDataIntegrity, Message: err.Error()}
	}
	return weekly, nil
}

func (s *analyticsService) resolveUserName(ctx context.Context, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fallbackUserName, nil
		}
		return "", fmt.Errorf("loading user profile: %w", err)
	}
	if profile.Name == "" {
		return fallbackUserName, nil
	}
	return profile.Name, nil
}

// resolveWeekWindow turns the request into an inclusive 7-day [start, end]
// range. With no explicit start the window is the 7 days ending today.
func resolveWeekWindow(req contract.WeeklyRequest) (start, end string, err error) {
	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	if req.Start == nil {
		endDay := now
		startDay := endDay.AddDate(0, 0, -6)
		return startDay.Format(domain.DateFormat), endDay.Format(domain.DateFormat), nil
	}

	startDay := *req.Start
	endDay := startDay.AddDate(0, 0, 6)
	if startDay.After(now) {
		return "", "", &contract.WeeklyError{
			Code:    contract.WeeklyErrInvalidRange,
			Message: fmt.Sprintf("week starting %s has not happened yet", startDay.Format(domain.DateFormat)),
		}
	}
	return startDay.Format(domain.DateFormat), endDay.Format(domain.DateFormat), nil
}
