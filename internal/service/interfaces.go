package service

import (
	"context"

	"github.com/alexanderramin/vital/internal/analytics"
	"github.com/alexanderramin/vital/internal/contract"
	"github.com/alexanderramin/vital/internal/domain"
)

type EntryService interface {
	LogHealth(ctx context.Context, s *domain.HealthSample) error
	LogMood(ctx context.Context, m *domain.MoodSample) error
	GetDay(ctx context.Context, date string) (*analytics.DayEntry, error)
	ListEntries(ctx context.Context, start, end string) ([]analytics.DayEntry, error)
	SetUserName(ctx context.Context, name string) error
}

type AnalyticsService interface {
	GenerateWeeklyAnalytics(ctx context.Context, req contract.WeeklyRequest) (*contract.WeeklyResponse, error)
	GenerateWeeklyStory(ctx context.Context, req contract.WeeklyRequest) (*contract.StoryResponse, error)
}

type ForecastService interface {
	Simulate(ctx context.Context, req contract.SimulateRequest) (*contract.SimulateResponse, error)
}
