package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/vital/internal/domain"
)

// Health sample options
type HealthOption func(*domain.HealthSample)

func WithSteps(steps int) HealthOption {
	return func(s *domain.HealthSample) {
		s.Steps = steps
	}
}

func WithSleepHours(hours float64) HealthOption {
	return func(s *domain.HealthSample) {
		s.SleepHours = hours
	}
}

func WithHeartRate(bpm int) HealthOption {
	return func(s *domain.HealthSample) {
		s.HeartRate = &bpm
	}
}

func WithWaterLitres(litres float64) HealthOption {
	return func(s *domain.HealthSample) {
		s.WaterLitres = &litres
	}
}

// NewHealthSample builds a plausible logged day for the given date. Defaults
// are a middling day: 7h sleep and 6000 steps.
func NewHealthSample(date string, opts ...HealthOption) *domain.HealthSample {
	now := time.Now().UTC()
	s := &domain.HealthSample{
		ID:         uuid.New().String(),
		Date:       date,
		Steps:      6000,
		SleepHours: 7,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mood sample options
type MoodOption func(*domain.MoodSample)

func WithDiary(text string) MoodOption {
	return func(m *domain.MoodSample) {
		m.DiaryText = text
	}
}

func WithStress(level int) MoodOption {
	return func(m *domain.MoodSample) {
		m.StressLevel = &level
	}
}

func WithCreatedAt(at time.Time) MoodOption {
	return func(m *domain.MoodSample) {
		m.CreatedAt = at
	}
}

// NewMoodSample builds a mood entry for the given date and value.
func NewMoodSample(date string, value domain.MoodValue, opts ...MoodOption) *domain.MoodSample {
	m := &domain.MoodSample{
		ID:        uuid.New().String(),
		Date:      date,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
