package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/vital/internal/analytics"
	"github.com/alexanderramin/vital/internal/contract"
	"github.com/alexanderramin/vital/internal/domain"
	"github.com/alexanderramin/vital/internal/repository"
)

type entryService struct {
	health   repository.HealthRepo
	moods    repository.MoodRepo
	profiles repository.ProfileRepo
	observer UseCaseObserver
}

func NewEntryService(
	health repository.HealthRepo,
	moods repository.MoodRepo,
	profiles repository.ProfileRepo,
	observers ...UseCaseObserver,
) EntryService {
	return &entryService{
		health:   health,
		moods:    moods,
		profiles: profiles,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *entryService) LogHealth(ctx context.Context, sample *domain.HealthSample) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "log-health",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"date": sample.Date},
		})
	}()

	sample.Normalize()
	if err = sample.Validate(); err != nil {
		return &contract.EntryError{Code: contract.EntryErrInvalidDate, Message: err.Error()}
	}

	now := time.Now().UTC()
	if sample.ID == "" {
		sample.ID = uuid.New().String()
	}
	if sample.CreatedAt.IsZero() {
		sample.CreatedAt = now
	}
	sample.UpdatedAt = now

	if err = s.health.Upsert(ctx, sample); err != nil {
		return fmt.Errorf("logging health sample: %w", err)
	}
	return nil
}

func (s *entryService) LogMood(ctx context.Context, sample *domain.MoodSample) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "log-mood",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"date": sample.Date, "mood": string(sample.Value)},
		})
	}()

	if dateErr := domain.ValidateDate(sample.Date); dateErr != nil {
		err = &contract.EntryError{Code: contract.EntryErrInvalidDate, Message: dateErr.Error()}
		return err
	}
	if _, moodErr := domain.ParseMoodValue(string(sample.Value)); moodErr != nil {
		err = &contract.EntryError{Code: contract.EntryErrInvalidMood, Message: moodErr.Error()}
		return err
	}

	if sample.ID == "" {
		sample.ID = uuid.New().String()
	}
	if sample.CreatedAt.IsZero() {
		sample.CreatedAt = time.Now().UTC()
	}

	if err = s.moods.Create(ctx, sample); err != nil {
		return fmt.Errorf("logging mood sample: %w", err)
	}
	return nil
}

// GetDay loads whatever was logged for a date. A day holds the health row,
// if any, and the newest of the day's mood entries. A fully empty day is
// EntryErrNotFound.
func (s *entryService) GetDay(ctx context.Context, date string) (*analytics.DayEntry, error) {
	if err := domain.ValidateDate(date); err != nil {
		return nil, &contract.EntryError{Code: contract.EntryErrInvalidDate, Message: err.Error()}
	}

	entry := analytics.DayEntry{Date: date}

	health, err := s.health.GetByDate(ctx, date)
	switch {
	case err == nil:
		entry.Health = health
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("loading health sample: %w", err)
	}

	mood, err := s.moods.LatestByDate(ctx, date)
	switch {
	case err == nil:
		entry.Mood = mood
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("loading mood sample: %w", err)
	}

	if entry.Health == nil && entry.Mood == nil {
		return nil, &contract.EntryError{
			Code:    contract.EntryErrNotFound,
			Message: fmt.Sprintf("nothing logged on %s", date),
		}
	}
	return &entry, nil
}

// ListEntries returns one DayEntry per date in [start, end], including days
// with nothing logged. Callers render gaps; aggregation skips them.
func (s *entryService) ListEntries(ctx context.Context, start, end string) ([]analytics.DayEntry, error) {
	if err := domain.ValidateDate(start); err != nil {
		return nil, &contract.EntryError{Code: contract.EntryErrInvalidDate, Message: err.Error()}
	}
	if err := domain.ValidateDate(end); err != nil {
		return nil, &contract.EntryError{Code: contract.EntryErrInvalidDate, Message: err.Error()}
	}
	if start > end {
		return nil, &contract.EntryError{
			Code:    contract.EntryErrInvalidValue,
			Message: fmt.Sprintf("start %s is after end %s", start, end),
		}
	}

	healthSamples, err := s.health.ListRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("loading health samples: %w", err)
	}
	moodSamples, err := s.moods.ListRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("loading mood samples: %w", err)
	}

	return assembleDayEntries(start, end, healthSamples, moodSamples)
}

func (s *entryService) SetUserName(ctx context.Context, name string) error {
	if err := s.profiles.Upsert(ctx, &domain.UserProfile{Name: name}); err != nil {
		return fmt.Errorf("saving user name: %w", err)
	}
	return nil
}

// assembleDayEntries merges the two sample streams into per-day entries over
// the inclusive date range. When a day has several mood entries, the newest
// created one wins.
func assembleDayEntries(start, end string, health []*domain.HealthSample, moods []*domain.MoodSample) ([]analytics.DayEntry, error) {
	startDay, err := time.Parse(domain.DateFormat, start)
	if err != nil {
		return nil, fmt.Errorf("parsing range start: %w", err)
	}
	endDay, err := time.Parse(domain.DateFormat, end)
	if err != nil {
		return nil, fmt.Errorf("parsing range end: %w", err)
	}

	healthByDate := make(map[string]*domain.HealthSample, len(health))
	for _, h := range health {
		healthByDate[h.Date] = h
	}
	moodByDate := make(map[string]*domain.MoodSample, len(moods))
	for _, m := range moods {
		current, ok := moodByDate[m.Date]
		if !ok || m.CreatedAt.After(current.CreatedAt) {
			moodByDate[m.Date] = m
		}
	}

	var entries []analytics.DayEntry
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		date := day.Format(domain.DateFormat)
		entries = append(entries, analytics.DayEntry{
			Date:   date,
			Health: healthByDate[date],
			Mood:   moodByDate[date],
		})
	}
	return entries, nil
}
