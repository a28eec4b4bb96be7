package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/vital/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row. Callers test for it
// with errors.Is.
var ErrNotFound = errors.New("not found")

type HealthRepo interface {
	Upsert(ctx context.Context, s *domain.HealthSample) error
	GetByDate(ctx context.Context, date string) (*domain.HealthSample, error)
	ListRange(ctx context.Context, start, end string) ([]*domain.HealthSample, error)
	CountLoggedDays(ctx context.Context, start, end string) (int, error)
}

type MoodRepo interface {
	Create(ctx context.Context, m *domain.MoodSample) error
	LatestByDate(ctx context.Context, date string) (*domain.MoodSample, error)
	ListRange(ctx context.Context, start, end string) ([]*domain.MoodSample, error)
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}
