package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/vital/internal/db"
	"github.com/alexanderramin/vital/internal/domain"
)

const healthColumns = `id, date, steps, sleep_hours, heart_rate, water_litres, created_at, updated_at`

// SQLiteHealthRepo implements HealthRepo using a SQLite database.
type SQLiteHealthRepo struct {
	db db.DBTX
}

// NewSQLiteHealthRepo creates a new SQLiteHealthRepo.
func NewSQLiteHealthRepo(conn db.DBTX) *SQLiteHealthRepo {
	return &SQLiteHealthRepo{db: conn}
}

// Upsert inserts the sample or, if a row for the same date already exists,
// replaces its measurements in place. The original row's id and created_at
// survive the replacement.
func (r *SQLiteHealthRepo) Upsert(ctx context.Context, s *domain.HealthSample) error {
	query := `INSERT INTO health_samples (id, date, steps, sleep_hours, heart_rate, water_litres, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			steps        = excluded.steps,
			sleep_hours  = excluded.sleep_hours,
			heart_rate   = excluded.heart_rate,
			water_litres = excluded.water_litres,
			updated_at   = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Date,
		s.Steps,
		s.SleepHours,
		nullableIntToValue(s.HeartRate),
		nullableFloatToValue(s.WaterLitres),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting health sample: %w", err)
	}
	return nil
}

func (r *SQLiteHealthRepo) GetByDate(ctx context.Context, date string) (*domain.HealthSample, error) {
	query := `SELECT ` + healthColumns + ` FROM health_samples WHERE date = ?`
	row := r.db.QueryRowContext(ctx, query, date)
	return r.scanSample(row)
}

func (r *SQLiteHealthRepo) ListRange(ctx context.Context, start, end string) ([]*domain.HealthSample, error) {
	query := `SELECT ` + healthColumns + ` FROM health_samples
		WHERE date >= ? AND date <= ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing health samples: %w", err)
	}
	defer rows.Close()
	return r.scanSamples(rows)
}

// CountLoggedDays counts distinct dates in [start, end] with either a health
// or a mood entry. It feeds the data confidence grade, which cares about
// coverage of any kind, not which kind.
func (r *SQLiteHealthRepo) CountLoggedDays(ctx context.Context, start, end string) (int, error) {
	query := `SELECT COUNT(*) FROM (
		SELECT date FROM health_samples WHERE date >= ? AND date <= ?
		UNION
		SELECT date FROM mood_samples WHERE date >= ? AND date <= ?
	)`
	var count int
	if err := r.db.QueryRowContext(ctx, query, start, end, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting logged days: %w", err)
	}
	return count, nil
}

func (r *SQLiteHealthRepo) scanSample(row *sql.Row) (*domain.HealthSample, error) {
	var (
		s          domain.HealthSample
		heartRate  sql.NullInt64
		water      sql.NullFloat64
		createdAt  string
		updatedAt  string
	)
	err := row.Scan(&s.ID, &s.Date, &s.Steps, &s.SleepHours, &heartRate, &water, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("health sample: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning health sample: %w", err)
	}
	s.HeartRate = intFromNull(heartRate)
	s.WaterLitres = floatFromNull(water)
	s.CreatedAt = parseStoredTime(createdAt)
	s.UpdatedAt = parseStoredTime(updatedAt)
	return &s, nil
}

func (r *SQLiteHealthRepo) scanSamples(rows *sql.Rows) ([]*domain.HealthSample, error) {
	var samples []*domain.HealthSample
	for rows.Next() {
		var (
			s         domain.HealthSample
			heartRate sql.NullInt64
			water     sql.NullFloat64
			createdAt string
			updatedAt string
		)
		if err := rows.Scan(&s.ID, &s.Date, &s.Steps, &s.SleepHours, &heartRate, &water, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning health sample: %w", err)
		}
		s.HeartRate = intFromNull(heartRate)
		s.WaterLitres = floatFromNull(water)
		s.CreatedAt = parseStoredTime(createdAt)
		s.UpdatedAt = parseStoredTime(updatedAt)
		samples = append(samples, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating health samples: %w", err)
	}
	return samples, nil
}
