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

const moodColumns = `id, date, value, diary_text, stress_level, created_at`

// SQLiteMoodRepo implements MoodRepo using a SQLite database.
type SQLiteMoodRepo struct {
	db db.DBTX
}

// NewSQLiteMoodRepo creates a new SQLiteMoodRepo.
func NewSQLiteMoodRepo(conn db.DBTX) *SQLiteMoodRepo {
	return &SQLiteMoodRepo{db: conn}
}

func (r *SQLiteMoodRepo) Create(ctx context.Context, m *domain.MoodSample) error {
	query := `INSERT INTO mood_samples (id, date, value, diary_text, stress_level, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.Date,
		string(m.Value),
		m.DiaryText,
		nullableIntToValue(m.StressLevel),
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting mood sample: %w", err)
	}
	return nil
}

// LatestByDate returns the most recently created mood entry for the date.
// A day can hold several entries; the newest one is the day's effective mood.
func (r *SQLiteMoodRepo) LatestByDate(ctx context.Context, date string) (*domain.MoodSample, error) {
	query := `SELECT ` + moodColumns + ` FROM mood_samples
		WHERE date = ? ORDER BY created_at DESC, id DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, date)
	return r.scanSample(row)
}

func (r *SQLiteMoodRepo) ListRange(ctx context.Context, start, end string) ([]*domain.MoodSample, error) {
	query := `SELECT ` + moodColumns + ` FROM mood_samples
		WHERE date >= ? AND date <= ? ORDER BY date, created_at`
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing mood samples: %w", err)
	}
	defer rows.Close()
	return r.scanSamples(rows)
}

func (r *SQLiteMoodRepo) scanSample(row *sql.Row) (*domain.MoodSample, error) {
	var (
		m         domain.MoodSample
		value     string
		stress    sql.NullInt64
		createdAt string
	)
	err := row.Scan(&m.ID, &m.Date, &value, &m.DiaryText, &stress, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("mood sample: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning mood sample: %w", err)
	}
	m.Value = domain.MoodValue(value)
	m.StressLevel = intFromNull(stress)
	m.CreatedAt = parseStoredTime(createdAt)
	return &m, nil
}

func (r *SQLiteMoodRepo) scanSamples(rows *sql.Rows) ([]*domain.MoodSample, error) {
	var samples []*domain.MoodSample
	for rows.Next() {
		var (
			m         domain.MoodSample
			value     string
			stress    sql.NullInt64
			createdAt string
		)
		if err := rows.Scan(&m.ID, &m.Date, &value, &m.DiaryText, &stress, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning mood sample: %w", err)
		}
		m.Value = domain.MoodValue(value)
		m.StressLevel = intFromNull(stress)
		m.CreatedAt = parseStoredTime(createdAt)
		samples = append(samples, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mood samples: %w", err)
	}
	return samples, nil
}
