package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/vital/internal/db"
	"github.com/alexanderramin/vital/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database. The
// profile is a single row keyed 'default', seeded by the migrations.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	query := `SELECT name, updated_at FROM user_profile WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var (
		p         domain.UserProfile
		updatedAt string
	)
	if err := row.Scan(&p.Name, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}
	p.UpdatedAt = parseStoredTime(updatedAt)
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	query := `INSERT INTO user_profile (id, name, updated_at)
		VALUES ('default', ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name       = excluded.name,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, p.Name, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}
