package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS health_samples (
		id           TEXT PRIMARY KEY,
		date         TEXT NOT NULL UNIQUE,
		steps        INTEGER NOT NULL DEFAULT 0 CHECK(steps >= 0),
		sleep_hours  REAL NOT NULL DEFAULT 0 CHECK(sleep_hours >= 0),
		heart_rate   INTEGER,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_health_samples_date ON health_samples(date)`,

	// Added after the initial schema shipped.
	`ALTER TABLE health_samples ADD COLUMN water_litres REAL`,

	`CREATE TABLE IF NOT EXISTS mood_samples (
		id           TEXT PRIMARY KEY,
		date         TEXT NOT NULL,
		value        TEXT NOT NULL
		             CHECK(value IN ('great','good','okay','low','bad')),
		diary_text   TEXT NOT NULL DEFAULT '',
		stress_level INTEGER,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_mood_samples_date ON mood_samples(date)`,
	`CREATE INDEX IF NOT EXISTS idx_mood_samples_created ON mood_samples(created_at)`,

	`CREATE TABLE IF NOT EXISTS user_profile (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL
	)`,

	`INSERT OR IGNORE INTO user_profile (id, name, updated_at)
		VALUES ('default', '', strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))`,
}
