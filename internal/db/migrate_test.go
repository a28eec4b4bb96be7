package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time, should succeed without error.
	err := Migrate(db)
	require.NoError(t, err)

	// Third time for good measure.
	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"health_samples", "mood_samples", "user_profile"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_health_samples_date",
		"idx_mood_samples_date",
		"idx_mood_samples_created",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_SeedsDefaultProfile(t *testing.T) {
	db := openTestDB(t)

	var id, name string
	err := db.QueryRow(`SELECT id, name FROM user_profile WHERE id = 'default'`).Scan(&id, &name)
	require.NoError(t, err)
	assert.Equal(t, "default", id)
	assert.Empty(t, name)
}

func TestMigrate_RejectsUnknownMoodValue(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO mood_samples (id, date, value, created_at)
		VALUES ('m1', '2025-06-01', 'ecstatic', '2025-06-01T08:00:00Z')`)
	assert.Error(t, err)
}

func TestMigrate_EnforcesOneHealthRowPerDate(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO health_samples (id, date, steps, sleep_hours, created_at, updated_at)
		VALUES ('h1', '2025-06-01', 5000, 7.5, '2025-06-01T08:00:00Z', '2025-06-01T08:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO health_samples (id, date, steps, sleep_hours, created_at, updated_at)
		VALUES ('h2', '2025-06-01', 6000, 8, '2025-06-01T09:00:00Z', '2025-06-01T09:00:00Z')`)
	assert.Error(t, err, "plain second insert for the same date must hit the UNIQUE constraint")
}
