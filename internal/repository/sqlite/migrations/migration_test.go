package migrations

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations_CreatesSettingsTable(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, RunMigrations(db))

	_, err := db.Exec("INSERT INTO settings (key, value) VALUES ('theme', 'dark')")
	require.NoError(t, err)

	applied, err := getAppliedMigrations(db)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 2: true}, applied)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestNormalizeThemeMigration(t *testing.T) {
	tests := []struct {
		name      string
		stored    string
		wantValue string
		wantRow   bool
	}{
		{name: "already normalized", stored: "light", wantValue: "light", wantRow: true},
		{name: "mixed case with spaces", stored: "  Dark ", wantValue: "dark", wantRow: true},
		{name: "unknown value removed", stored: "solarized", wantRow: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := openTestDB(t)
			_, err := db.Exec(`CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TEXT)`)
			require.NoError(t, err)
			_, err = db.Exec("INSERT INTO settings (key, value) VALUES ('theme', ?)", tt.stored)
			require.NoError(t, err)

			tx, err := db.Begin()
			require.NoError(t, err)
			require.NoError(t, Up_000002_normalize_theme_setting(tx))
			require.NoError(t, tx.Commit())

			var value string
			err = db.QueryRow("SELECT value FROM settings WHERE key = 'theme'").Scan(&value)
			if !tt.wantRow {
				assert.ErrorIs(t, err, sql.ErrNoRows)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestNormalizeThemeMigration_NoSetting(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TEXT)`)
	require.NoError(t, err)

	tx, err := db.Begin()
	require.NoError(t, err)
	defer tx.Rollback()

	assert.NoError(t, Up_000002_normalize_theme_setting(tx))
}

func TestRunMigrations_DirtyDatabase(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`
		CREATE TABLE migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			dirty BOOLEAN DEFAULT FALSE
		)
	`)
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO migrations (version, dirty) VALUES (1, TRUE)")
	require.NoError(t, err)

	err = RunMigrations(db)
	require.Error(t, err)

	if !strings.Contains(err.Error(), "database is in a dirty state") {
		t.Errorf("expected error to mention dirty state, got: %v", err)
	}
	if !strings.Contains(err.Error(), "failed migration(s): [1]") {
		t.Errorf("expected error to mention failed migration version 1, got: %v", err)
	}
}

func TestApplyMigration_FailureMarksDirty(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, createMigrationsTable(db))

	err := applyMigration(db, Migration{Version: 99, Up: "THIS IS NOT SQL"})
	require.Error(t, err)
	markDirty(db, 99)

	err = RunMigrations(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed migration(s): [99]")
}

func TestExtractVersion(t *testing.T) {
	assert.Equal(t, 1, extractVersion("000001_create_settings.up.sql"))
	assert.Equal(t, 12, extractVersion("000012_x.up.sql"))
	assert.Equal(t, 0, extractVersion("readme.sql"))
}
