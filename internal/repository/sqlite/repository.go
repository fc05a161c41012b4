package sqlite

import (
	"context"
	"database/sql"
	"time"

	"kanban/internal/errors"
	"kanban/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the settings database operations
type Repository interface {
	GetSetting(ctx context.Context, key string) (*Setting, error)
	ListSettings(ctx context.Context) ([]*Setting, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error

	Close() error
}

// Options tunes the per-call deadlines applied by the repository
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// DefaultOptions matches the configuration defaults
var DefaultOptions = Options{
	QueryTimeout: 10 * time.Second,
	WriteTimeout: 5 * time.Second,
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db      *sql.DB
	options Options
	now     func() time.Time
}

// New creates a new SQLite repository instance with default options
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, DefaultOptions)
}

// NewWithOptions opens dbPath, runs pending migrations and returns the repository
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// every connection to :memory: is a separate database
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = DefaultOptions.QueryTimeout
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = DefaultOptions.WriteTimeout
	}

	return &SQLiteRepository{db: db, options: opts, now: time.Now}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// GetSetting retrieves a setting by key
func (r *SQLiteRepository) GetSetting(ctx context.Context, key string) (*Setting, error) {
	ctx, cancel := context.WithTimeout(ctx, r.options.QueryTimeout)
	defer cancel()

	query := `SELECT key, value, updated_at FROM settings WHERE key = ?`
	return QuerySingle(ctx, r.db, query, ScanSetting, "setting", key, key)
}

// ListSettings retrieves all settings ordered by key
func (r *SQLiteRepository) ListSettings(ctx context.Context) ([]*Setting, error) {
	ctx, cancel := context.WithTimeout(ctx, r.options.QueryTimeout)
	defer cancel()

	query := `SELECT key, value, updated_at FROM settings ORDER BY key ASC`
	return QueryMultiple(ctx, r.db, query, ScanSettings, "settings")
}

// SetSetting inserts or replaces a setting
func (r *SQLiteRepository) SetSetting(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.NewInvalidInputError("key", key, "setting key cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, r.options.WriteTimeout)
	defer cancel()

	query := `
	INSERT INTO settings (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	return Execute(ctx, r.db, "upsert setting", query, key, value, FormatTimeForDB(r.now()))
}

// DeleteSetting deletes a setting by key
func (r *SQLiteRepository) DeleteSetting(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, r.options.WriteTimeout)
	defer cancel()

	query := `DELETE FROM settings WHERE key = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "setting", key, key)
}
