package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Config holds all configuration options for the kanban board
type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	Board       BoardConfig       `yaml:"board"`
	Display     DisplayConfig     `yaml:"display"`
	Logging     LoggingConfig     `yaml:"logging"`
	Application ApplicationConfig `yaml:"application"`
	Commands    CommandsConfig    `yaml:"commands"`
}

// DatabaseConfig holds settings database configuration
type DatabaseConfig struct {
	Dir            string        `yaml:"dir" env:"KB_DB_DIR"`
	Filename       string        `yaml:"filename" env:"KB_DB_FILENAME"`
	QueryTimeout   time.Duration `yaml:"query_timeout" env:"KB_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"KB_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `yaml:"dir_permissions" env:"KB_DB_DIR_PERMISSIONS"`
}

// BoardConfig holds board behaviour configuration
type BoardConfig struct {
	ContentMaxLength int    `yaml:"content_max_length" env:"KB_BOARD_CONTENT_MAX"`
	IDPrefix         string `yaml:"id_prefix" env:"KB_BOARD_ID_PREFIX"`
	Seed             bool   `yaml:"seed" env:"KB_BOARD_SEED"`
}

// DisplayConfig holds rendering configuration
type DisplayConfig struct {
	Theme       string `yaml:"theme" env:"KB_DISPLAY_THEME"`
	ColumnWidth int    `yaml:"column_width" env:"KB_DISPLAY_COLUMN_WIDTH"`
	Plain       bool   `yaml:"plain" env:"KB_DISPLAY_PLAIN"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level string `yaml:"level" env:"KB_LOG_LEVEL"`
	File  string `yaml:"file" env:"KB_LOG_FILE"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"KB_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"KB_APP_VERBOSE"`
}

// CommandsConfig holds command-specific defaults
type CommandsConfig struct {
	ExportDefaultFormat string `yaml:"export_default_format" env:"KB_EXPORT_DEFAULT_FORMAT"`
}

// DefaultDir returns ~/.kb, falling back to the working directory.
func DefaultDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".kb"
	}
	return filepath.Join(homeDir, ".kb")
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Dir:            DefaultDir(),
			Filename:       "kb.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Board: BoardConfig{
			ContentMaxLength: 500,
			IDPrefix:         "task-",
			Seed:             true,
		},
		Display: DisplayConfig{
			Theme:       "dark",
			ColumnWidth: 32,
			Plain:       false,
		},
		Logging: LoggingConfig{
			Level: "warn",
			File:  "",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
		Commands: CommandsConfig{
			ExportDefaultFormat: "json",
		},
	}
}

// GetDatabasePath returns the full path to the settings database file
func (c *Config) GetDatabasePath() string {
	if c.Database.Filename == ":memory:" {
		return c.Database.Filename
	}
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values are ignored and the previous value is kept.
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("KB_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("KB_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("KB_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(timeout, c.Database.QueryTimeout)
	}
	if timeout := os.Getenv("KB_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Database.WriteTimeout = ParseDurationWithFallback(timeout, c.Database.WriteTimeout)
	}
	if perms := os.Getenv("KB_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	// Board configuration
	if maxLen := os.Getenv("KB_BOARD_CONTENT_MAX"); maxLen != "" {
		c.Board.ContentMaxLength = ParseIntWithFallback(maxLen, c.Board.ContentMaxLength)
	}
	if prefix := os.Getenv("KB_BOARD_ID_PREFIX"); prefix != "" {
		c.Board.IDPrefix = prefix
	}
	if seed := os.Getenv("KB_BOARD_SEED"); seed != "" {
		c.Board.Seed = ParseBoolWithFallback(seed, c.Board.Seed)
	}

	// Display configuration
	if theme := os.Getenv("KB_DISPLAY_THEME"); theme != "" {
		c.Display.Theme = theme
	}
	if width := os.Getenv("KB_DISPLAY_COLUMN_WIDTH"); width != "" {
		c.Display.ColumnWidth = ParseIntWithFallback(width, c.Display.ColumnWidth)
	}
	if plain := os.Getenv("KB_DISPLAY_PLAIN"); plain != "" {
		c.Display.Plain = ParseBoolWithFallback(plain, c.Display.Plain)
	}

	// Logging configuration
	if level := os.Getenv("KB_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if file := os.Getenv("KB_LOG_FILE"); file != "" {
		c.Logging.File = file
	}

	// Application configuration
	if timeout := os.Getenv("KB_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("KB_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	// Commands configuration
	if format := os.Getenv("KB_EXPORT_DEFAULT_FORMAT"); format != "" {
		c.Commands.ExportDefaultFormat = format
	}

	return nil
}

// Validate validates the configuration and returns the first problem found
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Board.ContentMaxLength < 1 {
		return &ConfigError{Field: "board.content_max_length", Message: "content maximum length must be at least 1"}
	}
	if c.Board.IDPrefix == "" {
		return &ConfigError{Field: "board.id_prefix", Message: "task id prefix cannot be empty"}
	}

	if c.Display.Theme != "light" && c.Display.Theme != "dark" {
		return &ConfigError{Field: "display.theme", Message: "theme must be light or dark"}
	}
	if c.Display.ColumnWidth < 12 {
		return &ConfigError{Field: "display.column_width", Message: "column width must be at least 12"}
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return &ConfigError{Field: "logging.level", Message: "unknown log level " + strconv.Quote(c.Logging.Level)}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	switch c.Commands.ExportDefaultFormat {
	case "csv", "json":
	default:
		return &ConfigError{Field: "commands.export_default_format", Message: "export format must be csv or json"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
