package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFileEnvVar points the loader at an explicit config file.
const ConfigFileEnvVar = "KB_CONFIG"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config   *Config
	filePath string
}

// NewLoader creates a new configuration loader using the default config file location
func NewLoader() *Loader {
	path := os.Getenv(ConfigFileEnvVar)
	if path == "" {
		path = filepath.Join(DefaultDir(), "config.yaml")
	}
	return NewLoaderWithFile(path)
}

// NewLoaderWithFile creates a loader reading the given YAML file. An empty
// path disables the file layer.
func NewLoaderWithFile(path string) *Loader {
	return &Loader{
		config:   NewConfig(),
		filePath: path,
	}
}

// FilePath returns the config file this loader reads
func (l *Loader) FilePath() string {
	return l.filePath
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file, if present
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if err := l.loadFromFile(); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// loadFromFile decodes the config file over the defaults. A missing file is not an error.
func (l *Loader) loadFromFile() error {
	if l.filePath == "" {
		return nil
	}

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", l.filePath, err)
	}

	if err := yaml.Unmarshal(data, l.config); err != nil {
		return fmt.Errorf("parse config file %s: %w", l.filePath, err)
	}
	return nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.Apply(config)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides. Nil fields are left alone.
type ConfigOverrides struct {
	DBDir          *string
	DBFilename     *string
	DBQueryTimeout *time.Duration
	DBWriteTimeout *time.Duration

	ContentMaxLength *int
	Seed             *bool

	Theme       *string
	ColumnWidth *int
	Plain       *bool

	LogLevel *string
	LogFile  *string

	Timeout *time.Duration
	Verbose *bool

	ExportDefaultFormat *string
}

// Apply copies every set override into config
func (o *ConfigOverrides) Apply(config *Config) {
	if o.DBDir != nil {
		config.Database.Dir = *o.DBDir
	}
	if o.DBFilename != nil {
		config.Database.Filename = *o.DBFilename
	}
	if o.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *o.DBQueryTimeout
	}
	if o.DBWriteTimeout != nil {
		config.Database.WriteTimeout = *o.DBWriteTimeout
	}

	if o.ContentMaxLength != nil {
		config.Board.ContentMaxLength = *o.ContentMaxLength
	}
	if o.Seed != nil {
		config.Board.Seed = *o.Seed
	}

	if o.Theme != nil {
		config.Display.Theme = *o.Theme
	}
	if o.ColumnWidth != nil {
		config.Display.ColumnWidth = *o.ColumnWidth
	}
	if o.Plain != nil {
		config.Display.Plain = *o.Plain
	}

	if o.LogLevel != nil {
		config.Logging.Level = *o.LogLevel
	}
	if o.LogFile != nil {
		config.Logging.File = *o.LogFile
	}

	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}

	if o.ExportDefaultFormat != nil {
		config.Commands.ExportDefaultFormat = *o.ExportDefaultFormat
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
