// Package logging builds the zerolog loggers used across kb.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// DebugEnvVar forces debug level when set to any non-empty value.
const DebugEnvVar = "KB_DEBUG"

// DebugEnabled returns true if debug mode is enabled via KB_DEBUG
func DebugEnabled() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// New returns a logger that writes JSON to the given file, or to stderr when
// file is empty. The returned closer releases the file.
//
// The level parameter can be one of: debug, info, warn, error, disabled.
func New(level string, file string) (zerolog.Logger, func(), error) {
	closer := func() {}

	if DebugEnabled() {
		level = zerolog.LevelDebugValue
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("parse log level %q: %w", level, err)
	}

	var writer io.Writer = os.Stderr
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
		}

		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("open log file: %w", err)
		}
		closer = func() { _ = f.Close() }
		writer = f
	}

	return NewWithWriter(writer, lvl), closer, nil
}

// NewWithWriter returns a timestamped logger writing to w at the given level.
func NewWithWriter(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		With().
		Timestamp().
		Logger().
		Level(lvl)
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
