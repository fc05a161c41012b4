package migrations

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

func init() {
	RegisterGoMigration(2, Up_000002_normalize_theme_setting, Down_000002_normalize_theme_setting)
}

// Up_000002_normalize_theme_setting lowercases and trims the stored theme
// flag. Values other than light or dark are removed so the default applies.
func Up_000002_normalize_theme_setting(tx *sql.Tx) error {
	var value string
	err := tx.QueryRow("SELECT value FROM settings WHERE key = 'theme'").Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read theme setting: %w", err)
	}

	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "light", "dark":
		if normalized == value {
			return nil
		}
		if _, err := tx.Exec("UPDATE settings SET value = ? WHERE key = 'theme'", normalized); err != nil {
			return fmt.Errorf("failed to update theme setting: %w", err)
		}
	default:
		if _, err := tx.Exec("DELETE FROM settings WHERE key = 'theme'"); err != nil {
			return fmt.Errorf("failed to remove invalid theme setting: %w", err)
		}
	}
	return nil
}

// Down_000002_normalize_theme_setting is a no-op; the original spelling is not kept.
func Down_000002_normalize_theme_setting(tx *sql.Tx) error {
	return nil
}
