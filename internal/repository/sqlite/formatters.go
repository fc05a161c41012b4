package sqlite

import (
	"time"
)

// FormatTimeForDB formats a time as an RFC3339 UTC string for storage
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTimeFromDB parses a stored timestamp. SQLite's CURRENT_TIMESTAMP
// layout is accepted as well as RFC3339.
func ParseTimeFromDB(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateTime, s)
}
