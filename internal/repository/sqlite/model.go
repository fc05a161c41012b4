package sqlite

import "time"

// Setting is one row of the settings table
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
