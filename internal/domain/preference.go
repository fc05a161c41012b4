package domain

import "time"

// Preference is a persisted user setting such as the theme flag.
type Preference struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
