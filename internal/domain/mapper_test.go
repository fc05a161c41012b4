package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kanban/internal/repository/sqlite"
)

func TestPreferenceMapper_FromDatabase(t *testing.T) {
	m := NewMapper()
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	pref := m.Preference.FromDatabase(sqlite.Setting{Key: "theme", Value: "light", UpdatedAt: at})

	assert.Equal(t, Preference{Key: "theme", Value: "light", UpdatedAt: at}, pref)
}

func TestPreferenceMapper_FromDatabaseSlice(t *testing.T) {
	m := NewPreferenceMapper()

	prefs := m.FromDatabaseSlice([]*sqlite.Setting{
		{Key: "a", Value: "1"},
		{Key: "theme", Value: "dark"},
	})

	assert.Len(t, prefs, 2)
	assert.Equal(t, "a", prefs[0].Key)
	assert.Equal(t, "dark", prefs[1].Value)
	assert.Empty(t, m.FromDatabaseSlice(nil))
}
