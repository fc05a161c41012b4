package domain

import (
	"kanban/internal/repository/sqlite"
)

// PreferenceMapper handles conversion between domain and database preference models.
type PreferenceMapper struct{}

// NewPreferenceMapper creates a new PreferenceMapper instance.
func NewPreferenceMapper() *PreferenceMapper {
	return &PreferenceMapper{}
}

// FromDatabase converts a database Setting to a domain Preference.
func (m *PreferenceMapper) FromDatabase(s sqlite.Setting) Preference {
	return Preference{
		Key:       s.Key,
		Value:     s.Value,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDatabaseSlice converts database Settings to domain Preferences.
func (m *PreferenceMapper) FromDatabaseSlice(settings []*sqlite.Setting) []Preference {
	prefs := make([]Preference, len(settings))
	for i, s := range settings {
		prefs[i] = m.FromDatabase(*s)
	}
	return prefs
}

// Mapper provides access to all domain mappers.
type Mapper struct {
	Preference *PreferenceMapper
}

// NewMapper creates a new Mapper with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Preference: NewPreferenceMapper(),
	}
}
