package theme

import (
	"context"

	"github.com/rs/zerolog"

	apperrors "kanban/internal/errors"
	"kanban/internal/repository/sqlite"
)

// SettingKey is the settings row holding the theme.
const SettingKey = "theme"

// Store persists the theme preference in the settings repository.
type Store struct {
	repo     sqlite.Repository
	fallback Theme
	logger   zerolog.Logger
}

// NewStore creates a Store. fallback is returned when nothing valid is
// stored; an empty fallback means Default.
func NewStore(repo sqlite.Repository, fallback Theme, logger zerolog.Logger) *Store {
	if fallback != Light && fallback != Dark {
		fallback = Default
	}
	return &Store{repo: repo, fallback: fallback, logger: logger}
}

// Load returns the stored theme. A missing or unreadable value yields the
// fallback; only repository failures are returned as errors.
func (s *Store) Load(ctx context.Context) (Theme, error) {
	setting, err := s.repo.GetSetting(ctx, SettingKey)
	if err != nil {
		if apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound) {
			return s.fallback, nil
		}
		return s.fallback, err
	}

	t, err := Parse(setting.Value)
	if err != nil {
		s.logger.Warn().Str("value", setting.Value).Msg("ignoring stored theme")
		return s.fallback, nil
	}
	return t, nil
}

// Save stores t.
func (s *Store) Save(ctx context.Context, t Theme) error {
	if _, err := Parse(string(t)); err != nil {
		return apperrors.NewBadThemeError(string(t), "must be light or dark")
	}
	if err := s.repo.SetSetting(ctx, SettingKey, t.String()); err != nil {
		return err
	}
	s.logger.Debug().Str("theme", t.String()).Msg("theme saved")
	return nil
}

// Toggle flips current and stores the result.
func (s *Store) Toggle(ctx context.Context, current Theme) (Theme, error) {
	next := current.Toggle()
	if err := s.Save(ctx, next); err != nil {
		return current, err
	}
	return next, nil
}

// Reset removes the stored theme and returns the fallback.
func (s *Store) Reset(ctx context.Context) (Theme, error) {
	err := s.repo.DeleteSetting(ctx, SettingKey)
	if err != nil && !apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound) {
		return s.fallback, err
	}
	s.logger.Debug().Str("theme", s.fallback.String()).Msg("theme reset")
	return s.fallback, nil
}

// Settings lists every persisted setting, the theme included.
func (s *Store) Settings(ctx context.Context) ([]*sqlite.Setting, error) {
	return s.repo.ListSettings(ctx)
}
