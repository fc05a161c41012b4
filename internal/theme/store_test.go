package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "kanban/internal/errors"
	"kanban/internal/repository/sqlite"
)

func newStore(t *testing.T) (*Store, *sqlite.SQLiteRepository) {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return NewStore(repo, "", zerolog.Nop()), repo
}

func TestStore_LoadDefault(t *testing.T) {
	store, _ := newStore(t)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Dark, got)
}

func TestStore_SaveLoad(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, Light))
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Light, got)
}

func TestStore_UnknownStoredValueFallsBack(t *testing.T) {
	store, repo := newStore(t)
	ctx := context.Background()

	require.NoError(t, repo.SetSetting(ctx, SettingKey, "neon"))
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Dark, got)
}

func TestStore_ConfiguredFallback(t *testing.T) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	store := NewStore(repo, Light, zerolog.Nop())
	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Light, got)
}

func TestStore_TogglePersists(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	next, err := store.Toggle(ctx, Dark)
	require.NoError(t, err)
	assert.Equal(t, Light, next)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Light, loaded)

	next, err = store.Toggle(ctx, loaded)
	require.NoError(t, err)
	assert.Equal(t, Dark, next)
}

func TestStore_SaveRejectsUnknownTheme(t *testing.T) {
	store, _ := newStore(t)

	err := store.Save(context.Background(), Theme("neon"))
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))
}

// failingRepo returns err from every call.
type failingRepo struct {
	err error
}

func (f failingRepo) GetSetting(context.Context, string) (*sqlite.Setting, error) { return nil, f.err }
func (f failingRepo) ListSettings(context.Context) ([]*sqlite.Setting, error)     { return nil, f.err }
func (f failingRepo) SetSetting(context.Context, string, string) error            { return f.err }
func (f failingRepo) DeleteSetting(context.Context, string) error                 { return f.err }
func (f failingRepo) Close() error                                                 { return nil }

func TestStore_RepositoryErrors(t *testing.T) {
	dbErr := apperrors.NewDatabaseError("read", errors.New("disk full"))
	store := NewStore(failingRepo{err: dbErr}, Dark, zerolog.Nop())
	ctx := context.Background()

	got, err := store.Load(ctx)
	assert.Error(t, err)
	assert.Equal(t, Dark, got)

	current, err := store.Toggle(ctx, Dark)
	assert.Error(t, err)
	assert.Equal(t, Dark, current)
}

func TestStore_Settings(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, Light))

	settings, err := store.Settings(ctx)
	require.NoError(t, err)
	require.Len(t, settings, 1)
	assert.Equal(t, SettingKey, settings[0].Key)
	assert.Equal(t, "light", settings[0].Value)
}

func TestStore_Reset(t *testing.T) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	defer repo.Close()
	store := NewStore(repo, Light, zerolog.Nop())
	ctx := context.Background()

	// nothing stored yet
	got, err := store.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, Light, got)

	require.NoError(t, store.Save(ctx, Dark))
	got, err = store.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, Light, got)

	settings, err := store.Settings(ctx)
	require.NoError(t, err)
	assert.Empty(t, settings)

	failing := NewStore(failingRepo{err: apperrors.NewDatabaseError("delete", errors.New("locked"))}, Dark, zerolog.Nop())
	_, err = failing.Reset(ctx)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
}
