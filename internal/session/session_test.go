package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-storybook/models"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return NewStore(path), path
}

func TestStore_LoadMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Load()

	assert.ErrorIs(t, err, ErrNoSession)
}

func TestStore_SaveLoad(t *testing.T) {
	store, path := newTestStore(t)
	want := Session{Token: "jwt", User: models.UserSummary{ID: "user-luna", Username: "luna"}, Theme: "mint"}

	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_ClearKeepsTheme(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Save(Session{Token: "jwt", User: models.UserSummary{Username: "luna"}, Theme: "night"}))

	require.NoError(t, store.Clear())

	got, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Equal(t, "night", got.Theme)
	assert.False(t, got.LoggedIn())
}

func TestStore_LoadCorrupt(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := store.Load()

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSession)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}
