package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data", "session.db")
	store, err := Open(path)
	require.NoError(t, err)
	return store, path
}

func TestStore_Token(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)
	defer store.Close()

	_, err := store.Token(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.SaveToken(ctx, "jwt-value"))
	got, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-value", got)

	require.NoError(t, store.ClearToken(ctx))
	_, err = store.Token(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, store.ClearToken(ctx))
}

func TestStore_BrowserStateSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	store, path := openTestStore(t)

	require.NoError(t, store.SaveCurrentRoom(ctx, "Submarine"))
	require.NoError(t, store.SaveCurrentPicture(ctx, []byte{0x89, 'P', 'N', 'G'}))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	room, err := reopened.CurrentRoom(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Submarine", room)

	pic, err := reopened.CurrentPicture(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, pic)
}

func TestStore_MissingBrowserState(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)
	defer store.Close()

	_, err := store.CurrentRoom(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.CurrentPicture(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
