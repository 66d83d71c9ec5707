package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchlistPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cinepulse.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.AddMovie(1))
	require.NoError(t, store.AddMovie(2))
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	ids, err := store.ListMovies()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids)
}

func TestAddMovieIsIdempotent(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "cinepulse.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.AddMovie(5))
	require.NoError(t, store.AddMovie(5))

	ids, err := store.ListMovies()
	require.NoError(t, err)
	assert.Equal(t, []int{5}, ids)
}

func TestRemoveMovieClearsMembership(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "cinepulse.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.AddMovie(8))
	require.NoError(t, store.RemoveMovie(8))
	// Removing an absent id is fine.
	require.NoError(t, store.RemoveMovie(8))

	present, err := store.HasMovie(8)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestTokenLifecycle(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "cinepulse.db"))
	require.NoError(t, err)
	defer store.Close()

	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token, "fresh store has no session")

	require.NoError(t, store.SetToken("first"))
	require.NoError(t, store.SetToken("second"))

	token, err = store.Token()
	require.NoError(t, err)
	assert.Equal(t, "second", token)

	require.NoError(t, store.ClearToken())
	token, err = store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)
}
