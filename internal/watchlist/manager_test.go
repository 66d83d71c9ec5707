package watchlist

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KunjShah95/movie-recommendation/internal/storage"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

// fakeRemote records mirror calls on a channel so the fire-and-forget sync
// can be observed.
type fakeRemote struct {
	fail  bool
	calls chan string
}

func (f *fakeRemote) AddToWatchlist(ctx context.Context, movieID int) error {
	f.calls <- fmt.Sprintf("add %d", movieID)
	if f.fail {
		return fmt.Errorf("remote down")
	}
	return nil
}

func (f *fakeRemote) RemoveFromWatchlist(ctx context.Context, movieID int) error {
	f.calls <- fmt.Sprintf("remove %d", movieID)
	if f.fail {
		return fmt.Errorf("remote down")
	}
	return nil
}

func newLocal(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "cinepulse.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func waitCall(t *testing.T, calls chan string) string {
	t.Helper()
	select {
	case call := <-calls:
		return call
	case <-time.After(time.Second):
		t.Fatal("expected a remote sync call")
		return ""
	}
}

func TestToggleRoundTrip(t *testing.T) {
	local := newLocal(t)
	m := NewManager(local, nil, nil)

	saved, err := m.Toggle(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, saved)

	present, err := m.Contains(42)
	require.NoError(t, err)
	assert.True(t, present)

	saved, err = m.Toggle(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, saved)

	present, err = m.Contains(42)
	require.NoError(t, err)
	assert.False(t, present, "absent -> present -> absent must match the initial state")
}

func TestToggleMirrorsWhenAuthenticated(t *testing.T) {
	local := newLocal(t)
	remote := &fakeRemote{calls: make(chan string, 2)}
	m := NewManager(local, remote, staticToken("tok"))

	_, err := m.Toggle(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "add 7", waitCall(t, remote.calls))

	_, err = m.Toggle(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "remove 7", waitCall(t, remote.calls))
}

func TestToggleSkipsRemoteWithoutSession(t *testing.T) {
	local := newLocal(t)
	remote := &fakeRemote{calls: make(chan string, 1)}
	m := NewManager(local, remote, staticToken(""))

	_, err := m.Toggle(context.Background(), 7)
	require.NoError(t, err)

	select {
	case call := <-remote.calls:
		t.Fatalf("unexpected remote call %q without a session", call)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRemoteFailureDoesNotRevertLocal(t *testing.T) {
	local := newLocal(t)
	remote := &fakeRemote{fail: true, calls: make(chan string, 1)}
	m := NewManager(local, remote, staticToken("tok"))

	saved, err := m.Toggle(context.Background(), 9)
	require.NoError(t, err)
	assert.True(t, saved)
	waitCall(t, remote.calls)

	present, err := m.Contains(9)
	require.NoError(t, err)
	assert.True(t, present, "local state is authoritative; remote failure must not revert it")
}

func TestListReflectsInsertionOrder(t *testing.T) {
	local := newLocal(t)
	m := NewManager(local, nil, nil)

	for _, id := range []int{3, 1, 2} {
		_, err := m.Toggle(context.Background(), id)
		require.NoError(t, err)
	}

	ids, err := m.List()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, ids)
}
