// Package watchlist keeps the per-movie saved state. The local durable set
// is the source of truth for immediate feedback; when a user session exists
// the toggle is mirrored to the remote store best-effort.
package watchlist

import (
	"context"
	"log/slog"
)

// LocalStore is the durable local id set.
type LocalStore interface {
	AddMovie(movieID int) error
	RemoveMovie(movieID int) error
	HasMovie(movieID int) (bool, error)
	ListMovies() ([]int, error)
}

// RemoteStore mirrors watchlist membership on the backend.
type RemoteStore interface {
	AddToWatchlist(ctx context.Context, movieID int) error
	RemoveFromWatchlist(ctx context.Context, movieID int) error
}

// TokenSource reports whether a user session exists.
type TokenSource interface {
	Token() string
}

// Manager applies watchlist toggles: local first, remote mirror after.
type Manager struct {
	local  LocalStore
	remote RemoteStore
	tokens TokenSource
}

// NewManager creates a watchlist manager. remote/tokens may be nil for a
// purely local watchlist.
func NewManager(local LocalStore, remote RemoteStore, tokens TokenSource) *Manager {
	return &Manager{local: local, remote: remote, tokens: tokens}
}

// Contains reports local membership.
func (m *Manager) Contains(movieID int) (bool, error) {
	return m.local.HasMovie(movieID)
}

// List returns all locally watchlisted ids.
func (m *Manager) List() ([]int, error) {
	return m.local.ListMovies()
}

// Toggle flips the membership of movieID. The local write happens first and
// is authoritative; the remote call only fires when a session exists and its
// failure is logged, never reverted. Consecutive toggles' remote calls carry
// no ordering guarantee relative to each other.
func (m *Manager) Toggle(ctx context.Context, movieID int) (nowWatchlisted bool, err error) {
	present, err := m.local.HasMovie(movieID)
	if err != nil {
		return false, err
	}

	if present {
		if err := m.local.RemoveMovie(movieID); err != nil {
			return true, err
		}
	} else {
		if err := m.local.AddMovie(movieID); err != nil {
			return false, err
		}
	}
	nowWatchlisted = !present

	if m.remote != nil && m.tokens != nil && m.tokens.Token() != "" {
		go m.sync(ctx, movieID, nowWatchlisted)
	}
	return nowWatchlisted, nil
}

func (m *Manager) sync(ctx context.Context, movieID int, watchlisted bool) {
	var err error
	if watchlisted {
		err = m.remote.AddToWatchlist(ctx, movieID)
	} else {
		err = m.remote.RemoveFromWatchlist(ctx, movieID)
	}
	if err != nil {
		slog.Warn("watchlist sync failed, local state kept", "movie_id", movieID, "watchlisted", watchlisted, "error", err)
	}
}
