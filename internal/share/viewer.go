package share

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/KunjShah95/movie-recommendation/internal/api"
	"github.com/KunjShah95/movie-recommendation/internal/models"
)

// ViewState is the share viewer lifecycle.
type ViewState int

const (
	// ViewPending - fetch not yet settled.
	ViewPending ViewState = iota
	// ViewReady - snapshot loaded, read-only session available.
	ViewReady
	// ViewNotFound - terminal; unknown id or any fetch failure. No retry.
	ViewNotFound
)

// Fetcher is the backend call the viewer depends on.
type Fetcher interface {
	GetShare(ctx context.Context, shareID string) (*models.ShareSnapshot, error)
}

// Viewer reconstructs a read-only session from a fetched share snapshot.
type Viewer struct {
	mu       sync.Mutex
	backend  Fetcher
	state    ViewState
	snapshot *models.ShareSnapshot
}

// NewViewer creates a viewer in the pending state.
func NewViewer(backend Fetcher) *Viewer {
	return &Viewer{backend: backend}
}

// State returns the current lifecycle state.
func (v *Viewer) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Snapshot returns the loaded record, or nil unless State is ViewReady.
func (v *Viewer) Snapshot() *models.ShareSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot
}

// Load fetches the snapshot by id. Any failure, including an unknown id,
// lands in the terminal not-found state.
func (v *Viewer) Load(ctx context.Context, shareID string) {
	snap, err := v.backend.GetShare(ctx, shareID)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		if !errors.Is(err, api.ErrNotFound) {
			slog.Error("failed to fetch share", "share_id", shareID, "error", err)
		}
		v.state = ViewNotFound
		return
	}
	v.snapshot = snap
	v.state = ViewReady
}
