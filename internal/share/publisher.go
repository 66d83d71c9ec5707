// Package share creates and views server-persisted session snapshots.
package share

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/KunjShah95/movie-recommendation/internal/models"
	"github.com/KunjShah95/movie-recommendation/internal/session"
)

// DefaultAckDuration is how long the "copied" acknowledgment shows before
// self-clearing.
const DefaultAckDuration = 2 * time.Second

// Creator is the backend call snapshot creation depends on.
type Creator interface {
	CreateShare(ctx context.Context, req models.ShareCreateRequest) (*models.ShareCreateResponse, error)
}

// Clipboard receives the absolute share URL. The CLI implementation prints
// it; a desktop build would copy it.
type Clipboard interface {
	Copy(url string) error
}

// Publisher snapshots the current session into a shareable record.
type Publisher struct {
	mu       sync.Mutex
	store    *session.Store
	backend  Creator
	clip     Clipboard
	linkBase string
	ackFor   time.Duration
	inFlight bool
	copied   bool
}

// NewPublisher creates a publisher. linkBase is prepended to the relative
// path the backend returns.
func NewPublisher(store *session.Store, backend Creator, clip Clipboard, linkBase string) *Publisher {
	return &Publisher{
		store:    store,
		backend:  backend,
		clip:     clip,
		linkBase: strings.TrimRight(linkBase, "/"),
		ackFor:   DefaultAckDuration,
	}
}

// Copied reports whether the transient "copied" acknowledgment is showing.
func (p *Publisher) Copied() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.copied
}

// Create reads the session snapshot plus the current recommendation ids,
// persists them as one share record, and hands the absolute URL to the
// clipboard. No-op (returns empty) while a prior create is in flight or the
// "copied" acknowledgment is still showing. On failure nothing is surfaced
// beyond the log; the session is untouched either way.
func (p *Publisher) Create(ctx context.Context) string {
	p.mu.Lock()
	if p.inFlight || p.copied {
		p.mu.Unlock()
		return ""
	}
	p.inFlight = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.inFlight = false
		p.mu.Unlock()
	}()

	snap := p.store.Snapshot()
	var movieIDs []int
	for _, m := range p.store.Recommendations() {
		movieIDs = append(movieIDs, m.ID)
	}

	resp, err := p.backend.CreateShare(ctx, models.ShareCreateRequest{
		Mood:        snap.Mood,
		Intent:      snap.Intent,
		Personality: snap.Personality,
		Context:     snap.Context,
		MovieIDs:    movieIDs,
	})
	if err != nil {
		slog.Error("failed to create share", "error", err)
		return ""
	}

	url := p.linkBase + resp.URL
	if err := p.clip.Copy(url); err != nil {
		slog.Warn("clipboard copy failed", "error", err)
	}

	p.mu.Lock()
	p.copied = true
	p.mu.Unlock()
	time.AfterFunc(p.ackFor, func() {
		p.mu.Lock()
		p.copied = false
		p.mu.Unlock()
	})

	return url
}
