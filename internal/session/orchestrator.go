package session

import (
	"context"
	"log/slog"

	"github.com/KunjShah95/movie-recommendation/internal/models"
)

// Recommender is the backend call the orchestrator depends on.
type Recommender interface {
	Recommend(ctx context.Context, req models.RecommendationRequest) (*models.RecommendationResponse, error)
}

// Orchestrator turns the accumulated session fields into a recommendation
// result. One submission at a time; repeated triggers while a request is in
// flight are no-ops.
type Orchestrator struct {
	store     *Store
	backend   Recommender
	onSuccess func()
}

// NewOrchestrator creates an orchestrator. onSuccess runs after a successful
// submission (the caller navigates to the results view); it may be nil.
func NewOrchestrator(store *Store, backend Recommender, onSuccess func()) *Orchestrator {
	return &Orchestrator{store: store, backend: backend, onSuccess: onSuccess}
}

// Submit reads the full session snapshot, issues the recommendation request,
// and on success replaces recommendations and explanation wholesale. On any
// failure the previous result is left untouched and the only surfaced signal
// is the cleared loading flag. Returns false when a submission was already
// in flight.
func (o *Orchestrator) Submit(ctx context.Context) bool {
	if !o.store.beginLoading() {
		return false
	}
	defer o.store.SetLoading(false)

	snap := o.store.Snapshot()
	resp, err := o.backend.Recommend(ctx, models.RecommendationRequest{
		Mood:        snap.Mood,
		Intent:      snap.Intent,
		Context:     snap.Context,
		Personality: snap.Personality,
	})
	if err != nil {
		slog.Error("failed to fetch recommendations", "error", err)
		return true
	}

	o.store.setResult(resp.Recommendations, resp.Explanation)
	if o.onSuccess != nil {
		o.onSuccess()
	}
	return true
}
