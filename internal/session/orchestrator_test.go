package session

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KunjShah95/movie-recommendation/internal/api"
	"github.com/KunjShah95/movie-recommendation/internal/models"
)

// fakeRecommender lets tests control settlement of the backend call.
type fakeRecommender struct {
	calls   atomic.Int32
	block   chan struct{} // when non-nil, the call waits here
	resp    *models.RecommendationResponse
	err     error
	lastReq models.RecommendationRequest
}

func (f *fakeRecommender) Recommend(ctx context.Context, req models.RecommendationRequest) (*models.RecommendationResponse, error) {
	f.calls.Add(1)
	f.lastReq = req
	if f.block != nil {
		<-f.block
	}
	return f.resp, f.err
}

func TestSubmitReplacesResultAndNavigates(t *testing.T) {
	store := NewStore()
	store.SetMood("Euphoric")
	store.SetIntent(models.IntentEscapism)
	store.UpdateContext(models.ContextKeyMaxRuntime, 150)

	backend := &fakeRecommender{resp: &models.RecommendationResponse{
		Recommendations: []models.Movie{{ID: 4, Title: "Spirited Away"}, {ID: 5, Title: "Mad Max: Fury Road"}},
		Explanation:     "two matches",
	}}

	navigated := false
	orch := NewOrchestrator(store, backend, func() { navigated = true })
	require.True(t, orch.Submit(context.Background()))

	assert.True(t, navigated)
	assert.False(t, store.Loading())
	assert.Equal(t, "two matches", store.Explanation())
	require.Len(t, store.Recommendations(), 2)

	// The request carried the full snapshot.
	assert.Equal(t, "Euphoric", backend.lastReq.Mood)
	assert.Equal(t, models.IntentEscapism, backend.lastReq.Intent)
	assert.Equal(t, 150, backend.lastReq.Context[models.ContextKeyMaxRuntime])
}

func TestSubmitFailureLeavesResultUntouched(t *testing.T) {
	store := NewStore()
	store.SetRecommendations([]models.Movie{{ID: 1, Title: "Kept"}})
	store.SetExplanation("kept batch")

	backend := &fakeRecommender{err: fmt.Errorf("backend down")}
	orch := NewOrchestrator(store, backend, func() { t.Fatal("navigated on failure") })
	orch.Submit(context.Background())

	assert.False(t, store.Loading())
	require.Len(t, store.Recommendations(), 1)
	assert.Equal(t, "Kept", store.Recommendations()[0].Title)
	assert.Equal(t, "kept batch", store.Explanation())
}

func TestSubmitIsSingleFlight(t *testing.T) {
	store := NewStore()
	backend := &fakeRecommender{
		block: make(chan struct{}),
		resp:  &models.RecommendationResponse{},
	}
	orch := NewOrchestrator(store, backend, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		orch.Submit(context.Background())
	}()

	// Wait until the first submission holds the loading flag.
	require.Eventually(t, store.Loading, time.Second, time.Millisecond)

	assert.False(t, orch.Submit(context.Background()), "second submit while pending must be a no-op")

	close(backend.block)
	wg.Wait()

	assert.Equal(t, int32(1), backend.calls.Load())
	assert.False(t, store.Loading())
}

func TestSubmitEndToEndAgainstMockBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/recommend", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"recommendations":[{"id":4,"title":"Spirited Away","year":2001,"type":"movie","reasons":["fits"],"reasoning":"wonder"},{"id":6,"title":"My Neighbor Totoro","year":1988,"type":"movie","reasons":[],"reasoning":"comfort"}],"explanation":"curated for a euphoric state"}`)
	}))
	defer server.Close()

	store := NewStore()
	store.SetMood("Euphoric")
	store.SetIntent(models.IntentEscapism)
	store.UpdateContext(models.ContextKeyMaxRuntime, 150)

	client := api.NewClient(server.URL, time.Second, nil)
	orch := NewOrchestrator(store, client, nil)
	require.True(t, orch.Submit(context.Background()))

	recs := store.Recommendations()
	require.Len(t, recs, 2)
	assert.Equal(t, "Spirited Away", recs[0].Title)
	assert.Equal(t, "curated for a euphoric state", store.Explanation())
	assert.False(t, store.Loading())
}
