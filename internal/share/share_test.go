package share

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KunjShah95/movie-recommendation/internal/api"
	"github.com/KunjShah95/movie-recommendation/internal/models"
	"github.com/KunjShah95/movie-recommendation/internal/session"
)

type fakeCreator struct {
	mu      sync.Mutex
	calls   int
	block   chan struct{}
	err     error
	lastReq models.ShareCreateRequest
}

func (f *fakeCreator) CreateShare(ctx context.Context, req models.ShareCreateRequest) (*models.ShareCreateResponse, error) {
	f.mu.Lock()
	f.calls++
	f.lastReq = req
	block, err := f.block, f.err
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}
	return &models.ShareCreateResponse{ShareID: "abc123", URL: "/share/abc123"}, nil
}

func (f *fakeCreator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type recordClipboard struct {
	urls []string
}

func (r *recordClipboard) Copy(url string) error {
	r.urls = append(r.urls, url)
	return nil
}

func seededStore() *session.Store {
	store := session.NewStore()
	store.SetMood("Melancholic")
	store.SetIntent(models.IntentRelaxation)
	store.UpdateContext(models.ContextKeyIsAlone, true)
	store.UpdateContext(models.ContextKeyMaxRuntime, 90)
	store.SetRecommendations([]models.Movie{{ID: 1}, {ID: 2}, {ID: 3}})
	return store
}

func TestCreateSnapshotsSessionAndCopiesURL(t *testing.T) {
	backend := &fakeCreator{}
	clip := &recordClipboard{}
	p := NewPublisher(seededStore(), backend, clip, "https://cinepulse.app/")

	url := p.Create(context.Background())

	assert.Equal(t, "https://cinepulse.app/share/abc123", url)
	require.Len(t, clip.urls, 1)
	assert.Equal(t, url, clip.urls[0])
	assert.True(t, p.Copied())

	assert.Equal(t, "Melancholic", backend.lastReq.Mood)
	assert.Equal(t, models.IntentRelaxation, backend.lastReq.Intent)
	assert.Equal(t, []int{1, 2, 3}, backend.lastReq.MovieIDs)
	assert.Equal(t, true, backend.lastReq.Context[models.ContextKeyIsAlone])
}

func TestCreateIsBlockedWhileAckShowing(t *testing.T) {
	backend := &fakeCreator{}
	p := NewPublisher(seededStore(), backend, &recordClipboard{}, "https://cinepulse.app")
	p.ackFor = 30 * time.Millisecond

	require.NotEmpty(t, p.Create(context.Background()))
	assert.Empty(t, p.Create(context.Background()), "create while the ack shows must be a no-op")
	assert.Equal(t, 1, backend.callCount())

	// After the ack self-clears, creating again works.
	require.Eventually(t, func() bool { return !p.Copied() }, time.Second, time.Millisecond)
	assert.NotEmpty(t, p.Create(context.Background()))
	assert.Equal(t, 2, backend.callCount())
}

func TestCreateIsSingleFlight(t *testing.T) {
	backend := &fakeCreator{block: make(chan struct{})}
	p := NewPublisher(seededStore(), backend, &recordClipboard{}, "https://cinepulse.app")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		p.Create(context.Background())
	}()

	require.Eventually(t, func() bool { return backend.callCount() == 1 }, time.Second, time.Millisecond)
	assert.Empty(t, p.Create(context.Background()), "create while in flight must be a no-op")
	assert.Equal(t, 1, backend.callCount())

	close(backend.block)
	wg.Wait()
}

func TestCreateFailureShowsNoAck(t *testing.T) {
	backend := &fakeCreator{err: fmt.Errorf("backend down")}
	clip := &recordClipboard{}
	p := NewPublisher(seededStore(), backend, clip, "https://cinepulse.app")

	assert.Empty(t, p.Create(context.Background()))
	assert.False(t, p.Copied())
	assert.Empty(t, clip.urls)
}

// ---- Viewer ----

type fakeFetcher struct {
	snap *models.ShareSnapshot
	err  error
}

func (f *fakeFetcher) GetShare(ctx context.Context, shareID string) (*models.ShareSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snap, nil
}

func TestViewerLoadsSnapshot(t *testing.T) {
	v := NewViewer(&fakeFetcher{snap: &models.ShareSnapshot{
		Mood:   "Melancholic",
		Movies: []models.Movie{{ID: 1}, {ID: 2}},
	}})
	assert.Equal(t, ViewPending, v.State())

	v.Load(context.Background(), "abc123")

	assert.Equal(t, ViewReady, v.State())
	require.NotNil(t, v.Snapshot())
	assert.Equal(t, "Melancholic", v.Snapshot().Mood)
	assert.Len(t, v.Snapshot().Movies, 2)
}

func TestViewerUnknownIDIsTerminalNotFound(t *testing.T) {
	v := NewViewer(&fakeFetcher{err: fmt.Errorf("get share nope: %w", api.ErrNotFound)})
	v.Load(context.Background(), "nope")
	assert.Equal(t, ViewNotFound, v.State())
	assert.Nil(t, v.Snapshot())
}

func TestViewerTransportFailureIsNotFound(t *testing.T) {
	v := NewViewer(&fakeFetcher{err: fmt.Errorf("connection refused")})
	v.Load(context.Background(), "abc123")
	assert.Equal(t, ViewNotFound, v.State())
}
