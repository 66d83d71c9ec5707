// Package session holds the client-side state accumulated across the
// discovery wizard: mood, intent, context, personality, and the most recent
// recommendation result.
package session

import (
	"sync"

	"github.com/KunjShah95/movie-recommendation/internal/models"
)

// Store is the single source of truth for the session. All setters are
// synchronous and immediately visible to every consumer. The store holds
// whatever it is given; validation (mood length, slider bounds) belongs to
// the producing input layer.
type Store struct {
	mu sync.Mutex

	mood            string
	intent          string
	context         models.Context
	personality     string
	recommendations []models.Movie
	explanation     string
	loading         bool
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{context: models.Context{}}
}

// Snapshot is an atomic copy of the request fields the orchestrator submits.
type Snapshot struct {
	Mood        string
	Intent      string
	Context     models.Context
	Personality string
}

// Snapshot returns the current request fields as one consistent copy.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Mood:        s.mood,
		Intent:      s.intent,
		Context:     s.context.Clone(),
		Personality: s.personality,
	}
}

func (s *Store) Mood() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mood
}

func (s *Store) SetMood(mood string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mood = mood
}

func (s *Store) Intent() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intent
}

func (s *Store) SetIntent(intent string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intent = intent
}

// Context returns a copy of the context map; mutations go through
// UpdateContext.
func (s *Store) Context() models.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.context.Clone()
}

// UpdateContext merges one key into the context map without touching keys
// written by other contributors. Re-writing a key overwrites its previous
// value; keys are never dropped.
func (s *Store) UpdateContext(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.context[key] = value
}

func (s *Store) Personality() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.personality
}

// SetPersonality replaces the derived summary wholesale.
func (s *Store) SetPersonality(personality string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.personality = personality
}

func (s *Store) Recommendations() []models.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Movie, len(s.recommendations))
	copy(out, s.recommendations)
	return out
}

// SetRecommendations replaces the recommendation list wholesale.
func (s *Store) SetRecommendations(recs []models.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recommendations = recs
}

func (s *Store) Explanation() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.explanation
}

func (s *Store) SetExplanation(explanation string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.explanation = explanation
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// beginLoading flips loading to true unless a submission is already in
// flight. Reports whether the caller holds the flag.
func (s *Store) beginLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return false
	}
	s.loading = true
	return true
}

// setResult replaces recommendations and explanation together.
func (s *Store) setResult(recs []models.Movie, explanation string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recommendations = recs
	s.explanation = explanation
}
