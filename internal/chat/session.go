// Package chat is the conversational extraction session: an append-only
// transcript exchanged with the backend assistant, plus a small rolling list
// of movies the assistant mentions along the way.
package chat

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/KunjShah95/movie-recommendation/internal/api"
	"github.com/KunjShah95/movie-recommendation/internal/models"
)

// MaxSuggestions caps the rolling suggestion list.
const MaxSuggestions = 3

// Canned assistant fallbacks. The raw error never reaches the transcript.
const (
	fallbackBadStatus = "Hmm, my projector flickered there. Ask me that one more time?"
	fallbackTransport = "Looks like the reel snapped — I can't reach the archive right now. Try again in a moment."
)

// Sender is the backend call one chat turn depends on.
type Sender interface {
	Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

// Session is one chat conversation. One turn at a time: Send is a no-op
// while a previous turn is still in flight.
type Session struct {
	mu          sync.Mutex
	backend     Sender
	tag         models.ChatContext
	transcript  []models.Message
	suggestions []models.SuggestedMovie
	busy        bool
}

// NewSession creates an empty chat session tagged with the calling surface.
func NewSession(backend Sender, tag models.ChatContext) *Session {
	return &Session{backend: backend, tag: tag}
}

// Transcript returns a copy of the transcript in chronological order.
func (s *Session) Transcript() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Suggestions returns the rolling suggestion list, most recent first.
func (s *Session) Suggestions() []models.SuggestedMovie {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SuggestedMovie, len(s.suggestions))
	copy(out, s.suggestions)
	return out
}

// Sending reports whether a turn is in flight.
func (s *Session) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Send dispatches one turn. The user message is appended to the transcript
// before the network call; the assistant reply (or a canned fallback on
// failure) is appended after settlement. Returns false when a previous turn
// was still in flight and nothing was sent.
func (s *Session) Send(ctx context.Context, text string) bool {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return false
	}
	s.busy = true
	s.transcript = append(s.transcript, models.Message{Role: models.RoleUser, Content: text})
	outbound := make([]models.Message, len(s.transcript))
	copy(outbound, s.transcript)
	s.mu.Unlock()

	resp, err := s.backend.Chat(ctx, models.ChatRequest{Messages: outbound, Context: s.tag})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false

	if err != nil {
		slog.Error("chat turn failed", "error", err)
		content := fallbackTransport
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) {
			content = fallbackBadStatus
		}
		s.transcript = append(s.transcript, models.Message{Role: models.RoleAssistant, Content: content})
		return true
	}

	s.transcript = append(s.transcript, resp.Message)
	if len(resp.SuggestedMovies) > 0 {
		// Newest suggestions take the front; older ones fall off the end.
		// No dedup by id: a re-mentioned movie appears again.
		s.suggestions = append(resp.SuggestedMovies, s.suggestions...)
		if len(s.suggestions) > MaxSuggestions {
			s.suggestions = s.suggestions[:MaxSuggestions]
		}
	}
	return true
}
