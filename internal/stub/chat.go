package stub

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KunjShah95/movie-recommendation/internal/models"
)

var titleMarker = regexp.MustCompile(`\[\[(.*?)\]\]`)

// respondToChat produces one assistant turn. Recommended titles are wrapped
// in [[Title]] markers and the marked titles become the suggested snippets,
// capped at three.
func (s *Service) respondToChat(req models.ChatRequest) *models.ChatResponse {
	last := ""
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == models.RoleUser {
			last = req.Messages[i].Content
			break
		}
	}

	matches := s.matchCatalog(last)
	var text string
	switch {
	case last == "":
		text = "Hey! I'm here to help you discover great movies and shows. What are you in the mood for today?"
	case len(matches) == 0:
		text = "I couldn't place that one in the archive. Give me a mood, a title, or a vibe and I'll dig."
	default:
		var marked []string
		for _, m := range matches {
			marked = append(marked, "[["+m.Title+"]]")
		}
		text = fmt.Sprintf("Based on that, I'd pull %s off the shelf. Want me to narrow it down?",
			strings.Join(marked, ", "))
	}

	return &models.ChatResponse{
		Message:         models.Message{Role: models.RoleAssistant, Content: text},
		SuggestedMovies: extractSuggestions(text, s.catalog),
	}
}

// matchCatalog finds catalog entries whose title or tones appear in the
// user's message.
func (s *Service) matchCatalog(message string) []CatalogEntry {
	lower := strings.ToLower(message)
	var out []CatalogEntry
	for _, e := range s.catalog {
		if strings.Contains(lower, strings.ToLower(e.Title)) {
			out = append(out, e)
			continue
		}
		for _, tone := range e.Tones {
			if strings.Contains(lower, strings.ToLower(tone)) {
				out = append(out, e)
				break
			}
		}
	}
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

// extractSuggestions resolves [[Title]] markers against the catalog.
func extractSuggestions(text string, catalog []CatalogEntry) []models.SuggestedMovie {
	var out []models.SuggestedMovie
	for _, m := range titleMarker.FindAllStringSubmatch(text, -1) {
		for _, e := range catalog {
			if e.Title != m[1] {
				continue
			}
			out = append(out, models.SuggestedMovie{
				ID:     e.ID,
				Title:  e.Title,
				Poster: e.Poster,
				Year:   strconv.Itoa(e.Year),
			})
			break
		}
		if len(out) == 3 {
			break
		}
	}
	return out
}

// research deep-scans a single title against the catalog, mirroring the
// production research profile shape.
func (s *Service) research(title string) (models.Movie, bool) {
	lower := strings.ToLower(strings.TrimSpace(title))
	for _, e := range s.catalog {
		if !strings.Contains(strings.ToLower(e.Title), lower) || lower == "" {
			continue
		}
		movie := e.Movie
		movie.Reasons = []string{
			"Analyzed specifically for your request",
			fmt.Sprintf("Profiled as %s with a %d minute runtime", strings.ToLower(e.EmotionalTag), e.Runtime),
			"Added to the cinematic collective for future mapping",
		}
		movie.Reasoning = fmt.Sprintf(
			"Deep scan of %q complete. The story reads %s: %s",
			e.Title, strings.ToLower(e.EmotionalTag), e.EmotionalArc,
		)
		return movie, true
	}
	return models.Movie{}, false
}
