// Package stub is a self-contained CinePulse backend for offline
// development. It speaks the full client wire contract against a small
// seeded catalog.
package stub

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KunjShah95/movie-recommendation/internal/models"
)

const recommendCacheTTL = 5 * time.Minute

// Service scores the catalog against a recommendation request.
type Service struct {
	catalog []CatalogEntry
	redis   *redis.Client
}

// NewService creates the stub service. rdb may be nil to run without cache.
func NewService(catalog []CatalogEntry, rdb *redis.Client) *Service {
	return &Service{catalog: catalog, redis: rdb}
}

// MovieByID returns a catalog movie by id.
func (s *Service) MovieByID(id int) (models.Movie, bool) {
	for _, e := range s.catalog {
		if e.ID == id {
			return e.Movie, true
		}
	}
	return models.Movie{}, false
}

// Recommend ranks the catalog against the request and returns the top
// matches with per-movie reasons and a batch explanation.
func (s *Service) Recommend(ctx context.Context, req models.RecommendationRequest) *models.RecommendationResponse {
	// Cache-aside on the request shape
	cacheKey := recommendCacheKey(req)
	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		var resp models.RecommendationResponse
		if json.Unmarshal([]byte(cached), &resp) == nil {
			slog.Debug("recommendation cache hit", "key", cacheKey)
			return &resp
		}
	}

	maxRuntime := contextMaxRuntime(req.Context)
	scored := s.scoreCatalog(req, maxRuntime)

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	var recs []models.Movie
	for _, sc := range scored {
		if sc.score <= 0 {
			continue
		}
		recs = append(recs, sc.movie)
		if len(recs) == 3 {
			break
		}
	}

	resp := &models.RecommendationResponse{
		Recommendations: recs,
		Explanation:     buildExplanation(req, len(recs)),
	}

	if data, err := json.Marshal(resp); err == nil {
		s.setCache(ctx, cacheKey, string(data), recommendCacheTTL)
	}
	return resp
}

type scoredEntry struct {
	movie models.Movie
	score float64
}

// scoreCatalog applies weighted mood/intent/runtime scoring to each entry.
func (s *Service) scoreCatalog(req models.RecommendationRequest, maxRuntime int) []scoredEntry {
	mood := strings.ToLower(strings.TrimSpace(req.Mood))

	var results []scoredEntry
	for _, e := range s.catalog {
		if maxRuntime > 0 && e.Runtime > maxRuntime {
			continue
		}

		var score float64
		var reasons []string

		for _, tone := range e.Tones {
			if mood != "" && strings.Contains(mood, strings.ToLower(tone)) {
				score += 0.5
				reasons = append(reasons, fmt.Sprintf("Resonates with your %s baseline", tone))
				break
			}
		}

		for _, intent := range e.Intents {
			if req.Intent != "" && req.Intent == intent {
				score += 0.3
				reasons = append(reasons, fmt.Sprintf("Built for %s sessions", strings.ToLower(intent)))
				break
			}
		}

		if maxRuntime > 0 {
			// Closer fits to the time window score higher.
			score += 0.2 * float64(maxRuntime-e.Runtime) / float64(maxRuntime)
			reasons = append(reasons, "Runtime fits your available time window")
		}

		if strings.Contains(req.Personality, "Slow Burn") && e.Runtime >= 120 {
			score += 0.1
		}
		if strings.Contains(req.Personality, "Experimental") && e.Year < 2000 {
			score += 0.05
		}

		if score <= 0 {
			continue
		}
		score = math.Round(score*10000) / 10000

		movie := e.Movie
		movie.Reasons = reasons
		movie.Reasoning = fmt.Sprintf(
			"%q maps a %s arc onto your current state: %s",
			e.Title, strings.ToLower(e.EmotionalTag), e.EmotionalArc,
		)
		movie.AlignmentScores = map[string]int{
			"Mood Resonance": int(math.Min(score*100, 100)),
		}
		results = append(results, scoredEntry{movie: movie, score: score})
	}
	return results
}

func buildExplanation(req models.RecommendationRequest, count int) string {
	if count == 0 {
		return "Nothing in the archive matched this exact frequency. Loosen the time window or try a different mood."
	}
	mood := req.Mood
	if mood == "" {
		mood = "current"
	}
	return fmt.Sprintf(
		"Curated %d matches for a %s state. Each pick aligns emotional arc, pacing, and your viewing window.",
		count, mood,
	)
}

func contextMaxRuntime(ctx models.Context) int {
	v, ok := ctx[models.ContextKeyMaxRuntime]
	if !ok {
		return 0
	}
	// JSON numbers decode as float64; direct ints come from in-process use.
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

func recommendCacheKey(req models.RecommendationRequest) string {
	data, _ := json.Marshal(req)
	sum := sha256.Sum256(data)
	return "stub:recommend:" + hex.EncodeToString(sum[:8])
}

// ---- Redis Helpers ----

func (s *Service) getFromCache(ctx context.Context, key string) (string, error) {
	if s.redis == nil {
		return "", fmt.Errorf("redis not available")
	}
	return s.redis.Get(ctx, key).Result()
}

func (s *Service) setCache(ctx context.Context, key, value string, ttl time.Duration) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.Error("failed to set cache", "key", key, "error", err)
	}
}
