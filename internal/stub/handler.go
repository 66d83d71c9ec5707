package stub

import (
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v3"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/KunjShah95/movie-recommendation/internal/models"
)

// ErrorResponse is the stub's error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler serves the wire contract over Fiber.
type Handler struct {
	svc *Service

	mu         sync.Mutex
	shares     map[string]models.ShareCreateRequest
	sessions   map[string]models.User // bearer token -> account
	watchlists map[string]map[int]bool
	nextUserID int
}

// NewHandler creates a stub handler over the given service.
func NewHandler(svc *Service) *Handler {
	return &Handler{
		svc:        svc,
		shares:     make(map[string]models.ShareCreateRequest),
		sessions:   make(map[string]models.User),
		watchlists: make(map[string]map[int]bool),
		nextUserID: 1,
	}
}

// Register mounts the API routes.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/health", h.Health)

	api := app.Group("/api/v1")
	api.Post("/recommend", h.Recommend)
	api.Post("/chat", h.Chat)
	api.Post("/research/research", h.Research)
	api.Post("/watchlist/:id", h.AddToWatchlist)
	api.Delete("/watchlist/:id", h.RemoveFromWatchlist)
	api.Post("/share", h.CreateShare)
	api.Get("/share/:id", h.GetShare)
	api.Post("/auth/login/access-token", h.Login)
	api.Get("/users/me", h.CurrentUser)
}

// Health returns service health status.
func (h *Handler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "cinepulse-stub",
	})
}

// Recommend scores the catalog against the submitted session fields.
func (h *Handler) Recommend(c fiber.Ctx) error {
	var req models.RecommendationRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	return c.JSON(h.svc.Recommend(c.Context(), req))
}

// Chat handles one conversational turn.
func (h *Handler) Chat(c fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	return c.JSON(h.svc.respondToChat(req))
}

// Research deep-scans a single title.
func (h *Handler) Research(c fiber.Ctx) error {
	var req models.ResearchRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	movie, ok := h.svc.research(req.Title)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "not enough deep data on this title yet, try a more well-known movie",
		})
	}
	return c.JSON(movie)
}

// ---- Watchlist ----

// AddToWatchlist records a movie against the caller's session.
func (h *Handler) AddToWatchlist(c fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "missing bearer token"})
	}
	movieID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid movie ID"})
	}
	if _, ok := h.svc.MovieByID(movieID); !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "movie not found"})
	}

	h.mu.Lock()
	if h.watchlists[token] == nil {
		h.watchlists[token] = make(map[int]bool)
	}
	h.watchlists[token][movieID] = true
	h.mu.Unlock()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Added to watchlist"})
}

// RemoveFromWatchlist deletes a movie from the caller's session.
func (h *Handler) RemoveFromWatchlist(c fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "missing bearer token"})
	}
	movieID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid movie ID"})
	}

	h.mu.Lock()
	existed := h.watchlists[token][movieID]
	delete(h.watchlists[token], movieID)
	h.mu.Unlock()

	if !existed {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "not in watchlist"})
	}
	return c.JSON(fiber.Map{"message": "Removed from watchlist"})
}

// ---- Share ----

// CreateShare persists an immutable session snapshot and returns its id.
func (h *Handler) CreateShare(c fiber.Ctx) error {
	var req models.ShareCreateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	id, err := gonanoid.New(10)
	if err != nil {
		slog.Error("failed to generate share id", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "internal error"})
	}

	h.mu.Lock()
	h.shares[id] = req
	h.mu.Unlock()

	return c.JSON(models.ShareCreateResponse{
		ShareID: id,
		URL:     "/share/" + id,
	})
}

// GetShare reconstructs a read-only session from a stored snapshot.
func (h *Handler) GetShare(c fiber.Ctx) error {
	h.mu.Lock()
	req, ok := h.shares[c.Params("id")]
	h.mu.Unlock()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "share not found"})
	}

	movies := make([]models.Movie, 0, len(req.MovieIDs))
	for _, id := range req.MovieIDs {
		if movie, ok := h.svc.MovieByID(id); ok {
			movies = append(movies, movie)
		}
	}

	return c.JSON(models.ShareSnapshot{
		Mood:        req.Mood,
		Intent:      req.Intent,
		Personality: req.Personality,
		Context:     req.Context,
		Movies:      movies,
	})
}

// ---- Auth ----

// Login accepts any non-empty credentials and mints a session token.
func (h *Handler) Login(c fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "incorrect email or password"})
	}

	token, err := gonanoid.New(24)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "internal error"})
	}

	h.mu.Lock()
	h.sessions[token] = models.User{ID: h.nextUserID, Email: username}
	h.nextUserID++
	h.mu.Unlock()

	return c.JSON(models.Token{AccessToken: token, TokenType: "bearer"})
}

// CurrentUser returns the account behind the bearer token.
func (h *Handler) CurrentUser(c fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "missing bearer token"})
	}
	h.mu.Lock()
	user, ok := h.sessions[token]
	h.mu.Unlock()
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "invalid token"})
	}
	return c.JSON(user)
}

// bearerToken extracts the bearer token, or empty when absent.
func bearerToken(c fiber.Ctx) string {
	header := c.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
