// Package api is the JSON-over-HTTP client for the CinePulse backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KunjShah95/movie-recommendation/internal/models"
)

// ErrNotFound is returned when the backend reports a missing resource.
var ErrNotFound = errors.New("not found")

// StatusError is a non-2xx response from the backend, distinct from a
// transport failure.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.Code, e.Body)
}

// Is lets errors.Is(err, ErrNotFound) match a 404 status.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// TokenSource supplies the bearer token attached to authenticated calls.
// An empty token means the call goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client is the CinePulse backend API client.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewClient creates a new backend API client. tokens may be nil for a
// client that never authenticates.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// Recommend submits the accumulated session fields and returns the curated
// batch with its explanation.
func (c *Client) Recommend(ctx context.Context, req models.RecommendationRequest) (*models.RecommendationResponse, error) {
	var resp models.RecommendationResponse
	if err := c.postJSON(ctx, "/api/v1/recommend", req, &resp); err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}
	return &resp, nil
}

// Chat sends the full transcript plus the context tag and returns the next
// assistant turn.
func (c *Client) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	var resp models.ChatResponse
	if err := c.postJSON(ctx, "/api/v1/chat", req, &resp); err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}
	return &resp, nil
}

// Research asks the backend to deep-scan a single title and map its profile.
func (c *Client) Research(ctx context.Context, title string) (*models.Movie, error) {
	var movie models.Movie
	if err := c.postJSON(ctx, "/api/v1/research/research", models.ResearchRequest{Title: title}, &movie); err != nil {
		return nil, fmt.Errorf("research %q: %w", title, err)
	}
	return &movie, nil
}

// AddToWatchlist mirrors a local watchlist add to the remote store.
func (c *Client) AddToWatchlist(ctx context.Context, movieID int) error {
	return c.send(ctx, http.MethodPost, fmt.Sprintf("/api/v1/watchlist/%d", movieID), nil, nil)
}

// RemoveFromWatchlist mirrors a local watchlist remove to the remote store.
func (c *Client) RemoveFromWatchlist(ctx context.Context, movieID int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/watchlist/%d", movieID), nil, nil)
}

// CreateShare persists a session snapshot and returns its opaque id plus the
// relative share path.
func (c *Client) CreateShare(ctx context.Context, req models.ShareCreateRequest) (*models.ShareCreateResponse, error) {
	var resp models.ShareCreateResponse
	if err := c.postJSON(ctx, "/api/v1/share", req, &resp); err != nil {
		return nil, fmt.Errorf("create share: %w", err)
	}
	return &resp, nil
}

// GetShare fetches a share snapshot by id. Returns ErrNotFound when the id
// is unknown.
func (c *Client) GetShare(ctx context.Context, shareID string) (*models.ShareSnapshot, error) {
	var snap models.ShareSnapshot
	if err := c.send(ctx, http.MethodGet, "/api/v1/share/"+url.PathEscape(shareID), nil, &snap); err != nil {
		return nil, fmt.Errorf("get share %s: %w", shareID, err)
	}
	return &snap, nil
}

// Login exchanges credentials for an access token. The request is
// form-encoded per the OAuth2 password flow the backend speaks.
func (c *Client) Login(ctx context.Context, username, password string) (*models.Token, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/auth/login/access-token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("login failed with status %d: %s", resp.StatusCode, string(body))
	}

	var token models.Token
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return &token, nil
}

// CurrentUser returns the account behind the bearer token.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.send(ctx, http.MethodGet, "/api/v1/users/me", nil, &user); err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	return &user, nil
}

// ---- Transport Helpers ----

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPost, path, body, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	slog.Debug("backend request", "method", method, "path", path)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(resp.Body)
		return &StatusError{Code: resp.StatusCode, Body: string(msg)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
