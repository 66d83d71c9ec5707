// Package auth manages the persisted user session token.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KunjShah95/movie-recommendation/internal/models"
)

// Backend is the slice of the API client auth depends on.
type Backend interface {
	Login(ctx context.Context, username, password string) (*models.Token, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

// TokenStore persists the access token across restarts.
type TokenStore interface {
	SetToken(token string) error
	Token() (string, error)
	ClearToken() error
}

// Authenticator logs users in and out and exposes the stored token to the
// API client (it implements api.TokenSource).
type Authenticator struct {
	backend Backend
	store   TokenStore
}

// NewAuthenticator creates an authenticator over the given token store.
func NewAuthenticator(backend Backend, store TokenStore) *Authenticator {
	return &Authenticator{backend: backend, store: store}
}

// Token returns the persisted access token, or empty when logged out.
func (a *Authenticator) Token() string {
	token, err := a.store.Token()
	if err != nil {
		slog.Error("failed to read stored token", "error", err)
		return ""
	}
	return token
}

// Authenticated reports whether a token is stored.
func (a *Authenticator) Authenticated() bool {
	return a.Token() != ""
}

// Login exchanges credentials for an access token and persists it.
func (a *Authenticator) Login(ctx context.Context, username, password string) error {
	token, err := a.backend.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if err := a.store.SetToken(token.AccessToken); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

// CurrentUser returns the account behind the stored token.
func (a *Authenticator) CurrentUser(ctx context.Context) (*models.User, error) {
	if !a.Authenticated() {
		return nil, fmt.Errorf("not logged in")
	}
	return a.backend.CurrentUser(ctx)
}

// Logout clears the persisted token.
func (a *Authenticator) Logout() error {
	return a.store.ClearToken()
}
