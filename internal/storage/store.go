// Package storage holds the client's durable local state: the watchlist id
// set and the persisted auth token. Both survive restarts and are cleared
// explicitly on removal/logout.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const tokenKey = "auth_token"

// Store is the SQLite-backed local store.
type Store struct {
	db *sql.DB
}

// Open creates or opens the local store at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS watchlist (
			movie_id INTEGER PRIMARY KEY,
			added_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ---- Watchlist ----

// AddMovie inserts a movie id into the watchlist set. Idempotent.
func (s *Store) AddMovie(movieID int) error {
	_, err := s.db.Exec(`INSERT OR IGNORE INTO watchlist (movie_id) VALUES (?)`, movieID)
	if err != nil {
		return fmt.Errorf("add movie %d: %w", movieID, err)
	}
	return nil
}

// RemoveMovie deletes a movie id from the watchlist set. Idempotent.
func (s *Store) RemoveMovie(movieID int) error {
	_, err := s.db.Exec(`DELETE FROM watchlist WHERE movie_id = ?`, movieID)
	if err != nil {
		return fmt.Errorf("remove movie %d: %w", movieID, err)
	}
	return nil
}

// HasMovie reports whether a movie id is in the watchlist set.
func (s *Store) HasMovie(movieID int) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM watchlist WHERE movie_id = ?`, movieID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check movie %d: %w", movieID, err)
	}
	return true, nil
}

// ListMovies returns all watchlisted movie ids in insertion order.
func (s *Store) ListMovies() ([]int, error) {
	rows, err := s.db.Query(`SELECT movie_id FROM watchlist ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ---- Auth Token ----

// SetToken persists the auth token.
func (s *Store) SetToken(token string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		tokenKey, token,
	)
	if err != nil {
		return fmt.Errorf("set token: %w", err)
	}
	return nil
}

// Token returns the persisted auth token, or empty when logged out.
func (s *Store) Token() (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, tokenKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get token: %w", err)
	}
	return value, nil
}

// ClearToken removes the persisted auth token.
func (s *Store) ClearToken() error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, tokenKey)
	if err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
