package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the CinePulse client.
type Config struct {
	API   APIConfig
	Share ShareConfig
	Chat  ChatConfig
	Stub  StubConfig
	// DataDir holds the client's durable local state (watchlist, token).
	DataDir string
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ShareConfig holds share-link settings.
type ShareConfig struct {
	// LinkBase is prepended to the relative path returned by the backend to
	// form the absolute URL handed to the clipboard.
	LinkBase string
}

// ChatConfig tags chat turns with the calling surface.
type ChatConfig struct {
	Platform string
	Mode     string
}

// StubConfig holds settings for the local stub backend.
type StubConfig struct {
	Port      string
	RedisAddr string
	RedisDB   int
}

// DatabasePath returns the SQLite file for durable client state.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "cinepulse.db")
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	timeoutSec, _ := strconv.Atoi(getEnv("API_TIMEOUT_SECONDS", "15"))
	redisDB, _ := strconv.Atoi(getEnv("STUB_REDIS_DB", "0"))

	dataDir := getEnv("CINEPULSE_DATA_DIR", "")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dataDir = filepath.Join(home, ".cinepulse")
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8000"),
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
		Share: ShareConfig{
			LinkBase: getEnv("SHARE_LINK_BASE", "https://cinepulse.app"),
		},
		Chat: ChatConfig{
			Platform: getEnv("CHAT_PLATFORM", "cli"),
			Mode:     getEnv("CHAT_MODE", "discovery"),
		},
		Stub: StubConfig{
			Port:      getEnv("STUB_PORT", "8000"),
			RedisAddr: getEnv("STUB_REDIS_ADDR", "127.0.0.1:6379"),
			RedisDB:   redisDB,
		},
		DataDir: dataDir,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
