package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	DeckmineAPIKey string

	// Dictionaries
	DictionaryPath string

	// Upload limits
	MaxUploadBytes int64

	// Mining
	QuoteDedupPrefix int
	MinQuoteLen      int

	// Search
	SearchMinQueryLen   int
	SearchMaxResults    int
	SearchContextWindow int

	// Deck registry
	DeckTTL time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		DeckmineAPIKey: os.Getenv("DECKMINE_API_KEY"),

		DictionaryPath: os.Getenv("DICTIONARY_PATH"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 16777216), // 16MB

		QuoteDedupPrefix: envInt("QUOTE_DEDUP_PREFIX", 50),
		MinQuoteLen:      envInt("MIN_QUOTE_LEN", 20),

		SearchMinQueryLen:   envInt("SEARCH_MIN_QUERY_LEN", 2),
		SearchMaxResults:    envInt("SEARCH_MAX_RESULTS", 20),
		SearchContextWindow: envInt("SEARCH_CONTEXT_WINDOW", 30),

		DeckTTL: envDuration("DECK_TTL", 24*time.Hour),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 16777216
	}
	if cfg.QuoteDedupPrefix <= 0 {
		cfg.QuoteDedupPrefix = 50
	}
	if cfg.MinQuoteLen <= 0 {
		cfg.MinQuoteLen = 20
	}
	if cfg.SearchMinQueryLen <= 0 {
		cfg.SearchMinQueryLen = 2
	}
	if cfg.SearchMaxResults <= 0 {
		cfg.SearchMaxResults = 20
	}
	if cfg.SearchContextWindow <= 0 {
		cfg.SearchContextWindow = 30
	}
	if cfg.DeckTTL <= 0 {
		cfg.DeckTTL = 24 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DeckmineAPIKey == "" {
		return fmt.Errorf("DECKMINE_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
