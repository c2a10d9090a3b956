package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the binaries read from the environment. Secrets
// (DATABASE_URL) come from .env or the real environment; nothing is
// hardcoded.
type Config struct {
	// Addr is the authority's listen address.
	Addr string
	// DatabaseURL enables the Postgres balance store when set; empty keeps
	// the in-memory store.
	DatabaseURL string
	// ServerURL is where the client binary dials, e.g. ws://localhost:8080/ws.
	ServerURL string
	LogLevel  string
	// TurnDelay paces the AI and dealer turns so the table is watchable.
	TurnDelay time.Duration
}

// Load reads .env if present, then the environment. Malformed values fail
// fast rather than being silently defaulted.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:      getenv("BLACKJACK_ADDR", ":8080"),
		ServerURL: getenv("BLACKJACK_SERVER_URL", "ws://localhost:8080/ws"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		TurnDelay: time.Second,
	}
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	if raw := os.Getenv("TURN_DELAY_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms < 0 {
			return Config{}, fmt.Errorf("invalid TURN_DELAY_MS %q", raw)
		}
		cfg.TurnDelay = time.Duration(ms) * time.Millisecond
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
