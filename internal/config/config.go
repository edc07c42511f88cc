// README: Config loader with env defaults for HTTP, AI models, and flight pricing.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	AI struct {
		GeminiKey    string
		PrimaryModel string
		JudgeModel   string
	}
	Flights struct {
		APIKey    string
		APISecret string
		BaseURL   string
		Live      bool
		Timeout   time.Duration
	}
	// DefaultOrigin is the fallback departure location when the request
	// context does not name one.
	DefaultOrigin string
}

func Load() (Config, error) {
	// Load .env if present; real env always wins.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRIPWISE_HTTP_ADDR", ":8080")
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	cfg.AI.PrimaryModel = envOrDefault("TRIPWISE_PRIMARY_MODEL", "gemini-2.0-flash")
	cfg.AI.JudgeModel = envOrDefault("TRIPWISE_JUDGE_MODEL", "gemini-2.0-flash-lite")
	cfg.Flights.APIKey = envOrDefault("AMADEUS_API_KEY", "")
	cfg.Flights.APISecret = envOrDefault("AMADEUS_API_SECRET", "")
	cfg.Flights.BaseURL = envOrDefault("AMADEUS_BASE_URL", "https://test.api.amadeus.com")
	cfg.Flights.Live = envOrDefaultBool("TRIPWISE_FLIGHTS_LIVE", false)
	cfg.Flights.Timeout = envOrDefaultDuration("TRIPWISE_FLIGHTS_TIMEOUT", 15*time.Second)
	cfg.DefaultOrigin = envOrDefault("TRIPWISE_DEFAULT_ORIGIN", "NYC")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
