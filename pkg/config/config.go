package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is read once at startup and treated as immutable for the
// process lifetime.
type Config struct {
	Port string

	// Mapping provider
	MapsAPIKey  string
	MapsBaseURL string

	// Language-model backend
	LLMProvider string // "openai" or "gemini"
	LLMBaseURL  string // OpenAI-compatible endpoint, e.g. a local Ollama /v1
	LLMAPIKey   string
	LLMModel    string
	LLMTimeout  time.Duration

	// Pipeline tuning
	MaxResults         int
	SearchRadiusMeters int
	DetailLookupLimit  int
	DetailConcurrency  int
	SortByDistance     bool

	// HTTP layer
	AllowedOrigins    []string
	APIKey            string // X-API-Key check, disabled when empty
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Optional cache / rate-limit backend
	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration
}

func Load() (*Config, error) {
	// A missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),

		MapsAPIKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
		MapsBaseURL: getEnv("GOOGLE_MAPS_BASE_URL", "https://maps.googleapis.com/maps/api"),

		LLMProvider: getEnv("LLM_PROVIDER", "openai"),
		LLMBaseURL:  getEnv("LLM_BASE_URL", "http://localhost:11434/v1"),
		LLMAPIKey:   getEnv("LLM_API_KEY", "ollama"),
		LLMModel:    getEnv("LLM_MODEL", "gemma3:1b"),
		LLMTimeout:  getEnvDuration("LLM_TIMEOUT_SECONDS", 30*time.Second),

		MaxResults:         getEnvInt("MAX_LOCATIONS_RETURNED", 5),
		SearchRadiusMeters: getEnvInt("MAPS_SEARCH_RADIUS", 50000),
		DetailLookupLimit:  getEnvInt("DETAIL_LOOKUP_LIMIT", 10),
		DetailConcurrency:  getEnvInt("DETAIL_CONCURRENCY", 4),
		SortByDistance:     getEnvBool("SORT_BY_DISTANCE", false),

		AllowedOrigins:    splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8080")),
		APIKey:            os.Getenv("API_KEY"),
		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   getEnvDuration("RATE_LIMIT_WINDOW", time.Hour),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CacheTTL:      getEnvDuration("PLACE_CACHE_TTL_SECONDS", 10*time.Minute),
	}

	if cfg.MapsAPIKey == "" {
		return nil, fmt.Errorf("GOOGLE_MAPS_API_KEY environment variable is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvDuration reads a whole-second count, matching the original
// variable convention.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
