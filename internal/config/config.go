// Package config loads server settings from the environment.
package config

import "os"

// Config holds all server settings. Every field has a sensible local-dev
// default so `go run ./cmd/server` works with an empty environment.
type Config struct {
	Port     string
	LogLevel string

	// UseMemoryStore selects the in-memory store over Firestore.
	UseMemoryStore bool
	ProjectID      string

	// SkipAuth disables JWT verification and trusts the X-User-ID header.
	SkipAuth  bool
	JWTSecret string

	AnthropicAPIKey string
	AdvisorModel    string

	// DigestCron is the cron expression for the weekly digest run.
	DigestCron string
}

// Load reads the configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8111"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		UseMemoryStore:  os.Getenv("USE_MEMORY_STORE") == "true" || os.Getenv("ENV") == "local",
		ProjectID:       getEnv("GOOGLE_CLOUD_PROJECT", ""),
		SkipAuth:        os.Getenv("SKIP_AUTH") == "true",
		JWTSecret:       getEnv("JWT_SECRET", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AdvisorModel:    getEnv("ADVISOR_MODEL", ""),
		DigestCron:      getEnv("DIGEST_CRON", "0 8 * * MON"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
