// Package config provides runtime configuration values for the service.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the knobs read at startup.
type Config struct {
	DSN           string
	Addr          string
	SessionSecret string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads .env from the usual locations (current dir, parent and
// repo root, so running from cmd/server works too) and collects
// configuration from the environment with defaults.
func Load() Config {
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	return Config{
		DSN:           os.Getenv("DB_DSN"),
		Addr:          ":" + getenv("APP_PORT", "8080"),
		SessionSecret: getenv("SESSION_SECRET", "dev_fallback_secret"),
	}
}
