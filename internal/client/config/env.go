package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables recognized for the store base URL. JOBTRACK_API_URL
// wins; API_URL is kept as a compatibility fallback for older deployment
// scripts.
const (
	envAPIURL       = "JOBTRACK_API_URL"
	envAPIURLLegacy = "API_URL"
)

// parseEnv overlays cfg with values from the process environment. A .env
// file in the working directory is loaded first, best-effort; a missing
// or malformed file is treated as "not set".
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAPIURL); v != "" {
		cfg.APIBaseURL = v
		return
	}
	if v := os.Getenv(envAPIURLLegacy); v != "" {
		cfg.APIBaseURL = v
	}
}
