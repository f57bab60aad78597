package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first if present; existing
// environment variables win over .env entries.
//
// Recognized variables:
//
//	GLOSSY_API_URL          backend base URL
//	GLOSSY_REQUEST_TIMEOUT  duration string, e.g. "10s"
//	GLOSSY_DB_PATH          local database file path
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("GLOSSY_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("GLOSSY_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("GLOSSY_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
}
