package main

import (
	"errors"
	"os"
	"strings"
)

// Config is built once at startup and handed to the components that need it.
// Nothing reads the environment after loadConfig returns.
type Config struct {
	DatabaseURL string
	TokenSecret string
	Port        string
	CORSOrigins []string
	Production  bool
}

// loadConfig refuses to produce a config without the signing secret or the
// database DSN; the process must not come up in a state where it would fail
// these per request.
func loadConfig() (Config, error) {
	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		return Config{}, errors.New("ACCESS_TOKEN_SECRET is not set")
	}
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return Config{}, errors.New("DATABASE_URL is not set")
	}

	cfg := Config{
		DatabaseURL: dsn,
		TokenSecret: secret,
		Port:        getenv("PORT", "8080"),
		Production:  strings.EqualFold(os.Getenv("APP_ENV"), "production"),
	}

	// allow comma-separated list of origins
	for _, p := range strings.Split(getenv("CORS_ORIGIN", "http://localhost:5173"), ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
