package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds environment-driven settings for the monitoring API.
type Config struct {
	DatabaseURL string
	Port        int
	BearerToken string

	// Detail-page row limit clamp. The take query parameter is clamped into
	// [TakeMin, TakeMax]; missing or unparsable input falls back to
	// TakeDefault first. Deployments tune these per audience.
	TakeMin     int
	TakeMax     int
	TakeDefault int

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		Port:        8080,
		TakeMin:     50,
		TakeMax:     1000,
		TakeDefault: 200,
		LogLevel:    "info",
		LogFormat:   "json",
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return cfg, errors.New("DATABASE_URL is required")
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	}

	var err error
	if cfg.TakeMin, err = intEnv("API_TAKE_MIN", cfg.TakeMin); err != nil {
		return cfg, err
	}
	if cfg.TakeMax, err = intEnv("API_TAKE_MAX", cfg.TakeMax); err != nil {
		return cfg, err
	}
	if cfg.TakeDefault, err = intEnv("API_TAKE_DEFAULT", cfg.TakeDefault); err != nil {
		return cfg, err
	}
	if cfg.TakeMin > cfg.TakeMax {
		return cfg, fmt.Errorf("API_TAKE_MIN %d exceeds API_TAKE_MAX %d", cfg.TakeMin, cfg.TakeMax)
	}

	cfg.BearerToken = os.Getenv("API_BEARER_TOKEN")

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.LogFormat = format
	}

	return cfg, nil
}

func intEnv(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback, fmt.Errorf("invalid %s: %s", key, s)
	}
	return v, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
