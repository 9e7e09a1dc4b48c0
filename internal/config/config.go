// Package config loads runtime configuration from environment variables.
// main loads a .env file first (when present), so local development needs
// no exported shell variables.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds everything the server needs to start. Every field has a
// sensible default; a bare `go run ./cmd/server` works out of the box.
type Config struct {
	Port        int
	DBPath      string
	TemplateDir string
	StaticDir   string
	LogLevel    slog.Level
}

func Load() Config {
	return Config{
		Port:        envOrInt("PORT", 8080),
		DBPath:      envOr("DB_PATH", "data/health.db"),
		TemplateDir: envOr("TEMPLATE_DIR", "web/templates"),
		StaticDir:   envOr("STATIC_DIR", "web/static"),
		LogLevel:    parseLevel(envOr("LOG_LEVEL", "debug")),
	}
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseLevel(value string) slog.Level {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
