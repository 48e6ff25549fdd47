package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ravenclaw900/dst-farming-ui/internal/plant"
)

// Config holds the application configuration.
type Config struct {
	FarmSize plant.FarmSize
	Format   string // "text" or "yaml"
	LogLevel slog.Level
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	farm, err := plant.ParseFarmSize(envOr("DST_FARM_SIZE", "3x3"))
	if err != nil {
		return nil, fmt.Errorf("invalid DST_FARM_SIZE: %w", err)
	}

	format, err := ParseFormat(envOr("DST_FORMAT", "text"))
	if err != nil {
		return nil, fmt.Errorf("invalid DST_FORMAT: %w", err)
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "warn"))
	if err != nil {
		return nil, err
	}

	return &Config{
		FarmSize: farm,
		Format:   format,
		LogLevel: level,
	}, nil
}

// ParseFormat validates an output format name.
func ParseFormat(s string) (string, error) {
	switch s {
	case "text", "yaml":
		return s, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text or yaml)", s)
	}
}

// Logger returns a text logger on stderr at the configured level.
func (c *Config) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel}))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
