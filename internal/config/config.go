package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"klondike/internal/engine"
)

// Config holds server settings, loaded from the environment.
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DefaultMode string `env:"DEFAULT_MODE" envDefault:"draw-one"`
	AutoDraw    bool   `env:"AUTO_DRAW" envDefault:"true"`
	// BaseURL is the externally reachable URL used in QR codes. Empty
	// means derive it from the request host.
	BaseURL string `env:"BASE_URL"`
}

// Load reads and validates configuration from the environment.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := engine.ParseMode(c.DefaultMode); err != nil {
		return Config{}, fmt.Errorf("DEFAULT_MODE: %w", err)
	}
	if _, err := c.SlogLevel(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Mode returns the configured default game mode.
func (c Config) Mode() engine.GameMode {
	m, _ := engine.ParseMode(c.DefaultMode)
	return m
}

// SlogLevel maps the configured level name onto slog.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
}
