package app

import (
	"log/slog"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger *slog.Logger
	seed   []string
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithSeed adds the given titles to Todo when the board is created
func WithSeed(titles ...string) Option {
	return func(cfg *appConfig) {
		cfg.seed = append(cfg.seed, titles...)
	}
}
