package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tres/internal/app"
	"github.com/thenoetrevino/tres/internal/config"
	"github.com/thenoetrevino/tres/internal/logging"
	"github.com/thenoetrevino/tres/internal/tui"
)

// DemoTitles are the todos seeded by --demo
var DemoTitles = []string{"Todo 10", "Todo 11", "Todo 12"}

// Options controls a single run of the board
type Options struct {
	// ConfigPath overrides the default config location when set
	ConfigPath string

	// ThemePath is an optional theme file merged over the config's theme
	ThemePath string

	// LogPath overrides the default log file when set
	LogPath string

	// Debug lowers the log level to debug
	Debug bool

	// Demo seeds Todo with DemoTitles
	Demo bool
}

// Launch starts the TUI application and blocks until it exits
func Launch(opts Options) error {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	// Initialize logging to file before anything else
	logFile, err := logging.Init(opts.LogPath, level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
		}
	}()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	appOpts := []app.Option{app.WithLogger(logging.Logger)}
	if opts.Demo {
		appOpts = append(appOpts, app.WithSeed(DemoTitles...))
	}

	application, err := app.New(ctx, appOpts...)
	if err != nil {
		return err
	}

	// The board lives only as long as the process
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing board", "error", err)
		}
	}()

	slog.Info("starting board", "demo", opts.Demo, "theme", cfg.ColorScheme.Preset)

	model := tui.InitialModel(ctx, application.BoardService, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			slog.Info("shutdown signal received, cleaning up")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}

	slog.Info("board closed")
	return nil
}

// LoadConfig reads the config file and merges the optional theme file over it
func LoadConfig(opts Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.ThemePath != "" {
		if err := cfg.MergeThemeFile(opts.ThemePath); err != nil {
			return nil, fmt.Errorf("failed to load theme: %w", err)
		}
	}

	return cfg, nil
}
