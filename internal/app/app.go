package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tres/internal/database"
	boardservice "github.com/thenoetrevino/tres/internal/services/board"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db     *sql.DB
	logger *slog.Logger

	// Service layer (business logic)
	BoardService boardservice.Service
}

// New opens a fresh in-memory board and wires the services around it.
// This is the single entry point for creating the application container.
func New(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	db, err := database.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	a := &App{
		db:           db,
		logger:       cfg.logger,
		BoardService: boardservice.NewService(database.NewRepository(db), cfg.logger),
	}

	if len(cfg.seed) > 0 {
		if err := a.BoardService.Seed(ctx, cfg.seed...); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to seed board: %w", err)
		}
		count, err := a.BoardService.Count(ctx)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to count seeded items: %w", err)
		}
		cfg.logger.Info("board seeded", "items", count)
	}

	return a, nil
}

// Close releases the board database. The board is gone afterwards.
func (a *App) Close() error {
	return a.db.Close()
}
