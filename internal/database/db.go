// Package database handles the initialization and connection to the SQLite db
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// memoryDSN returns a DSN for a private, named in-memory database.
// The board lives only as long as the process; nothing is written to disk.
func memoryDSN() string {
	return fmt.Sprintf("file:tres-%s?mode=memory&cache=shared", uuid.NewString())
}

// Open creates a fresh in-memory board database and runs migrations
func Open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", memoryDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// The memory database disappears with its last connection,
	// so the pool is pinned to a single connection that never expires.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Enable foreign key constraints
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		slog.Error("Failed to enable foreign keys", "error", err)
		closeDB(db)
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
