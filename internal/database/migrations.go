package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/tres/internal/models"
)

// runMigrations creates the database schema and seeds the fixed stages
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create stages table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS stages (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			position INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create items table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			stage_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			FOREIGN KEY (stage_id) REFERENCES stages(id)
		)
	`)
	if err != nil {
		return err
	}

	// Create index for efficient queries
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_items_stage
		ON items(stage_id, position)
	`)
	if err != nil {
		return err
	}

	return seedStages(ctx, db)
}

// seedStages inserts the three board stages if the stages table is empty
func seedStages(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM stages").Scan(&count); err != nil {
		return err
	}

	// If stages exist, don't seed
	if count > 0 {
		return nil
	}

	for _, stage := range models.Stages() {
		_, err := db.ExecContext(ctx,
			"INSERT INTO stages (id, name, position) VALUES (?, ?, ?)",
			int(stage), stage.String(), int(stage),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
