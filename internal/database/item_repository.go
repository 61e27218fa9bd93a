package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/tres/internal/models"
)

// ============================================================================
// Item Operations
// ============================================================================

// ItemRepo handles all item-related database operations.
// Positions within a stage are kept dense: 0..n-1 with no gaps.
type ItemRepo struct {
	db *sql.DB
}

const itemColumns = `id, title, stage_id, position`

// Create appends a new item to the end of the given stage
func (r *ItemRepo) Create(ctx context.Context, stage models.Stage, title string) (*models.Item, error) {
	if !stage.Valid() {
		return nil, models.ErrInvalidStage
	}

	var item *models.Item
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		position, err := countInStage(ctx, tx, stage)
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO items (title, stage_id, position) VALUES (?, ?, ?)`,
			title, int(stage), position,
		)
		if err != nil {
			return err
		}

		id, err := result.LastInsertId()
		if err != nil {
			return err
		}

		item = &models.Item{
			ID:       int(id),
			Title:    title,
			Stage:    stage,
			Position: position,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

// ListByStage retrieves all items in a stage, ordered by position
func (r *ItemRepo) ListByStage(ctx context.Context, stage models.Stage) ([]*models.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+`
		 FROM items
		 WHERE stage_id = ?
		 ORDER BY position`,
		int(stage),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// FindFirst returns the lowest-positioned item in stage whose title matches exactly
func (r *ItemRepo) FindFirst(ctx context.Context, stage models.Stage, title string) (*models.Item, error) {
	item, err := scanItem(r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+`
		 FROM items
		 WHERE stage_id = ? AND title = ?
		 ORDER BY position
		 LIMIT 1`,
		int(stage), title,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrItemNotFound
	}
	return item, err
}

// Move relocates an item to the end of another stage.
// The source stage's positions are compacted in the same transaction.
func (r *ItemRepo) Move(ctx context.Context, id int, to models.Stage) error {
	if !to.Valid() {
		return models.ErrInvalidStage
	}

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		from, position, err := locate(ctx, tx, id)
		if err != nil {
			return err
		}
		if from == to {
			return nil
		}

		if err := closeGap(ctx, tx, from, position); err != nil {
			return err
		}

		newPosition, err := countInStage(ctx, tx, to)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE items SET stage_id = ?, position = ? WHERE id = ?`,
			int(to), newPosition, id,
		)
		return err
	})
}

// Delete removes an item and compacts the positions behind it
func (r *ItemRepo) Delete(ctx context.Context, id int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		stage, position, err := locate(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id); err != nil {
			return err
		}

		return closeGap(ctx, tx, stage, position)
	})
}

// Rename replaces an item's title without changing its position
func (r *ItemRepo) Rename(ctx context.Context, id int, title string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE items SET title = ? WHERE id = ?`, title, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrItemNotFound
	}
	return nil
}

// Count returns the number of items on the whole board
func (r *ItemRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM items").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// locate returns the current stage and position of an item inside a transaction
func locate(ctx context.Context, tx *sql.Tx, id int) (models.Stage, int, error) {
	var stageID, position int
	err := tx.QueryRowContext(ctx,
		`SELECT stage_id, position FROM items WHERE id = ?`, id,
	).Scan(&stageID, &position)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, models.ErrItemNotFound
	}
	if err != nil {
		return 0, 0, err
	}
	return models.Stage(stageID), position, nil
}

// closeGap shifts every item after position up by one
func closeGap(ctx context.Context, tx *sql.Tx, stage models.Stage, position int) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE items SET position = position - 1 WHERE stage_id = ? AND position > ?`,
		int(stage), position,
	)
	return err
}

func countInStage(ctx context.Context, tx *sql.Tx, stage models.Stage) (int, error) {
	var count int
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM items WHERE stage_id = ?`, int(stage),
	).Scan(&count)
	return count, err
}
