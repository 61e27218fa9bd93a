package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tres/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB opens a fresh in-memory board for a single test
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background())
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// createItems appends the titles to stage in order
func createItems(t *testing.T, repo *Repository, stage models.Stage, titles ...string) []*models.Item {
	t.Helper()
	items := make([]*models.Item, 0, len(titles))
	for _, title := range titles {
		item, err := repo.CreateItem(context.Background(), stage, title)
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

// titlesIn returns the ordered titles of a stage
func titlesIn(t *testing.T, repo *Repository, stage models.Stage) []string {
	t.Helper()
	items, err := repo.ListItems(context.Background(), stage)
	require.NoError(t, err)
	return models.Titles(items)
}

// positionsIn returns the ordered positions of a stage
func positionsIn(t *testing.T, repo *Repository, stage models.Stage) []int {
	t.Helper()
	items, err := repo.ListItems(context.Background(), stage)
	require.NoError(t, err)
	positions := make([]int, 0, len(items))
	for _, item := range items {
		positions = append(positions, item.Position)
	}
	return positions
}
