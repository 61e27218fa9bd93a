package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tres/internal/models"
)

func TestOpen_SeedsStages(t *testing.T) {
	db := setupTestDB(t)

	rows, err := db.QueryContext(context.Background(), "SELECT id, name FROM stages ORDER BY position")
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var id int
		var name string
		require.NoError(t, rows.Scan(&id, &name))
		assert.Equal(t, len(names), id)
		names = append(names, name)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []string{"Todo", "In Progress", "Done"}, names)
}

func TestOpen_IsolatedBoards(t *testing.T) {
	repoA := NewRepository(setupTestDB(t))
	repoB := NewRepository(setupTestDB(t))

	createItems(t, repoA, models.StageTodo, "only in A")

	assert.Equal(t, []string{"only in A"}, titlesIn(t, repoA, models.StageTodo))
	assert.Empty(t, titlesIn(t, repoB, models.StageTodo), "each Open must start with an empty board")
}

func TestCreateItem_AppendsInOrder(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	items := createItems(t, repo, models.StageTodo, "first", "second", "third")

	assert.Equal(t, 0, items[0].Position)
	assert.Equal(t, 2, items[2].Position)
	assert.Equal(t, []string{"first", "second", "third"}, titlesIn(t, repo, models.StageTodo))
	assert.Equal(t, []int{0, 1, 2}, positionsIn(t, repo, models.StageTodo))
}

func TestCreateItem_InvalidStage(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.CreateItem(context.Background(), models.Stage(9), "nope")
	assert.ErrorIs(t, err, models.ErrInvalidStage)
}

func TestFindFirstItem_Duplicates(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	items := createItems(t, repo, models.StageTodo, "dup", "other", "dup")

	found, err := repo.FindFirstItem(context.Background(), models.StageTodo, "dup")
	require.NoError(t, err)
	assert.Equal(t, items[0].ID, found.ID, "should return the lowest-positioned match")

	_, err = repo.FindFirstItem(context.Background(), models.StageDone, "dup")
	assert.ErrorIs(t, err, models.ErrItemNotFound)
}

func TestMoveItem_BetweenStages(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	items := createItems(t, repo, models.StageTodo, "Todo 10", "Todo 11", "Todo 12")
	createItems(t, repo, models.StageInProgress, "already here")

	require.NoError(t, repo.MoveItem(ctx, items[0].ID, models.StageInProgress))

	assert.Equal(t, []string{"Todo 11", "Todo 12"}, titlesIn(t, repo, models.StageTodo))
	assert.Equal(t, []int{0, 1}, positionsIn(t, repo, models.StageTodo), "source positions must stay dense")
	assert.Equal(t, []string{"already here", "Todo 10"}, titlesIn(t, repo, models.StageInProgress))
	assert.Equal(t, []int{0, 1}, positionsIn(t, repo, models.StageInProgress))

	moved, err := repo.FindFirstItem(ctx, models.StageInProgress, "Todo 10")
	require.NoError(t, err)
	assert.Equal(t, items[0].ID, moved.ID)
	assert.Equal(t, models.StageInProgress, moved.Stage)
	assert.Equal(t, 1, moved.Position)
}

func TestMoveItem_SameStageNoOp(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	items := createItems(t, repo, models.StageTodo, "a", "b")

	require.NoError(t, repo.MoveItem(context.Background(), items[0].ID, models.StageTodo))
	assert.Equal(t, []string{"a", "b"}, titlesIn(t, repo, models.StageTodo))
}

func TestMoveItem_Missing(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	err := repo.MoveItem(context.Background(), 42, models.StageDone)
	assert.ErrorIs(t, err, models.ErrItemNotFound)

	err = repo.MoveItem(context.Background(), 42, models.Stage(-1))
	assert.ErrorIs(t, err, models.ErrInvalidStage)
}

func TestDeleteItem_CompactsPositions(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	items := createItems(t, repo, models.StageDone, "a", "b", "c")

	require.NoError(t, repo.DeleteItem(ctx, items[1].ID))

	assert.Equal(t, []string{"a", "c"}, titlesIn(t, repo, models.StageDone))
	assert.Equal(t, []int{0, 1}, positionsIn(t, repo, models.StageDone))

	err := repo.DeleteItem(ctx, items[1].ID)
	assert.ErrorIs(t, err, models.ErrItemNotFound)
}

func TestRenameItem(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	items := createItems(t, repo, models.StageTodo, "a", "b")

	require.NoError(t, repo.RenameItem(ctx, items[0].ID, "renamed"))
	assert.Equal(t, []string{"renamed", "b"}, titlesIn(t, repo, models.StageTodo))

	assert.ErrorIs(t, repo.RenameItem(ctx, 999, "x"), models.ErrItemNotFound)
}

func TestCountAllItems(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	total, err := repo.CountAllItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	createItems(t, repo, models.StageTodo, "a", "b")
	createItems(t, repo, models.StageDone, "c")

	total, err = repo.CountAllItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}
