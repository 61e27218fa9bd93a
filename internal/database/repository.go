package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/tres/internal/models"
)

// DataStore defines the unified interface for all data operations needed by the services.
// Consumers can depend on the smaller interfaces (ItemReader, ItemMover) instead.
type DataStore interface {
	ItemRepository
}

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*ItemRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ItemRepo: &ItemRepo{db: db},
	}
}

// Wrapper methods for ItemRepo

func (r *Repository) CreateItem(ctx context.Context, stage models.Stage, title string) (*models.Item, error) {
	return r.ItemRepo.Create(ctx, stage, title)
}

func (r *Repository) ListItems(ctx context.Context, stage models.Stage) ([]*models.Item, error) {
	return r.ItemRepo.ListByStage(ctx, stage)
}

func (r *Repository) FindFirstItem(ctx context.Context, stage models.Stage, title string) (*models.Item, error) {
	return r.ItemRepo.FindFirst(ctx, stage, title)
}

func (r *Repository) CountAllItems(ctx context.Context) (int, error) {
	return r.ItemRepo.Count(ctx)
}

func (r *Repository) RenameItem(ctx context.Context, id int, title string) error {
	return r.ItemRepo.Rename(ctx, id, title)
}

func (r *Repository) DeleteItem(ctx context.Context, id int) error {
	return r.ItemRepo.Delete(ctx, id)
}

func (r *Repository) MoveItem(ctx context.Context, id int, to models.Stage) error {
	return r.ItemRepo.Move(ctx, id, to)
}

var _ DataStore = (*Repository)(nil)
