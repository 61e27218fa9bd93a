package database

import (
	"context"

	"github.com/thenoetrevino/tres/internal/models"
)

// ItemReader defines read operations for items.
type ItemReader interface {
	ListItems(ctx context.Context, stage models.Stage) ([]*models.Item, error)
	FindFirstItem(ctx context.Context, stage models.Stage, title string) (*models.Item, error)
	CountAllItems(ctx context.Context) (int, error)
}

// ItemWriter defines write operations for items.
type ItemWriter interface {
	CreateItem(ctx context.Context, stage models.Stage, title string) (*models.Item, error)
	RenameItem(ctx context.Context, id int, title string) error
	DeleteItem(ctx context.Context, id int) error
}

// ItemMover defines operations for moving items between stages.
type ItemMover interface {
	MoveItem(ctx context.Context, id int, to models.Stage) error
}

// ItemRepository combines all item-related operations.
type ItemRepository interface {
	ItemReader
	ItemWriter
	ItemMover
}
