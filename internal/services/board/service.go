// Package board implements the operations of the three-stage todo board.
//
// Items are identified by their title. Duplicate titles are allowed and
// indistinguishable: every operation that names a title acts on the first
// occurrence in the given stage.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/tres/internal/database"
	"github.com/thenoetrevino/tres/internal/models"
)

// MaxTitleLength is the longest accepted title, in runes
const MaxTitleLength = 255

// Service defines all board operations
type Service interface {
	// Read operations
	Board(ctx context.Context) (map[models.Stage][]*models.Item, error)
	Items(ctx context.Context, stage models.Stage) ([]*models.Item, error)
	Count(ctx context.Context) (int, error)

	// Write operations
	Add(ctx context.Context, text string) (*models.Item, error)
	Seed(ctx context.Context, titles ...string) error
	Rename(ctx context.Context, title string, stage models.Stage, newTitle string) error
	Delete(ctx context.Context, title string, from models.Stage) error

	// Item movements
	Move(ctx context.Context, title string, from, to models.Stage) error
	MoveNext(ctx context.Context, title string, from models.Stage) (models.Stage, error)
	MovePrev(ctx context.Context, title string, from models.Stage) (models.Stage, error)
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	logger *slog.Logger
}

// NewService creates a new board service.
// A nil logger falls back to slog.Default().
func NewService(repo database.DataStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// Board returns a snapshot of all three stages
func (s *service) Board(ctx context.Context) (map[models.Stage][]*models.Item, error) {
	board := make(map[models.Stage][]*models.Item, len(models.Stages()))
	for _, stage := range models.Stages() {
		items, err := s.repo.ListItems(ctx, stage)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", stage, err)
		}
		board[stage] = items
	}
	return board, nil
}

// Items returns the ordered items of one stage
func (s *service) Items(ctx context.Context, stage models.Stage) ([]*models.Item, error) {
	if !stage.Valid() {
		return nil, models.ErrInvalidStage
	}
	return s.repo.ListItems(ctx, stage)
}

// Count returns the number of items across all stages
func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.CountAllItems(ctx)
}

// Add appends text to the Todo stage.
// Whitespace is trimmed; empty input is discarded and (nil, nil) is returned.
func (s *service) Add(ctx context.Context, text string) (*models.Item, error) {
	title, ok, err := normalizeTitle(text)
	if err != nil || !ok {
		return nil, err
	}

	item, err := s.repo.CreateItem(ctx, models.StageTodo, title)
	if err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}

	s.logger.Debug("item added", "title", title, "position", item.Position)
	return item, nil
}

// Seed adds each title to Todo in order, skipping empty ones
func (s *service) Seed(ctx context.Context, titles ...string) error {
	for _, title := range titles {
		if _, err := s.Add(ctx, title); err != nil {
			return err
		}
	}
	return nil
}

// Rename replaces the first occurrence of title in stage with newTitle.
// An empty title or an empty trimmed newTitle is a no-op.
func (s *service) Rename(ctx context.Context, title string, stage models.Stage, newTitle string) error {
	if title == "" {
		return nil
	}
	trimmed, ok, err := normalizeTitle(newTitle)
	if err != nil || !ok {
		return err
	}
	if trimmed == title {
		return nil
	}

	item, err := s.repo.FindFirstItem(ctx, stage, title)
	if err != nil {
		return err
	}

	if err := s.repo.RenameItem(ctx, item.ID, trimmed); err != nil {
		return fmt.Errorf("failed to rename item: %w", err)
	}

	s.logger.Debug("item renamed", "from", title, "to", trimmed, "stage", stage.String())
	return nil
}

// Delete removes the first occurrence of title from the stage.
// An empty title means nothing is selected and is a no-op.
func (s *service) Delete(ctx context.Context, title string, from models.Stage) error {
	if title == "" {
		return nil
	}

	item, err := s.repo.FindFirstItem(ctx, from, title)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteItem(ctx, item.ID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.logger.Debug("item deleted", "title", title, "stage", from.String())
	return nil
}

// Move relocates the first occurrence of title from one stage to the end of an adjacent one.
// An empty title means nothing is selected and is a no-op.
func (s *service) Move(ctx context.Context, title string, from, to models.Stage) error {
	if !from.Valid() || !to.Valid() {
		return models.ErrInvalidStage
	}
	if !from.AdjacentTo(to) {
		return ErrNotAdjacent
	}
	if title == "" {
		return nil
	}

	item, err := s.repo.FindFirstItem(ctx, from, title)
	if err != nil {
		return err
	}

	if err := s.repo.MoveItem(ctx, item.ID, to); err != nil {
		return fmt.Errorf("failed to move item: %w", err)
	}

	s.logger.Debug("item moved", "title", title, "from", from.String(), "to", to.String())
	return nil
}

// MoveNext moves title one stage to the right and returns the destination
func (s *service) MoveNext(ctx context.Context, title string, from models.Stage) (models.Stage, error) {
	to, ok := from.Next()
	if !ok {
		return from, models.ErrNoNextStage
	}
	return to, s.Move(ctx, title, from, to)
}

// MovePrev moves title one stage to the left and returns the destination
func (s *service) MovePrev(ctx context.Context, title string, from models.Stage) (models.Stage, error) {
	to, ok := from.Prev()
	if !ok {
		return from, models.ErrNoPrevStage
	}
	return to, s.Move(ctx, title, from, to)
}

// normalizeTitle trims text and reports whether anything is left
func normalizeTitle(text string) (string, bool, error) {
	title := strings.TrimSpace(text)
	if title == "" {
		return "", false, nil
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return "", false, ErrTitleTooLong
	}
	return title, true, nil
}
