package state

import "github.com/thenoetrevino/tres/internal/models"

// BoardState holds the items of every stage as last loaded from the service.
// It is a read-only snapshot; mutations go through the board service and are
// followed by a reload.
type BoardState struct {
	items map[models.Stage][]*models.Item
}

// NewBoardState creates a BoardState with every stage empty.
func NewBoardState() *BoardState {
	return &BoardState{items: make(map[models.Stage][]*models.Item)}
}

// Items returns the items of a stage ordered by position. Never nil.
func (s *BoardState) Items(stage models.Stage) []*models.Item {
	items, ok := s.items[stage]
	if !ok || items == nil {
		return []*models.Item{}
	}
	return items
}

// SetItems replaces the items of a stage.
func (s *BoardState) SetItems(stage models.Stage, items []*models.Item) {
	s.items[stage] = items
}

// SetAll replaces the whole snapshot.
func (s *BoardState) SetAll(board map[models.Stage][]*models.Item) {
	s.items = make(map[models.Stage][]*models.Item, len(board))
	for stage, items := range board {
		s.items[stage] = items
	}
}

// Count returns the number of items in a stage.
func (s *BoardState) Count(stage models.Stage) int {
	return len(s.items[stage])
}

// Total returns the number of items across all stages.
func (s *BoardState) Total() int {
	total := 0
	for _, items := range s.items {
		total += len(items)
	}
	return total
}

// ItemAt returns the item at index in a stage, or nil when out of range.
func (s *BoardState) ItemAt(stage models.Stage, index int) *models.Item {
	items := s.items[stage]
	if index < 0 || index >= len(items) {
		return nil
	}
	return items[index]
}
