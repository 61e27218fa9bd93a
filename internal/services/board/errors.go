package board

import "errors"

// Board-related errors
var (
	// ErrNotAdjacent indicates a move between stages that are not next to each other
	ErrNotAdjacent = errors.New("items can only move to an adjacent stage")

	// ErrTitleTooLong indicates a title over MaxTitleLength runes
	ErrTitleTooLong = errors.New("item title cannot exceed 255 characters")
)
