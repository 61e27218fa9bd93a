package models

import "errors"

// Domain-specific errors for board operations
var (
	// ErrNoNextStage indicates that the item is already in the last stage
	ErrNoNextStage = errors.New("item is already in the last stage")

	// ErrNoPrevStage indicates that the item is already in the first stage
	ErrNoPrevStage = errors.New("item is already in the first stage")

	// ErrItemNotFound indicates that no item with the given title exists in the stage
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidStage indicates a stage value outside Todo..Done
	ErrInvalidStage = errors.New("invalid stage")
)
