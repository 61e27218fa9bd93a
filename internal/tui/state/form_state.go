package state

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tres/internal/models"
)

// FormState manages the add/rename dialog.
// Title is bound to the huh input, so it always reflects what was typed.
type FormState struct {
	Form  *huh.Form
	Title string

	// EditingTitle and EditingStage identify the item being renamed.
	// EditingTitle is empty while adding.
	EditingTitle string
	EditingStage models.Stage
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// IsEditing reports whether the dialog renames an existing item.
func (s *FormState) IsEditing() bool {
	return s.EditingTitle != ""
}

// Clear resets the form and its bound values.
func (s *FormState) Clear() {
	s.Form = nil
	s.Title = ""
	s.EditingTitle = ""
	s.EditingStage = models.StageTodo
}
