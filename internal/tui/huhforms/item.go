package huhforms

import (
	"errors"
	"strings"
	"unicode/utf8"

	"charm.land/huh/v2"
)

// Prompt is the label of the single input field
const Prompt = "Todo text:"

// CreateItemForm creates a huh form with a single input for a todo's text.
// No confirmation field is used - the form saves on completion.
// Validation only runs for renames; an empty add is silently discarded.
func CreateItemForm(title *string, isEdit bool, maxLength int) *huh.Form {
	input := huh.NewInput().
		Key("title").
		Title(Prompt).
		Placeholder("What needs doing?").
		CharLimit(maxLength).
		Value(title)

	if isEdit {
		input = input.Validate(validateTitle(maxLength))
	}

	return huh.NewForm(huh.NewGroup(input)).WithShowHelp(false)
}

func validateTitle(maxLength int) func(string) error {
	return func(s string) error {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			return errors.New("text cannot be empty")
		}
		if utf8.RuneCountInString(trimmed) > maxLength {
			return errors.New("text is too long")
		}
		return nil
	}
}
