package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tres/internal/tui/state"
)

// updateItemForm handles all messages when the add or rename dialog is open
func (m Model) updateItemForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.formState.Form == nil {
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.closeItemForm()
			return m, nil
		case m.config.KeyMappings.SaveForm:
			// Quick save via C-s
			m.formState.Form.State = huh.StateCompleted
			m.submitItemForm()
			return m, nil
		}
	}

	// Forward to form
	model, cmd := m.formState.Form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.formState.Form = form
	}

	switch m.formState.Form.State {
	case huh.StateCompleted:
		m.submitItemForm()
		return m, nil
	case huh.StateAborted:
		m.closeItemForm()
		return m, nil
	}

	return m, cmd
}

// submitItemForm applies the dialog and returns to normal mode
func (m *Model) submitItemForm() {
	text := m.formState.Title

	if m.formState.IsEditing() {
		m.renameItem(m.formState.EditingTitle, m.formState.EditingStage, text)
	} else {
		m.addItem(text)
	}

	m.closeItemForm()
}

// closeItemForm discards the dialog without touching the board
func (m *Model) closeItemForm() {
	m.formState.Clear()
	m.uiState.SetMode(state.NormalMode)
}
