package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tres/internal/tui/state"
)

// handleDeleteConfirm handles the y/n prompt shown before deleting an item.
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.deleteSelected()
		m.uiState.SetMode(state.NormalMode)
	case "n", "N", "esc":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.uiState.SetMode(state.NormalMode)
	case msg.String() == "esc", msg.String() == "enter":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}
