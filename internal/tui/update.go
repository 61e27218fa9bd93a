package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tres/internal/models"
	"github.com/thenoetrevino/tres/internal/tui/state"
)

// Update handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowResize(msg)
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// Forms need ALL messages
	if m.uiState.Mode() == state.AddItemMode || m.uiState.Mode() == state.EditItemMode {
		return m.updateItemForm(msg)
	}

	if msg, ok := msg.(tea.KeyPressMsg); ok {
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg dispatches key messages to the appropriate mode handler.
func (m Model) handleKeyMsg(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.uiState.Mode() {
	case state.NormalMode:
		return m.handleNormalMode(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	}
	return m, nil
}

// handleWindowResize handles terminal resize events.
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) {
	m.uiState.SetWidth(msg.Width)
	m.uiState.SetHeight(msg.Height)
	m.help.SetWidth(max(msg.Width-2, 0))

	visible := m.visibleRows()
	for _, stage := range models.Stages() {
		m.uiState.EnsureCursorVisible(stage, visible)
	}
}
