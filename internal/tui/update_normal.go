package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	boardservice "github.com/thenoetrevino/tres/internal/services/board"
	"github.com/thenoetrevino/tres/internal/tui/huhforms"
	"github.com/thenoetrevino/tres/internal/tui/state"
)

// handleNormalMode dispatches key events in NormalMode to specific handlers.
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.notificationState.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.uiState.SetMode(state.HelpMode)
		return m, nil
	case key.Matches(msg, m.keys.Add):
		return m, m.openItemForm(false)
	case key.Matches(msg, m.keys.Edit):
		return m, m.openItemForm(true)
	case key.Matches(msg, m.keys.Delete):
		if m.selectedItem() != nil {
			m.uiState.SetMode(state.DeleteConfirmMode)
		}
		return m, nil
	case key.Matches(msg, m.keys.MoveRight):
		m.moveSelected(true)
		return m, nil
	case key.Matches(msg, m.keys.MoveLeft):
		m.moveSelected(false)
		return m, nil
	case key.Matches(msg, m.keys.PrevColumn):
		m.handleNavigateLeft()
		return m, nil
	case key.Matches(msg, m.keys.NextColumn):
		m.handleNavigateRight()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.handleNavigateUp()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.handleNavigateDown()
		return m, nil
	}

	return m, nil
}

// openItemForm opens the add dialog, or the rename dialog prefilled with the
// selected item. Editing with nothing selected is a no-op.
func (m *Model) openItemForm(isEdit bool) tea.Cmd {
	m.formState.Clear()

	if isEdit {
		item := m.selectedItem()
		if item == nil {
			return nil
		}
		m.formState.Title = item.Title
		m.formState.EditingTitle = item.Title
		m.formState.EditingStage = item.Stage
		m.uiState.SetMode(state.EditItemMode)
	} else {
		m.uiState.SetMode(state.AddItemMode)
	}

	m.formState.Form = huhforms.CreateItemForm(
		&m.formState.Title,
		isEdit,
		boardservice.MaxTitleLength,
	).WithTheme(huhforms.CreateTheme(m.config.ColorScheme))

	return m.formState.Form.Init()
}

// handleNavigateLeft moves focus to the previous column.
func (m *Model) handleNavigateLeft() {
	prev, ok := m.uiState.FocusedStage().Prev()
	if !ok {
		m.notificationState.Add(state.LevelInfo, "Already at the first column")
		return
	}
	m.uiState.SetFocusedStage(prev)
}

// handleNavigateRight moves focus to the next column.
func (m *Model) handleNavigateRight() {
	next, ok := m.uiState.FocusedStage().Next()
	if !ok {
		m.notificationState.Add(state.LevelInfo, "Already at the last column")
		return
	}
	m.uiState.SetFocusedStage(next)
}

// handleNavigateUp moves the cursor of the focused column up.
func (m *Model) handleNavigateUp() {
	stage := m.uiState.FocusedStage()
	cursor := m.uiState.Cursor(stage)
	if cursor == 0 {
		return
	}
	m.uiState.SetCursor(stage, cursor-1)
	m.uiState.EnsureCursorVisible(stage, m.visibleRows())
}

// handleNavigateDown moves the cursor of the focused column down.
func (m *Model) handleNavigateDown() {
	stage := m.uiState.FocusedStage()
	cursor := m.uiState.Cursor(stage)
	if cursor >= m.boardState.Count(stage)-1 {
		return
	}
	m.uiState.SetCursor(stage, cursor+1)
	m.uiState.EnsureCursorVisible(stage, m.visibleRows())
}
