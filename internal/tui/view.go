package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tres/internal/models"
	"github.com/thenoetrevino/tres/internal/tui/components"
	"github.com/thenoetrevino/tres/internal/tui/layers"
	"github.com/thenoetrevino/tres/internal/tui/state"
	"github.com/thenoetrevino/tres/internal/tui/theme"
)

// View renders the current state of the application.
// The board is always the base layer; dialogs float above it.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.WindowTitle = windowTitle
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	stack := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewBoard()),
	}

	var modal *lipgloss.Layer
	switch m.uiState.Mode() {
	case state.AddItemMode, state.EditItemMode:
		modal = m.renderItemFormLayer()
	case state.DeleteConfirmMode:
		modal = m.renderDeleteConfirmLayer()
	case state.HelpMode:
		modal = m.renderHelpLayer()
	}
	if modal != nil {
		stack = append(stack, modal)
	}

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

// viewBoard renders the header, the three columns and the footer
func (m Model) viewBoard() string {
	header := components.TitleStyle.Render(windowTitle)

	columnHeight := m.uiState.ContentHeight()
	columnWidth := m.uiState.ColumnWidth()

	columns := make([]string, 0, len(models.Stages()))
	for _, stage := range models.Stages() {
		columns = append(columns, components.RenderColumn(components.ColumnProps{
			Stage:        stage,
			Items:        m.boardState.Items(stage),
			Focused:      stage == m.uiState.FocusedStage(),
			Cursor:       m.uiState.Cursor(stage),
			Width:        columnWidth,
			Height:       columnHeight,
			ScrollOffset: m.uiState.ScrollOffset(stage),
		}))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	var notification *state.Notification
	if latest, ok := m.notificationState.Latest(); ok {
		notification = &latest
	}
	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width:        m.uiState.Width(),
		Mode:         m.uiState.Mode(),
		Notification: notification,
		Total:        m.boardState.Total(),
	})
	keyHelp := components.StatusBarStyle.Render(m.help.View(m.keys))

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", board)

	// Constrain content to fit terminal height, leaving room for footer
	contentLines := strings.Split(content, "\n")
	maxContentLines := max(m.uiState.Height()-2, 1)
	if len(contentLines) > maxContentLines {
		contentLines = contentLines[:maxContentLines]
	}

	return strings.Join(contentLines, "\n") + "\n" + statusBar + "\n" + keyHelp
}

// renderItemFormLayer renders the "New Todo" or rename dialog as a layer
func (m Model) renderItemFormLayer() *lipgloss.Layer {
	if m.formState.Form == nil {
		return nil
	}

	title := "New Todo"
	boxStyle := components.CreateInputBoxStyle
	if m.formState.IsEditing() {
		title = "Edit Todo"
		boxStyle = components.EditInputBoxStyle
	}

	hint := components.StatusBarStyle.Render(
		fmt.Sprintf("enter/%s: save • esc: cancel", m.config.KeyMappings.SaveForm),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		components.TitleStyle.Render(title),
		"",
		m.formState.Form.View(),
		"",
		hint,
	)

	box := boxStyle.
		Width(layers.DialogWidth(m.uiState.Width(), 40, 70)).
		Render(content)

	return layers.CreateCenteredLayer(box, m.uiState.Width(), m.uiState.Height())
}

// renderDeleteConfirmLayer renders the delete confirmation dialog as a layer
func (m Model) renderDeleteConfirmLayer() *lipgloss.Layer {
	item := m.selectedItem()
	if item == nil {
		return nil
	}

	width := layers.DialogWidth(m.uiState.Width(), 40, 60)
	// Leave room for border, padding and the surrounding quotes
	title := components.TruncateTitle(item.Title, max(width-14, 1))

	box := components.DeleteConfirmBoxStyle.
		Width(width).
		Render(fmt.Sprintf("Delete '%s'?\n\n[y]es  [n]o", title))

	return layers.CreateCenteredLayer(box, m.uiState.Width(), m.uiState.Height())
}

// renderHelpLayer renders the glamour help screen as a layer
func (m Model) renderHelpLayer() *lipgloss.Layer {
	width := layers.DialogWidth(m.uiState.Width(), 50, 80)

	help := components.RenderHelp(components.HelpProps{
		Markdown: helpMarkdown(m.config.KeyMappings),
		Width:    width - 6,
	})

	box := components.HelpBoxStyle.
		Width(width).
		Render(help)

	return layers.CreateCenteredLayer(box, m.uiState.Width(), m.uiState.Height())
}
