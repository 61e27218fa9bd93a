package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tres/internal/config"
	"github.com/thenoetrevino/tres/internal/models"
	boardservice "github.com/thenoetrevino/tres/internal/services/board"
	"github.com/thenoetrevino/tres/internal/tui/components"
	"github.com/thenoetrevino/tres/internal/tui/state"
)

// Timeout constant for database operations
const timeoutDB = 5 * time.Second

// windowTitle is shown in the terminal title bar
const windowTitle = "Simple Todo App"

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	board  boardservice.Service
	config *config.Config
	keys   KeyMap
	help   help.Model

	uiState           *state.UIState
	boardState        *state.BoardState
	formState         *state.FormState
	notificationState *state.NotificationState
}

// InitialModel creates and initializes the TUI model with data from the board service
func InitialModel(ctx context.Context, svc boardservice.Service, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	components.InitStyles(cfg.ColorScheme)

	m := Model{
		ctx:               ctx,
		board:             svc,
		config:            cfg,
		keys:              NewKeyMap(cfg.KeyMappings),
		help:              help.New(),
		uiState:           state.NewUIState(),
		boardState:        state.NewBoardState(),
		formState:         state.NewFormState(),
		notificationState: state.NewNotificationState(),
	}
	m.reload()

	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// dbContext creates a child context with timeout for database operations
func (m *Model) dbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.ctx, timeoutDB)
}

// reload refreshes all three columns from the service and clamps every cursor
func (m *Model) reload() {
	ctx, cancel := m.dbContext()
	defer cancel()

	board, err := m.board.Board(ctx)
	if err != nil {
		slog.Error("Error loading board", "error", err)
		m.notificationState.Add(state.LevelError, "Could not load the board")
		return
	}
	m.boardState.SetAll(board)

	visible := m.visibleRows()
	for _, stage := range models.Stages() {
		m.uiState.ClampCursor(stage, m.boardState.Count(stage))
		m.uiState.EnsureCursorVisible(stage, visible)
	}
}

// reloadStages refreshes only the given columns, leaving the rest of the
// snapshot as it was. Used after a mutation that touched known stages.
func (m *Model) reloadStages(stages ...models.Stage) {
	ctx, cancel := m.dbContext()
	defer cancel()

	visible := m.visibleRows()
	for _, stage := range stages {
		items, err := m.board.Items(ctx, stage)
		if err != nil {
			slog.Error("Error reloading stage", "stage", stage.String(), "error", err)
			m.notificationState.Add(state.LevelError, "Could not load the board")
			return
		}
		m.boardState.SetItems(stage, items)
		m.uiState.ClampCursor(stage, m.boardState.Count(stage))
		m.uiState.EnsureCursorVisible(stage, visible)
	}
}

// visibleRows returns how many items fit in one column at the current size
func (m *Model) visibleRows() int {
	return components.VisibleRows(m.uiState.ContentHeight())
}

// selectedItem returns the item under the cursor of the focused column
// Returns nil if the focused column is empty
func (m *Model) selectedItem() *models.Item {
	stage := m.uiState.FocusedStage()
	return m.boardState.ItemAt(stage, m.uiState.Cursor(stage))
}

// addItem appends text to Todo. Blank text is silently discarded.
func (m *Model) addItem(text string) {
	ctx, cancel := m.dbContext()
	defer cancel()

	item, err := m.board.Add(ctx, text)
	if err != nil {
		m.reportError("Could not add todo", err)
		return
	}
	if item == nil {
		return
	}
	m.reloadStages(item.Stage)
}

// renameItem changes the text of the first item titled title in stage
func (m *Model) renameItem(title string, stage models.Stage, newTitle string) {
	ctx, cancel := m.dbContext()
	defer cancel()

	if err := m.board.Rename(ctx, title, stage, newTitle); err != nil {
		m.reportError("Could not rename todo", err)
		return
	}
	m.reloadStages(stage)
}

// deleteSelected removes the selected item. No selection is a no-op.
func (m *Model) deleteSelected() {
	item := m.selectedItem()
	if item == nil {
		return
	}

	ctx, cancel := m.dbContext()
	defer cancel()

	if err := m.board.Delete(ctx, item.Title, item.Stage); err != nil {
		m.reportError("Could not delete todo", err)
		return
	}
	m.reloadStages(item.Stage)
}

// moveSelected moves the selected item one stage right (forward) or left.
// The selection follows the item into its new column, where it is last.
func (m *Model) moveSelected(forward bool) {
	item := m.selectedItem()
	if item == nil {
		return
	}

	ctx, cancel := m.dbContext()
	defer cancel()

	var to models.Stage
	var err error
	if forward {
		to, err = m.board.MoveNext(ctx, item.Title, item.Stage)
	} else {
		to, err = m.board.MovePrev(ctx, item.Title, item.Stage)
	}

	switch {
	case errors.Is(err, models.ErrNoNextStage):
		m.notificationState.Add(state.LevelInfo, "Already in the last stage")
		return
	case errors.Is(err, models.ErrNoPrevStage):
		m.notificationState.Add(state.LevelInfo, "Already in the first stage")
		return
	case err != nil:
		m.reportError("Could not move todo", err)
		return
	}

	m.reloadStages(item.Stage, to)

	// Move selection to follow the item
	m.uiState.SetFocusedStage(to)
	m.uiState.SetCursor(to, m.boardState.Count(to)-1)
	m.uiState.EnsureCursorVisible(to, m.visibleRows())
}

// reportError logs err and shows a user-facing message
func (m *Model) reportError(message string, err error) {
	slog.Error(message, "error", err)

	switch {
	case errors.Is(err, boardservice.ErrTitleTooLong):
		message += ": text is too long"
	case errors.Is(err, models.ErrItemNotFound):
		message += ": it no longer exists"
	}
	m.notificationState.Add(state.LevelError, message)
}
