package state

import "github.com/thenoetrevino/tres/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	AddItemMode                   // "New Todo" dialog is open
	EditItemMode                  // Renaming the selected item
	DeleteConfirmMode             // Confirming item deletion
	HelpMode                      // Displaying help screen
)

// String returns a short label for the mode, shown in the status bar
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "NORMAL"
	case AddItemMode:
		return "ADD"
	case EditItemMode:
		return "EDIT"
	case DeleteConfirmMode:
		return "DELETE"
	case HelpMode:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// UIState manages the user interface state.
// This includes which column has focus, the cursor and scroll offset of
// every column, terminal dimensions, and the current interaction mode.
type UIState struct {
	// focused is the stage whose column currently has focus
	focused models.Stage

	// cursors tracks the selected row of each column.
	// A column keeps its cursor while focus is elsewhere.
	cursors map[models.Stage]int

	// scrollOffsets tracks the index of the first visible row of each column
	scrollOffsets map[models.Stage]int

	width  int
	height int

	mode Mode
}

// NewUIState creates a new UIState focused on the first column.
func NewUIState() *UIState {
	return &UIState{
		focused:       models.StageTodo,
		cursors:       make(map[models.Stage]int),
		scrollOffsets: make(map[models.Stage]int),
		mode:          NormalMode,
	}
}

// FocusedStage returns the stage whose column has focus.
func (s *UIState) FocusedStage() models.Stage {
	return s.focused
}

// SetFocusedStage moves focus to the given column. Invalid stages are ignored.
func (s *UIState) SetFocusedStage(stage models.Stage) {
	if !stage.Valid() {
		return
	}
	s.focused = stage
}

// Cursor returns the selected row of the given column.
func (s *UIState) Cursor(stage models.Stage) int {
	return s.cursors[stage]
}

// SetCursor updates the selected row of the given column.
func (s *UIState) SetCursor(stage models.Stage, index int) {
	s.cursors[stage] = max(index, 0)
}

// ClampCursor keeps the cursor of a column inside [0, count).
// An empty column resets its cursor and scroll offset to zero.
func (s *UIState) ClampCursor(stage models.Stage, count int) {
	if count <= 0 {
		s.cursors[stage] = 0
		s.scrollOffsets[stage] = 0
		return
	}
	if s.cursors[stage] >= count {
		s.cursors[stage] = count - 1
	}
	if s.scrollOffsets[stage] > s.cursors[stage] {
		s.scrollOffsets[stage] = s.cursors[stage]
	}
}

// ScrollOffset returns the index of the first visible row of the given column.
func (s *UIState) ScrollOffset(stage models.Stage) int {
	return s.scrollOffsets[stage]
}

// EnsureCursorVisible adjusts the scroll offset of a column so that its
// cursor lies within a window of visibleRows rows.
func (s *UIState) EnsureCursorVisible(stage models.Stage, visibleRows int) {
	visibleRows = max(visibleRows, 1)
	cursor := s.cursors[stage]
	offset := s.scrollOffsets[stage]

	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+visibleRows {
		offset = cursor - visibleRows + 1
	}
	s.scrollOffsets[stage] = max(offset, 0)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the columns.
// This is terminal height minus header and footer, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 2 // title + gap line
	const footerHeight = 2 // notification line + key help
	return max(s.height-headerHeight-footerHeight, 5)
}

// ColumnWidth returns the outer width of a single column so that all
// stages share the terminal width evenly.
func (s *UIState) ColumnWidth() int {
	const minColumnWidth = 16
	stages := len(models.Stages())
	return max(s.width/stages, minColumnWidth)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}
