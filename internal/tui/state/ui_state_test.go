package state

import (
	"testing"

	"github.com/thenoetrevino/tres/internal/models"
)

// TestNewUIState_Defaults ensures a fresh state focuses the first column in normal mode.
func TestNewUIState_Defaults(t *testing.T) {
	state := NewUIState()

	if state.FocusedStage() != models.StageTodo {
		t.Errorf("FocusedStage() = %v, want %v", state.FocusedStage(), models.StageTodo)
	}
	if state.Mode() != NormalMode {
		t.Errorf("Mode() = %v, want NormalMode", state.Mode())
	}
	for _, stage := range models.Stages() {
		if state.Cursor(stage) != 0 {
			t.Errorf("Cursor(%v) = %d, want 0", stage, state.Cursor(stage))
		}
	}
}

// TestSetFocusedStage_IgnoresInvalid ensures focus never leaves the three columns.
func TestSetFocusedStage_IgnoresInvalid(t *testing.T) {
	state := NewUIState()
	state.SetFocusedStage(models.StageDone)
	state.SetFocusedStage(models.Stage(42))

	if state.FocusedStage() != models.StageDone {
		t.Errorf("FocusedStage() = %v, want %v", state.FocusedStage(), models.StageDone)
	}
}

// TestCursor_PerColumn ensures each column remembers its own cursor.
func TestCursor_PerColumn(t *testing.T) {
	state := NewUIState()
	state.SetCursor(models.StageTodo, 2)
	state.SetCursor(models.StageDone, 1)

	if state.Cursor(models.StageTodo) != 2 {
		t.Errorf("Cursor(Todo) = %d, want 2", state.Cursor(models.StageTodo))
	}
	if state.Cursor(models.StageInProgress) != 0 {
		t.Errorf("Cursor(InProgress) = %d, want 0", state.Cursor(models.StageInProgress))
	}
	if state.Cursor(models.StageDone) != 1 {
		t.Errorf("Cursor(Done) = %d, want 1", state.Cursor(models.StageDone))
	}
}

// TestSetCursor_NegativeClampsToZero ensures the cursor is never negative.
func TestSetCursor_NegativeClampsToZero(t *testing.T) {
	state := NewUIState()
	state.SetCursor(models.StageTodo, -3)

	if state.Cursor(models.StageTodo) != 0 {
		t.Errorf("Cursor(Todo) = %d, want 0", state.Cursor(models.StageTodo))
	}
}

// TestClampCursor ensures the cursor stays inside the column after items disappear.
func TestClampCursor(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
		count  int
		want   int
	}{
		{"inside range", 1, 3, 1},
		{"past end", 5, 3, 2},
		{"empty column", 4, 0, 0},
		{"last removed", 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewUIState()
			state.SetCursor(models.StageInProgress, tt.cursor)
			state.ClampCursor(models.StageInProgress, tt.count)

			if got := state.Cursor(models.StageInProgress); got != tt.want {
				t.Errorf("Cursor() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestEnsureCursorVisible ensures the scroll window follows the cursor in both directions.
func TestEnsureCursorVisible(t *testing.T) {
	state := NewUIState()

	state.SetCursor(models.StageTodo, 7)
	state.EnsureCursorVisible(models.StageTodo, 3)
	if got := state.ScrollOffset(models.StageTodo); got != 5 {
		t.Errorf("ScrollOffset after scrolling down = %d, want 5", got)
	}

	state.SetCursor(models.StageTodo, 2)
	state.EnsureCursorVisible(models.StageTodo, 3)
	if got := state.ScrollOffset(models.StageTodo); got != 2 {
		t.Errorf("ScrollOffset after scrolling up = %d, want 2", got)
	}

	state.SetCursor(models.StageTodo, 3)
	state.EnsureCursorVisible(models.StageTodo, 3)
	if got := state.ScrollOffset(models.StageTodo); got != 2 {
		t.Errorf("ScrollOffset with cursor already visible = %d, want 2", got)
	}
}

// TestEnsureCursorVisible_ZeroRows treats a degenerate window as one row.
func TestEnsureCursorVisible_ZeroRows(t *testing.T) {
	state := NewUIState()
	state.SetCursor(models.StageDone, 4)
	state.EnsureCursorVisible(models.StageDone, 0)

	if got := state.ScrollOffset(models.StageDone); got != 4 {
		t.Errorf("ScrollOffset() = %d, want 4", got)
	}
}

// TestContentHeight_Minimum ensures tiny terminals still get room for a column.
func TestContentHeight_Minimum(t *testing.T) {
	state := NewUIState()
	state.SetHeight(3)

	if got := state.ContentHeight(); got != 5 {
		t.Errorf("ContentHeight() = %d, want 5", got)
	}

	state.SetHeight(40)
	if got := state.ContentHeight(); got != 36 {
		t.Errorf("ContentHeight() = %d, want 36", got)
	}
}

// TestColumnWidth ensures the three columns split the terminal evenly.
func TestColumnWidth(t *testing.T) {
	state := NewUIState()
	state.SetWidth(120)
	if got := state.ColumnWidth(); got != 40 {
		t.Errorf("ColumnWidth() = %d, want 40", got)
	}

	state.SetWidth(10)
	if got := state.ColumnWidth(); got != 16 {
		t.Errorf("ColumnWidth() on narrow terminal = %d, want 16", got)
	}
}

func TestModeString(t *testing.T) {
	if NormalMode.String() != "NORMAL" {
		t.Errorf("NormalMode.String() = %q", NormalMode.String())
	}
	if Mode(99).String() != "UNKNOWN" {
		t.Errorf("Mode(99).String() = %q", Mode(99).String())
	}
}
