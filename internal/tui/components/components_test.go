package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tres/internal/config/colors"
	"github.com/thenoetrevino/tres/internal/models"
	"github.com/thenoetrevino/tres/internal/tui/state"
)

func init() {
	InitStyles(*colors.Default())
}

func items(titles ...string) []*models.Item {
	out := make([]*models.Item, 0, len(titles))
	for i, title := range titles {
		out = append(out, &models.Item{ID: i + 1, Title: title, Position: i})
	}
	return out
}

func TestRenderColumnHeader(t *testing.T) {
	tests := []struct {
		name     string
		stage    models.Stage
		count    int
		wantText string
	}{
		{"empty column", models.StageTodo, 0, "Todo (0)"},
		{"single item", models.StageInProgress, 1, "In Progress (1)"},
		{"many items", models.StageDone, 42, "Done (42)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := renderColumnHeader(tt.stage, tt.count, 40)
			if !strings.Contains(result, tt.wantText) {
				t.Errorf("renderColumnHeader() = %q, want to contain %q", result, tt.wantText)
			}
		})
	}
}

func TestRenderScrollIndicator(t *testing.T) {
	shown := renderScrollIndicator(true, "▲ more above")
	assert.Contains(t, shown, "more above")
	assert.True(t, strings.HasSuffix(shown, "\n"))

	assert.Equal(t, "\n", renderScrollIndicator(false, "▲ more above"))
}

func TestRenderColumn_Empty(t *testing.T) {
	result := RenderColumn(ColumnProps{
		Stage:  models.StageDone,
		Items:  items(),
		Width:  30,
		Height: 10,
	})

	assert.Contains(t, result, "Done (0)")
	assert.Contains(t, result, "No todos")
}

func TestRenderColumn_ShowsItemsInOrder(t *testing.T) {
	result := RenderColumn(ColumnProps{
		Stage:   models.StageTodo,
		Items:   items("Todo 10", "Todo 11"),
		Focused: true,
		Width:   30,
		Height:  10,
	})

	first := strings.Index(result, "Todo 10")
	second := strings.Index(result, "Todo 11")
	assert.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first)
	assert.Contains(t, result, cursorMarker+"Todo 10")
	assert.NotContains(t, result, "more above")
	assert.NotContains(t, result, "more below")
}

func TestRenderColumn_ScrollIndicators(t *testing.T) {
	// Height 7 leaves room for two rows
	result := RenderColumn(ColumnProps{
		Stage:        models.StageTodo,
		Items:        items("item-a", "item-b", "item-c", "item-d", "item-e"),
		Focused:      true,
		Cursor:       2,
		Width:        30,
		Height:       7,
		ScrollOffset: 1,
	})

	assert.Contains(t, result, "▲ more above")
	assert.Contains(t, result, "▼ more below")
	assert.Contains(t, result, "item-b")
	assert.Contains(t, result, "item-c")
	assert.NotContains(t, result, "item-a")
	assert.NotContains(t, result, "item-d")
}

func TestRenderColumn_UnfocusedHasNoMarker(t *testing.T) {
	result := RenderColumn(ColumnProps{
		Stage:  models.StageInProgress,
		Items:  items("Todo 10"),
		Width:  30,
		Height: 10,
	})

	// The remembered cursor row is underlined rune by rune
	assert.Contains(t, ansi.Strip(result), "Todo 10")
	assert.NotContains(t, result, cursorMarker)
}

func TestVisibleRows(t *testing.T) {
	assert.Equal(t, 1, VisibleRows(0))
	assert.Equal(t, 1, VisibleRows(ColumnOverhead))
	assert.Equal(t, 10, VisibleRows(ColumnOverhead+10))
}

func TestTruncateTitle(t *testing.T) {
	assert.Equal(t, "short", TruncateTitle("short", 10))
	assert.Equal(t, "", TruncateTitle("anything", 0))

	cut := TruncateTitle("a very long todo title", 8)
	assert.True(t, strings.HasSuffix(cut, ellipsis), "got %q", cut)
	assert.LessOrEqual(t, lipgloss.Width(cut), 8)
}

func TestRenderItem_PadsSelectedRow(t *testing.T) {
	row := RenderItem(ItemProps{
		Item:     &models.Item{Title: "Todo 10"},
		Width:    20,
		Selected: true,
	})

	assert.Contains(t, row, cursorMarker+"Todo 10")
	assert.Equal(t, 20, lipgloss.Width(row))
}

func TestRenderItem_PadsEveryRowKind(t *testing.T) {
	tests := []struct {
		name     string
		selected bool
		cursor   bool
		prefix   string
	}{
		{"selected", true, false, cursorMarker},
		{"inactive cursor", false, true, noMarker},
		{"plain", false, false, noMarker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := RenderItem(ItemProps{
				Item:     &models.Item{Title: "Todo 10"},
				Width:    20,
				Selected: tt.selected,
				Cursor:   tt.cursor,
			})

			plain := ansi.Strip(row)
			assert.True(t, strings.HasPrefix(plain, tt.prefix+"Todo 10"), "got %q", plain)
			assert.Equal(t, 20, lipgloss.Width(row))
		})
	}
}

func TestRenderStatusBar(t *testing.T) {
	note := state.Notification{Level: state.LevelError, Message: "boom"}
	bar := RenderStatusBar(StatusBarProps{
		Width:        80,
		Mode:         state.NormalMode,
		Notification: &note,
		Total:        3,
	})

	assert.Contains(t, bar, "NORMAL")
	assert.Contains(t, bar, "boom")
	assert.Contains(t, bar, "3 todos")
	assert.Contains(t, bar, "press ? for help")
}

func TestPluralizeTodos(t *testing.T) {
	assert.Equal(t, "0 todos", pluralizeTodos(0))
	assert.Equal(t, "1 todo", pluralizeTodos(1))
	assert.Equal(t, "2 todos", pluralizeTodos(2))
}

func TestRenderHelp(t *testing.T) {
	out := RenderHelp(HelpProps{
		Markdown: "# Help\n\n- **a** add a todo\n",
		Width:    60,
	})

	assert.Contains(t, out, "todo")
}
