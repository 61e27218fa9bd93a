package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/tres/internal/models"
)

const (
	cursorMarker = "▸ "
	noMarker     = "  "
	ellipsis     = "…"
)

// ItemProps describes how a single row should be drawn
type ItemProps struct {
	Item *models.Item

	// Width is the number of cells available for the row
	Width int

	// Selected marks the cursor of the focused column
	Selected bool

	// Cursor marks the remembered cursor of an unfocused column
	Cursor bool
}

// RenderItem renders a single item as one line, truncated to fit the column
//
//	▸ {Title}…
func RenderItem(props ItemProps) string {
	marker := noMarker
	if props.Selected {
		marker = cursorMarker
	}

	titleWidth := max(props.Width-lipgloss.Width(marker), 1)
	title := TruncateTitle(props.Item.Title, titleWidth)

	var padding string
	if pad := props.Width - lipgloss.Width(marker) - lipgloss.Width(title); pad > 0 {
		padding = strings.Repeat(" ", pad)
	}

	switch {
	case props.Selected:
		return SelectedItemStyle.Render(marker + title + padding)
	case props.Cursor:
		// Only the title is underlined
		return marker + InactiveCursorStyle.Render(title) + padding
	default:
		return ItemStyle.Render(marker + title + padding)
	}
}

// TruncateTitle shortens title to width cells, ending with an ellipsis when cut
func TruncateTitle(title string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(title, uint(width), ellipsis)
}
