package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tres/internal/models"
	"github.com/thenoetrevino/tres/internal/tui/theme"
)

// ColumnOverhead is the number of lines a column spends on chrome:
// top border, header, top indicator, bottom indicator, bottom border.
const ColumnOverhead = 5

// columnFrameWidth is border plus horizontal padding
const columnFrameWidth = 4

// ColumnProps describes a single stage column
type ColumnProps struct {
	Stage models.Stage
	Items []*models.Item

	// Focused marks the column that receives navigation keys
	Focused bool

	// Cursor is the remembered row of this column
	Cursor int

	// Width and Height are the outer dimensions of the column
	Width  int
	Height int

	// ScrollOffset is the index of the first visible item
	ScrollOffset int
}

// VisibleRows returns how many items fit in a column of the given outer height
func VisibleRows(height int) int {
	return max(height-ColumnOverhead, 1)
}

// RenderColumn renders a complete column with its title and items
//
// Layout:
//
//	{Stage Name} ({count})
//	▲ (if scrolled down)
//	{Item 1}
//	{Item 2}
//	...
//	▼ (if more items below)
func RenderColumn(props ColumnProps) string {
	innerWidth := max(props.Width-columnFrameWidth, 1)

	var content strings.Builder
	content.WriteString(renderColumnHeader(props.Stage, len(props.Items), innerWidth))
	content.WriteString("\n")

	if len(props.Items) == 0 {
		content.WriteString("\n")
		content.WriteString(EmptyStyle.Render("No todos"))
	} else {
		visible := VisibleRows(props.Height)
		start := min(max(props.ScrollOffset, 0), len(props.Items)-1)
		end := min(start+visible, len(props.Items))

		content.WriteString(renderScrollIndicator(start > 0, "▲ more above"))

		rows := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			rows = append(rows, RenderItem(ItemProps{
				Item:     props.Items[i],
				Width:    innerWidth,
				Selected: props.Focused && i == props.Cursor,
				Cursor:   !props.Focused && i == props.Cursor,
			}))
		}
		content.WriteString(strings.Join(rows, "\n"))

		// Pad so the bottom indicator sits on the last content line
		if remaining := visible - len(rows); remaining > 0 {
			content.WriteString(strings.Repeat("\n", remaining))
		}
		if end < len(props.Items) {
			content.WriteString("\n")
			content.WriteString(IndicatorStyle.Render("▼ more below"))
		}
	}

	style := ColumnStyle.Width(props.Width)
	if props.Focused {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		// Subtract 2 for top and bottom borders since .Height() sets content area height
		style = style.Height(props.Height - 2)
	}

	return style.Render(content.String())
}

func renderColumnHeader(stage models.Stage, count int, width int) string {
	header := fmt.Sprintf("%s (%d)", stage, count)
	return TitleStyle.Render(TruncateTitle(header, width))
}

// renderScrollIndicator always occupies one line so rows do not jump
func renderScrollIndicator(show bool, text string) string {
	if !show {
		return "\n"
	}
	return IndicatorStyle.Render(text) + "\n"
}
