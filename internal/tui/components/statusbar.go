package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tres/internal/tui/state"
)

type StatusBarProps struct {
	Width int
	Mode  state.Mode

	// Notification is shown in the middle of the bar when set
	Notification *state.Notification

	// Total is the number of items across all stages
	Total int
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: mode badge and the latest notification
// Right side: "{n} todos • press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	left := ModeBadgeStyle.Render(props.Mode.String())
	if props.Notification != nil {
		left = lipgloss.JoinHorizontal(lipgloss.Top, left, " ", RenderNotification(*props.Notification))
	}

	right := StatusBarStyle.Render(pluralizeTodos(props.Total) + " • press ? for help")

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gapWidth := max(props.Width-leftWidth-rightWidth, 1)

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
}

// RenderNotification renders a compact inline notification
func RenderNotification(n state.Notification) string {
	switch n.Level {
	case state.LevelError:
		return ErrorBannerStyle.Render("✖ " + n.Message)
	default:
		return InfoBannerStyle.Render("• " + n.Message)
	}
}

func pluralizeTodos(n int) string {
	if n == 1 {
		return "1 todo"
	}
	return fmt.Sprintf("%d todos", n)
}
