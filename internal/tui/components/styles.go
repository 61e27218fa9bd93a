// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tres/internal/config/colors"
	"github.com/thenoetrevino/tres/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of the three board columns
	ColumnStyle lipgloss.Style

	// ItemStyle defines an unselected row
	ItemStyle lipgloss.Style

	// SelectedItemStyle defines the row under the cursor of the focused column
	SelectedItemStyle lipgloss.Style

	// InactiveCursorStyle marks the remembered cursor of unfocused columns
	InactiveCursorStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, app header)
	TitleStyle lipgloss.Style

	// EmptyStyle defines the placeholder of an empty column
	EmptyStyle lipgloss.Style

	// CreateInputBoxStyle defines the base style for the add dialog (green border)
	CreateInputBoxStyle lipgloss.Style

	// EditInputBoxStyle defines the base style for the rename dialog (blue border)
	EditInputBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen (blue border)
	HelpBoxStyle lipgloss.Style

	// InfoBannerStyle defines the appearance of info notifications
	InfoBannerStyle lipgloss.Style

	// ErrorBannerStyle defines the appearance of error messages
	ErrorBannerStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// ModeBadgeStyle renders the current mode at the left of the status bar
	ModeBadgeStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	// Initialize theme colors
	theme.Init(scheme)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.ColumnBorder)).
		PaddingLeft(1).
		PaddingRight(1)

	ItemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SelectedItemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Title)).
		Background(lipgloss.Color(scheme.SelectedBg)).
		Bold(true)

	InactiveCursorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal)).
		Underline(true)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	EmptyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle)).
		Italic(true)

	// Dialog box styles
	CreateInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Create)).
		Padding(1)

	EditInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Edit)).
		Padding(1)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Delete)).
		Padding(1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Edit)).
		Padding(1, 2)

	// Banner styles for notifications
	InfoBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.InfoFg)).
		Background(lipgloss.Color(scheme.InfoBg)).
		Bold(true).
		Padding(0, 1)

	ErrorBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.ErrorFg)).
		Background(lipgloss.Color(scheme.ErrorBg)).
		Bold(true).
		Padding(0, 1)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	ModeBadgeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Background)).
		Background(lipgloss.Color(scheme.Accent)).
		Bold(true).
		Padding(0, 1)
}
