package theme

import "github.com/thenoetrevino/tres/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Background     string
	Subtle         string
	Normal         string
	Title          string
	Create         string
	Edit           string
	Delete         string
	ColumnBorder   string
	SelectedBorder string
	SelectedBg     string
	InfoFg         string
	InfoBg         string
	ErrorFg        string
	ErrorBg        string

	// Monochrome is set when the active preset carries no color
	Monochrome bool
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Highlight = scheme.Accent
	Background = scheme.Background
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Title = scheme.Title
	Create = scheme.Create
	Edit = scheme.Edit
	Delete = scheme.Delete
	ColumnBorder = scheme.ColumnBorder
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
	Monochrome = scheme.IsMonochrome()
}
