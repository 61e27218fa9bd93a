package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/thenoetrevino/tres/internal/tui/theme"
)

type HelpProps struct {
	Markdown string
	Width    int
}

type rendererKey struct {
	width int
	style string
}

// Cache Glamour renderers by width and style to avoid expensive re-creation
var (
	rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	key := rendererKey{width: width, style: helpStyleName()}

	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(key.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(key, renderer)
	return renderer, nil
}

func helpStyleName() string {
	if theme.Monochrome {
		return styles.NoTTYStyle
	}
	return styles.DarkStyle
}

// RenderHelp renders the help markdown, falling back to the raw text
// when glamour cannot render it
func RenderHelp(props HelpProps) string {
	renderer, err := getRenderer(max(props.Width, 20))
	if err == nil {
		rendered, err := renderer.Render(props.Markdown)
		if err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return props.Markdown
}
