package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tres/internal/config"
)

// KeyMap holds the normal mode bindings built from the configured key mappings.
// Arrow keys are always bound alongside the configured letters.
type KeyMap struct {
	Add        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	MoveLeft   key.Binding
	MoveRight  key.Binding
	PrevColumn key.Binding
	NextColumn key.Binding
	Up         key.Binding
	Down       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// NewKeyMap creates the key bindings for the given mappings
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys(km.AddItem),
			key.WithHelp(km.AddItem, "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys(km.EditItem),
			key.WithHelp(km.EditItem, "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys(km.DeleteItem),
			key.WithHelp(km.DeleteItem, "delete"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys(km.MoveItemLeft, "shift+left"),
			key.WithHelp(km.MoveItemLeft, "move left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys(km.MoveItemRight, "shift+right"),
			key.WithHelp(km.MoveItemRight, "move right"),
		),
		PrevColumn: key.NewBinding(
			key.WithKeys(km.PrevColumn, "left"),
			key.WithHelp(km.PrevColumn+"/←", "prev column"),
		),
		NextColumn: key.NewBinding(
			key.WithKeys(km.NextColumn, "right"),
			key.WithHelp(km.NextColumn+"/→", "next column"),
		),
		Up: key.NewBinding(
			key.WithKeys(km.PrevItem, "up"),
			key.WithHelp(km.PrevItem+"/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(km.NextItem, "down"),
			key.WithHelp(km.NextItem+"/↓", "down"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp is shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.MoveLeft, k.MoveRight, k.Help, k.Quit}
}

// FullHelp groups every binding by concern
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Edit, k.Delete},
		{k.MoveLeft, k.MoveRight},
		{k.PrevColumn, k.NextColumn, k.Up, k.Down},
		{k.Help, k.Quit},
	}
}

// helpMarkdown renders the help overlay source
func helpMarkdown(km config.KeyMappings) string {
	var b strings.Builder

	b.WriteString("# Simple Todo App\n\n")
	b.WriteString("Todos flow from **Todo** to **In Progress** to **Done**, one stage at a time.\n\n")

	b.WriteString("## Todos\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	fmt.Fprintf(&b, "| `%s` | add a todo to Todo |\n", km.AddItem)
	fmt.Fprintf(&b, "| `%s` | edit the selected todo |\n", km.EditItem)
	fmt.Fprintf(&b, "| `%s` | delete the selected todo |\n", km.DeleteItem)
	fmt.Fprintf(&b, "| `%s` / `shift+→` | move the selected todo right |\n", km.MoveItemRight)
	fmt.Fprintf(&b, "| `%s` / `shift+←` | move the selected todo left |\n", km.MoveItemLeft)

	b.WriteString("\n## Navigation\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	fmt.Fprintf(&b, "| `%s` / `←` | previous column |\n", km.PrevColumn)
	fmt.Fprintf(&b, "| `%s` / `→` | next column |\n", km.NextColumn)
	fmt.Fprintf(&b, "| `%s` / `↑` | previous todo |\n", km.PrevItem)
	fmt.Fprintf(&b, "| `%s` / `↓` | next todo |\n", km.NextItem)

	b.WriteString("\n## Dialogs\n\n")
	fmt.Fprintf(&b, "`enter` or `%s` saves, `esc` cancels.\n\n", km.SaveForm)
	fmt.Fprintf(&b, "Press `%s` or `esc` to close this help. `%s` quits.\n", km.ShowHelp, km.Quit)

	return b.String()
}
