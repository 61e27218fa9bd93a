package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Items
	AddItem       string `yaml:"add_item"`
	EditItem      string `yaml:"edit_item"`
	DeleteItem    string `yaml:"delete_item"`
	MoveItemLeft  string `yaml:"move_item_left"`
	MoveItemRight string `yaml:"move_item_right"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevItem   string `yaml:"prev_item"`
	NextItem   string `yaml:"next_item"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Items
		AddItem:       "a",
		EditItem:      "e",
		DeleteItem:    "d",
		MoveItemLeft:  "H",
		MoveItemRight: "L",

		// Forms
		SaveForm: "ctrl+s",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevItem:   "k",
		NextItem:   "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fillKey(&k.AddItem, defaults.AddItem)
	fillKey(&k.EditItem, defaults.EditItem)
	fillKey(&k.DeleteItem, defaults.DeleteItem)
	fillKey(&k.MoveItemLeft, defaults.MoveItemLeft)
	fillKey(&k.MoveItemRight, defaults.MoveItemRight)
	fillKey(&k.SaveForm, defaults.SaveForm)
	fillKey(&k.PrevColumn, defaults.PrevColumn)
	fillKey(&k.NextColumn, defaults.NextColumn)
	fillKey(&k.PrevItem, defaults.PrevItem)
	fillKey(&k.NextItem, defaults.NextItem)
	fillKey(&k.ShowHelp, defaults.ShowHelp)
	fillKey(&k.Quit, defaults.Quit)
}

func fillKey(dst *string, fallback string) {
	if *dst == "" {
		*dst = fallback
	}
}
