package ui

import "github.com/silkroad-game/silkroad/internal/input"

// KeyMap lists the keys bound to each menu action.
type KeyMap struct {
	Confirm   []input.Key
	Next      []input.Key
	Previous  []input.Key
	Backspace []input.Key
}

// Settings configures the controller. DefaultSettings documents every default.
type Settings struct {
	// ColumnBreak is the option count above which menus split into two
	// columns; the second column starts at option index ColumnBreak.
	ColumnBreak int
	// PointerIndent is the gap left of each option for the pointer glyph.
	PointerIndent float64
	Pointer       string
	Caret         string
	// TextAlphabet is the set of characters GetTextInput accepts.
	TextAlphabet string

	MenuNote   string
	DialogNote string
	InputNote  string

	Keys KeyMap
}

// DefaultSettings returns the stock controller settings.
func DefaultSettings() Settings {
	return Settings{
		ColumnBreak:   10,
		PointerIndent: 20,
		Pointer:       "→",
		Caret:         "_",
		TextAlphabet:  "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ .-",
		MenuNote:      "Use arrow keys to select option then press enter.",
		DialogNote:    "Press enter to continue.",
		InputNote:     "Type in response then press enter.",
		Keys: KeyMap{
			Confirm:   []input.Key{input.KeyEnter},
			Next:      append([]input.Key{input.KeyArrowDown, input.KeyArrowRight}, input.Keys("sd")...),
			Previous:  append([]input.Key{input.KeyArrowUp, input.KeyArrowLeft}, input.Keys("wa")...),
			Backspace: []input.Key{input.KeyBackspace},
		},
	}
}
