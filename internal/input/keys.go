package input

// Key identifies a physical key or typed character. Named keys use their
// DOM-style names ("Enter", "ArrowUp"); printable characters are the
// character itself ("a", "A", " ", ".").
type Key string

// Named keys.
const (
	KeyEnter      Key = "Enter"
	KeyBackspace  Key = "Backspace"
	KeyEscape     Key = "Escape"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeySpace      Key = " "
)

// CharKey returns the key identifier for a typed character.
func CharKey(r rune) Key {
	return Key(string(r))
}

// Rune returns the character a printable key stands for, or false for named keys.
func (k Key) Rune() (rune, bool) {
	rs := []rune(string(k))
	if len(rs) != 1 {
		return 0, false
	}
	return rs[0], true
}

// Keys builds a key list from characters, e.g. Keys("wasd").
func Keys(chars string) []Key {
	out := make([]Key, 0, len(chars))
	for _, r := range chars {
		out = append(out, CharKey(r))
	}
	return out
}
