package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard reports physical key transitions for the current tick. The
// ebiten implementation reads inpututil; tests drive their own.
type Keyboard interface {
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key
	IsKeyPressed(key ebiten.Key) bool
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (ebitenKeyboard) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustReleasedKeys(keys)
}

func (ebitenKeyboard) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// namedKeys maps ebiten keys to the named identifiers the UI waits on.
var namedKeys = map[ebiten.Key]Key{
	ebiten.KeyEnter:       KeyEnter,
	ebiten.KeyNumpadEnter: KeyEnter,
	ebiten.KeyBackspace:   KeyBackspace,
	ebiten.KeyEscape:      KeyEscape,
	ebiten.KeyArrowUp:     KeyArrowUp,
	ebiten.KeyArrowDown:   KeyArrowDown,
	ebiten.KeyArrowLeft:   KeyArrowLeft,
	ebiten.KeyArrowRight:  KeyArrowRight,
}

// charKeys maps printable physical keys to their unshifted and shifted
// characters (US layout).
var charKeys = map[ebiten.Key][2]rune{
	ebiten.KeySpace:  {' ', ' '},
	ebiten.KeyPeriod: {'.', '>'},
	ebiten.KeyMinus:  {'-', '_'},
}

func init() {
	for k := ebiten.KeyA; k <= ebiten.KeyZ; k++ {
		r := 'a' + rune(k-ebiten.KeyA)
		charKeys[k] = [2]rune{r, r - 'a' + 'A'}
	}
}

// EbitenSource feeds physical keyboard transitions into an InputState.
// A key produces one press when it goes down and one release when it goes
// up, so OS key repeat never reaches the poller. Poll must be called from
// the ebiten Update goroutine once per tick.
type EbitenSource struct {
	kb   Keyboard
	down map[ebiten.Key]Key // key identifier each held physical key was pressed as
	buf  []ebiten.Key
}

// NewEbitenSource creates a source reading ebiten's keyboard.
func NewEbitenSource() *EbitenSource {
	return NewKeyboardSource(ebitenKeyboard{})
}

// NewKeyboardSource creates a source reading kb.
func NewKeyboardSource(kb Keyboard) *EbitenSource {
	return &EbitenSource{kb: kb, down: make(map[ebiten.Key]Key)}
}

// Poll translates this tick's key transitions into Release and Press
// calls, releases first.
func (src *EbitenSource) Poll(state *InputState) {
	src.buf = src.kb.AppendJustReleasedKeys(src.buf[:0])
	for _, ek := range src.buf {
		if k, ok := src.down[ek]; ok {
			delete(src.down, ek)
			state.Release(k)
		}
	}

	src.buf = src.kb.AppendJustPressedKeys(src.buf[:0])
	for _, ek := range src.buf {
		if _, held := src.down[ek]; held {
			continue
		}
		k, ok := src.translate(ek)
		if !ok {
			continue
		}
		src.down[ek] = k
		state.Press(k)
	}
}

// translate names a physical key, taking case from the shift key.
func (src *EbitenSource) translate(ek ebiten.Key) (Key, bool) {
	if k, ok := namedKeys[ek]; ok {
		return k, true
	}
	chars, ok := charKeys[ek]
	if !ok {
		return "", false
	}
	if src.kb.IsKeyPressed(ebiten.KeyShift) {
		return CharKey(chars[1]), true
	}
	return CharKey(chars[0]), true
}
