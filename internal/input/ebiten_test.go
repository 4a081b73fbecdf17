package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// fakeKeyboard reports the transitions set for the current tick.
type fakeKeyboard struct {
	pressed, released []ebiten.Key
	shift             bool
}

func (kb *fakeKeyboard) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, kb.pressed...)
}

func (kb *fakeKeyboard) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, kb.released...)
}

func (kb *fakeKeyboard) IsKeyPressed(key ebiten.Key) bool {
	return key == ebiten.KeyShift && kb.shift
}

// step runs one source poll and one poller tick.
func (kb *fakeKeyboard) step(src *EbitenSource, state *InputState, p *Poller, pressed, released []ebiten.Key) {
	kb.pressed, kb.released = pressed, released
	src.Poll(state)
	p.Tick()
}

func TestSourceHeldKeyFiresOnce(t *testing.T) {
	kb := &fakeKeyboard{}
	src := NewKeyboardSource(kb)
	state := NewInputState()
	p := NewPoller(state)
	keys := []Key{"d", KeyEnter}

	ch := awaitAsync(p, keys, nil)
	waitPending(t, p, 1)
	kb.step(src, state, p, []ebiten.Key{ebiten.KeyD}, nil)
	if r := receive(t, ch); r.key != "d" {
		t.Fatalf("expected d, got %q", r.key)
	}

	// d stays down across many ticks while the OS repeats it.
	ch = awaitAsync(p, keys, nil)
	waitPending(t, p, 1)
	for range 30 {
		kb.step(src, state, p, nil, nil)
	}
	select {
	case r := <-ch:
		t.Fatalf("held d resolved a second wait: %q", r.key)
	default:
	}

	kb.step(src, state, p, []ebiten.Key{ebiten.KeyEnter}, []ebiten.Key{ebiten.KeyD})
	if r := receive(t, ch); r.key != KeyEnter {
		t.Fatalf("expected Enter, got %q", r.key)
	}
}

func TestSourceShiftSelectsCase(t *testing.T) {
	kb := &fakeKeyboard{shift: true}
	src := NewKeyboardSource(kb)
	state := NewInputState()

	kb.pressed = []ebiten.Key{ebiten.KeyM, ebiten.KeySpace}
	src.Poll(state)
	kb.shift = false
	kb.pressed, kb.released = nil, []ebiten.Key{ebiten.KeyM}
	src.Poll(state)

	want := []Transition{{Key: "M", Down: true}, {Key: " ", Down: true}, {Key: "M"}}
	for i, w := range want {
		got, ok := state.next()
		if !ok || got != w {
			t.Fatalf("event %d: expected %+v, got %+v", i, w, got)
		}
	}
	if state.Queued() != 0 {
		t.Fatalf("unexpected extra events")
	}
}

func TestSourceIgnoresUnmappedKeys(t *testing.T) {
	kb := &fakeKeyboard{pressed: []ebiten.Key{ebiten.KeyF1, ebiten.KeyControlLeft}}
	src := NewKeyboardSource(kb)
	state := NewInputState()
	src.Poll(state)
	kb.pressed, kb.released = nil, []ebiten.Key{ebiten.KeyF1}
	src.Poll(state)
	if state.Queued() != 0 {
		t.Fatalf("unmapped keys produced %d events", state.Queued())
	}
}
