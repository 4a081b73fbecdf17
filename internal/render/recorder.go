package render

import (
	"image"
	"image/color"
	"sync"
	"unicode/utf8"
)

// OpKind identifies a recorded draw call.
type OpKind uint8

const (
	OpRect OpKind = iota
	OpCircle
	OpImage
	OpText
)

// Op is one recorded draw call.
type Op struct {
	Kind       OpKind
	X, Y, W, H float64
	Color      color.Color
	Image      image.Image
	Text       string
	Style      Style
}

// Recorder is an in-memory Surface that records draw calls. Text metrics
// are fixed: each rune advances Size/2 pixels and lines are Size tall.
// It is safe for concurrent use.
type Recorder struct {
	w, h float64

	mu      sync.Mutex
	ops     []Op
	commits []int // len(ops) at each Commit
}

// NewRecorder creates a recorder with the given canvas size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{w: w, h: h}
}

func (r *Recorder) Size() (float64, float64) { return r.w, r.h }

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.record(Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.Color) {
	r.record(Op{Kind: OpCircle, X: cx, Y: cy, W: rad, H: rad, Color: c})
}

func (r *Recorder) DrawImage(img image.Image, x, y, w, h float64) {
	r.record(Op{Kind: OpImage, X: x, Y: y, W: w, H: h, Image: img})
}

func (r *Recorder) DrawText(s string, x, y float64, st Style) {
	r.record(Op{Kind: OpText, X: x, Y: y, Text: s, Style: st, Color: st.Color})
}

func (r *Recorder) Measure(s string, st Style) (float64, float64) {
	return float64(utf8.RuneCountInString(s)) * st.Size / 2, st.Size
}

// Ops returns a copy of everything recorded so far.
func (r *Recorder) Ops() []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Op(nil), r.ops...)
}

// Texts returns the recorded text draws.
func (r *Recorder) Texts() []Op {
	var out []Op
	for _, op := range r.Ops() {
		if op.Kind == OpText {
			out = append(out, op)
		}
	}
	return out
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops() {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) Commit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commits = append(r.commits, len(r.ops))
}

// Committed returns the ops covered by a Commit, split into passes.
func (r *Recorder) Committed() [][]Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	var (
		passes [][]Op
		start  int
	)
	for _, end := range r.commits {
		passes = append(passes, append([]Op(nil), r.ops[start:end]...))
		start = end
	}
	return passes
}

func (r *Recorder) record(op Op) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
}
