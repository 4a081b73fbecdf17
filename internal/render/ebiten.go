package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/silkroad-game/silkroad/internal/logging"
)

// fontFamily produces faces at any size from a TrueType source, or a
// fixed-size bitmap face when no TrueType font could be loaded.
type fontFamily struct {
	source *text.GoTextFaceSource
	bitmap text.Face
}

func (f fontFamily) face(size float64) text.Face {
	if f.source != nil {
		return &text.GoTextFace{Source: f.source, Size: size}
	}
	return f.bitmap
}

// loadFontFamily loads the TTF at path, falling back to the embedded Go
// font and then to basicfont.
func loadFontFamily(path string, embedded []byte, role string) fontFamily {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			var src *text.GoTextFaceSource
			src, err = text.NewGoTextFaceSource(bytes.NewReader(data))
			if err == nil {
				logging.Info("font loaded", zap.String("role", role), zap.String("path", path))
				return fontFamily{source: src}
			}
		}
		logging.Warn("font unavailable, using default", zap.String("role", role), zap.String("path", path), zap.Error(err))
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(embedded))
	if err != nil {
		logging.Warn("embedded font failed to load, using bitmap font", zap.String("role", role), zap.Error(err))
		return fontFamily{bitmap: text.NewGoXFace(basicfont.Face7x13)}
	}
	return fontFamily{source: src}
}

// drawOp is a queued draw call.
type drawOp func(dst *ebiten.Image)

// passQueue holds draw calls until their pass is committed.
type passQueue struct {
	mu        sync.Mutex
	pending   []drawOp
	committed []drawOp
}

func (q *passQueue) add(op drawOp) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, op)
}

func (q *passQueue) commit() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.committed = append(q.committed, q.pending...)
	q.pending = q.pending[:0]
}

// take removes and returns the committed draw calls.
func (q *passQueue) take() []drawOp {
	q.mu.Lock()
	defer q.mu.Unlock()
	ops := q.committed
	q.committed = nil
	return ops
}

// EbitenSurface is a Surface backed by an offscreen ebiten image. Draw
// calls may come from any goroutine; they are queued, and Flush applies
// the committed ones to the canvas. Flush must run on the ebiten Update
// goroutine.
type EbitenSurface struct {
	width, height int
	title, body   fontFamily

	queue passQueue

	// Owned by the ebiten goroutine.
	canvas *ebiten.Image
	images map[image.Image]*ebiten.Image
}

// NewEbitenSurface creates a surface of the given size. Empty font paths
// select the embedded Go fonts.
func NewEbitenSurface(width, height int, titleFont, bodyFont string) *EbitenSurface {
	return &EbitenSurface{
		width:  width,
		height: height,
		title:  loadFontFamily(titleFont, gobold.TTF, "title"),
		body:   loadFontFamily(bodyFont, goregular.TTF, "body"),
		images: make(map[image.Image]*ebiten.Image),
	}
}

// LoadImage loads an image file for use as a dialog or map background.
func LoadImage(path string) (image.Image, error) {
	_, img, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	return img, nil
}

func (s *EbitenSurface) Size() (float64, float64) {
	return float64(s.width), float64(s.height)
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.enqueue(func(dst *ebiten.Image) {
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
	})
}

func (s *EbitenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	s.enqueue(func(dst *ebiten.Image) {
		vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), c, true)
	})
}

func (s *EbitenSurface) DrawImage(img image.Image, x, y, w, h float64) {
	s.enqueue(func(dst *ebiten.Image) {
		src := s.ebitenImage(img)
		b := src.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
		op.GeoM.Translate(x, y)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(src, op)
	})
}

func (s *EbitenSurface) DrawText(str string, x, y float64, st Style) {
	face := s.face(st)
	s.enqueue(func(dst *ebiten.Image) {
		op := &text.DrawOptions{}
		op.PrimaryAlign = textAlign(st.HAlign)
		if st.VAlign == AlignBaseline {
			y -= face.Metrics().HAscent
			op.SecondaryAlign = text.AlignStart
		} else {
			op.SecondaryAlign = textAlign(st.VAlign)
		}
		op.GeoM.Translate(x, y)
		if st.Color != nil {
			op.ColorScale.ScaleWithColor(st.Color)
		}
		text.Draw(dst, str, face, op)
	})
}

func (s *EbitenSurface) Measure(str string, st Style) (float64, float64) {
	face := s.face(st)
	w, _ := text.Measure(str, face, 0)
	m := face.Metrics()
	return w, m.HAscent + m.HDescent
}

func (s *EbitenSurface) Commit() {
	s.queue.commit()
}

// Flush applies committed draw calls to the canvas. Calls of a pass still
// being drawn stay queued.
func (s *EbitenSurface) Flush() {
	ops := s.queue.take()
	if s.canvas == nil {
		s.canvas = ebiten.NewImage(s.width, s.height)
	}
	for _, op := range ops {
		op(s.canvas)
	}
}

// Present copies the canvas to the screen.
func (s *EbitenSurface) Present(screen *ebiten.Image) {
	if s.canvas == nil {
		return
	}
	screen.DrawImage(s.canvas, nil)
}

func (s *EbitenSurface) enqueue(op drawOp) {
	s.queue.add(op)
}

func (s *EbitenSurface) face(st Style) text.Face {
	if st.Font == FontTitle {
		return s.title.face(st.Size)
	}
	return s.body.face(st.Size)
}

// ebitenImage converts img on first use. Called only from Flush.
func (s *EbitenSurface) ebitenImage(img image.Image) *ebiten.Image {
	if ei, ok := img.(*ebiten.Image); ok {
		return ei
	}
	if ei, ok := s.images[img]; ok {
		return ei
	}
	ei := ebiten.NewImageFromImage(img)
	s.images[img] = ei
	return ei
}

func textAlign(a Align) text.Align {
	switch a {
	case AlignCenter:
		return text.AlignCenter
	case AlignEnd:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}
