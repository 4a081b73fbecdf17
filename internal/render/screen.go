package render

import (
	"image"
	"image/color"

	"github.com/silkroad-game/silkroad/internal/layout"
)

// Metrics holds the dialog geometry and text sizes. Content coordinates
// are inset from the canvas edges by PaddingX / PaddingY; the dialog
// background image is inset by BoxPadding.
type Metrics struct {
	PaddingX   float64
	PaddingY   float64
	BoxPadding float64

	TextSize   float64 // plain text
	DialogSize float64 // dialog body text
	TitleSize  float64
	NoteSize   float64

	TitleGap float64 // space between a title block and the body
}

// DefaultMetrics returns the geometry the game screens are designed for.
func DefaultMetrics() Metrics {
	return Metrics{
		PaddingX:   150,
		PaddingY:   110,
		BoxPadding: 15,
		TextSize:   16,
		DialogSize: 18,
		TitleSize:  25,
		NoteSize:   13,
		TitleGap:   10,
	}
}

// TextSettings configures one DrawText call. MaxWidth <= 0 disables wrapping.
type TextSettings struct {
	Size     float64
	Font     Font
	Color    color.Color
	MaxWidth float64
	HAlign   Align
	VAlign   Align
}

// Screen composes Surface primitives into dialog boxes, titles and notes.
type Screen struct {
	surface    Surface
	background color.Color
	dialogBG   image.Image
	metrics    Metrics
	wrap       layout.Options
}

// NewScreen creates a screen drawing onto surface. dialogBG is the default
// dialog background image.
func NewScreen(surface Surface, dialogBG image.Image, m Metrics) *Screen {
	return &Screen{
		surface:    surface,
		background: ColorBlack,
		dialogBG:   dialogBG,
		metrics:    m,
		wrap:       layout.DefaultOptions(),
	}
}

// Surface returns the underlying drawing surface.
func (s *Screen) Surface() Surface { return s.surface }

// Commit marks everything drawn since the last commit as one complete
// pass, ready to be shown.
func (s *Screen) Commit() { s.surface.Commit() }

// Size returns the canvas size.
func (s *Screen) Size() (float64, float64) { return s.surface.Size() }

// DrawRect fills a rectangle.
func (s *Screen) DrawRect(x, y, w, h float64, c color.Color) {
	s.surface.FillRect(x, y, w, h, c)
}

// ClearBackground fills the whole canvas, with the screen background
// colour when fill is nil.
func (s *Screen) ClearBackground(fill color.Color) {
	if fill == nil {
		fill = s.background
	}
	w, h := s.surface.Size()
	s.surface.FillRect(0, 0, w, h, fill)
}

// TextSettings returns the defaults for plain text: body font at TextSize,
// ink colour, left aligned on the baseline, no wrapping.
func (s *Screen) TextSettings() TextSettings {
	return TextSettings{
		Size:   s.metrics.TextSize,
		Font:   FontBody,
		Color:  ColorInk,
		HAlign: AlignStart,
		VAlign: AlignBaseline,
	}
}

// DialogTextSettings returns the settings for dialog body text, wrapped to
// the content width.
func (s *Screen) DialogTextSettings() TextSettings {
	w, _ := s.surface.Size()
	ts := s.TextSettings()
	ts.Size = s.metrics.DialogSize
	ts.MaxWidth = w - s.metrics.PaddingX*2 - 10
	return ts
}

// DrawText lays out text at (x, y) and returns the cursor y below it.
// Zero Size and nil Color fall back to the plain text defaults.
func (s *Screen) DrawText(text string, x, y float64, ts TextSettings) float64 {
	def := s.TextSettings()
	if ts.Size <= 0 {
		ts.Size = def.Size
	}
	if ts.Color == nil {
		ts.Color = def.Color
	}
	st := Style{Font: ts.Font, Size: ts.Size, Color: ts.Color, HAlign: ts.HAlign, VAlign: ts.VAlign}

	block := layout.Wrap(text, x, y, ts.MaxWidth, measurer{s.surface, st}, s.wrap)
	for _, l := range block.Lines {
		if l.Text == "" {
			continue
		}
		s.surface.DrawText(l.Text, l.X, l.Y, st)
	}
	return block.End
}

// DialogBox returns the rectangle the dialog background covers.
func (s *Screen) DialogBox() (x, y, w, h float64) {
	cw, ch := s.surface.Size()
	p := s.metrics.BoxPadding
	return p, p, cw - p*2, ch - p*2
}

// DrawDialogBox draws img, or the default dialog background when img is
// nil, over the dialog box area.
func (s *Screen) DrawDialogBox(img image.Image) {
	if img == nil {
		img = s.dialogBG
	}
	x, y, w, h := s.DialogBox()
	s.surface.DrawImage(img, x, y, w, h)
}

// DrawDialogTitle draws a centered title at the top of the content area and
// returns the y where body text should start.
func (s *Screen) DrawDialogTitle(title string) float64 {
	w, _ := s.surface.Size()
	ts := s.DialogTextSettings()
	ts.Size = s.metrics.TitleSize
	ts.Font = FontTitle
	ts.HAlign = AlignCenter
	ts.VAlign = AlignStart
	return s.DrawText(title, w/2, s.metrics.PaddingY, ts) + s.metrics.TitleGap
}

// DrawDialogSubNote draws a small instruction at the bottom right of the
// content area.
func (s *Screen) DrawDialogSubNote(note string) {
	w, h := s.surface.Size()
	ts := s.DialogTextSettings()
	ts.Size = s.metrics.NoteSize
	ts.Color = ColorFadedInk
	ts.HAlign = AlignEnd
	ts.VAlign = AlignEnd
	s.DrawText(note, w-s.metrics.PaddingX, h-s.metrics.PaddingY, ts)
}

// ContentTop is the y where untitled dialog text starts.
func (s *Screen) ContentTop() float64 { return s.metrics.PaddingY }

// ContentLeft is the x where dialog text starts.
func (s *Screen) ContentLeft() float64 { return s.metrics.PaddingX }

// measurer adapts a Surface and style to layout.Measurer.
type measurer struct {
	surface Surface
	style   Style
}

func (m measurer) Width(str string) float64 {
	w, _ := m.surface.Measure(str, m.style)
	return w
}

func (m measurer) LineHeight() float64 {
	_, h := m.surface.Measure("ljyIY", m.style)
	return h
}
