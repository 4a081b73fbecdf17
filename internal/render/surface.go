package render

import (
	"image"
	"image/color"
)

// Font selects one of the two faces a surface provides.
type Font uint8

const (
	FontBody Font = iota
	FontTitle
)

// Align positions text relative to its anchor point on one axis.
type Align uint8

const (
	AlignStart Align = iota // left / top
	AlignCenter
	AlignEnd // right / bottom
	// AlignBaseline anchors the alphabetic baseline. Vertical axis only.
	AlignBaseline
)

// Style describes how a run of text is drawn.
type Style struct {
	Font   Font
	Size   float64
	Color  color.Color
	HAlign Align
	VAlign Align
}

// Surface is the drawing capability screens render onto: a fixed-size 2D
// canvas with rectangle, circle, image and text primitives. Drawing is
// cumulative; nothing is cleared implicitly between passes. Draw calls
// become visible only once committed, so a pass is never shown half done.
type Surface interface {
	Size() (w, h float64)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	DrawImage(img image.Image, x, y, w, h float64)
	DrawText(s string, x, y float64, st Style)
	// Measure returns the advance width and the ascent+descent height of s.
	Measure(s string, st Style) (w, h float64)
	// Commit ends a pass: the draw calls since the previous Commit may now
	// be shown.
	Commit()
}
