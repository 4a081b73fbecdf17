// Package layout breaks text into lines that fit a pixel width.
//
// Wrapping is greedy: words are appended to the current line until the
// next one would overflow, then the line is emitted and the word starts a
// new one. A literal newline is a hard break and adds ParagraphGap of
// extra vertical space. Measurement is supplied by the caller, so the
// package knows nothing about fonts or rasterization.
package layout

import "strings"

const (
	hardBreak = "\n"
	nbsp      = "\u00a0"
)

// Measurer reports the rendered size of text in one font and size.
type Measurer interface {
	// Width returns the advance width of s in pixels.
	Width(s string) float64
	// LineHeight returns the glyph height used to advance between lines.
	LineHeight() float64
}

// Options tunes vertical spacing.
type Options struct {
	ParagraphGap float64 // extra space after a hard break
	TrailingGap  float64 // extra space added to the returned cursor
	TabWidth     int     // non-breaking spaces per tab
}

// DefaultOptions returns the spacing used by dialog text.
func DefaultOptions() Options {
	return Options{ParagraphGap: 10, TrailingGap: 5, TabWidth: 4}
}

// Line is one render instruction: a fragment of text at an origin.
type Line struct {
	Text string
	X, Y float64
}

// Block is the result of laying out a string.
type Block struct {
	Lines []Line
	// End is the cursor y below the block, for chaining text blocks.
	End float64
}

// Wrap lays out text starting at (x, y) within maxWidth pixels. A
// maxWidth of zero or less means unbounded.
func Wrap(text string, x, y, maxWidth float64, m Measurer, opts Options) Block {
	lineHeight := m.LineHeight()
	var (
		block Block
		buf   string
	)
	emit := func() {
		block.Lines = append(block.Lines, Line{Text: buf, X: x, Y: y})
	}

	for _, tok := range tokenize(text, opts.TabWidth) {
		switch {
		case tok == hardBreak:
			emit()
			buf = ""
			y += lineHeight + opts.ParagraphGap
		case tok == "":
			// Consecutive separators contribute nothing.
		case buf == "":
			// A word wider than the budget still gets a line of its own.
			buf = tok
		case maxWidth > 0 && m.Width(buf+" "+tok) > maxWidth:
			emit()
			buf = tok
			y += lineHeight
		default:
			buf += " " + tok
		}
	}
	if buf != "" {
		emit()
	}

	block.End = y + lineHeight + opts.TrailingGap
	return block
}

// tokenize splits on spaces and isolates newlines as their own tokens.
func tokenize(text string, tabWidth int) []string {
	if tabWidth > 0 {
		text = strings.ReplaceAll(text, "\t", strings.Repeat(nbsp, tabWidth))
	}
	var tokens []string
	for _, word := range strings.Split(text, " ") {
		parts := strings.Split(word, hardBreak)
		for i, part := range parts {
			if i > 0 {
				tokens = append(tokens, hardBreak)
			}
			tokens = append(tokens, part)
		}
	}
	return tokens
}
