// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text shapes text and breaks it into lines.

A Shaper maps a font description and size to a concrete face, shapes
strings with HarfBuzz and wraps them at line break opportunities.
Layouts are cached, so a widget can measure the same label on every
frame cheaply.
*/
package text

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"gioui.org/codelab/font"
)

// A Glyph is a shaped glyph positioned relative to the start of the
// baseline of its line. Y increases downwards.
type Glyph struct {
	ID   uint16
	X, Y fixed.Int26_6
}

// A Line contains the glyphs and measurements of a line of text.
type Line struct {
	// Text is the part of the input shown on the line, including
	// whitespace at the line break. It does not include the
	// truncation ellipsis.
	Text   string
	Glyphs []Glyph
	// Width is the advance of the line in pixels without trailing
	// whitespace, rounded up.
	Width int
	// Ascent is the height above the baseline.
	Ascent int
	// Descent is the height below the baseline.
	Descent int
}

// A Layout contains the measurements of a body of text as
// a list of Lines.
type Layout struct {
	Lines []Line
	// Font holds the outlines of the glyphs of Lines.
	Font    *sfnt.Font
	PxPerEm int
	// Truncated is the number of runes left out because of
	// Parameters.MaxLines. The last line of a truncated layout ends
	// with an ellipsis.
	Truncated int
}

// Parameters are the inputs of a text layout.
type Parameters struct {
	Font font.Font
	// PxPerEm is the font size in pixels.
	PxPerEm int
	// MaxWidth is the width available for a line. Text is broken
	// at line break opportunities, and inside words that do not fit
	// on a line of their own. Zero or less disables breaking.
	MaxWidth int
	// MaxLines limits the number of lines. Zero means unlimited.
	MaxLines int
}

type Alignment uint8

const (
	Start Alignment = iota
	End
	Middle
)

// Size returns the width of the widest line and the total height of
// the layout.
func (l Layout) Size() (width, height int) {
	for _, line := range l.Lines {
		if line.Width > width {
			width = line.Width
		}
		height += line.Ascent + line.Descent
	}
	return width, height
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	default:
		panic("unreachable")
	}
}

// Align returns the x offset that aligns a line of width within
// maxWidth.
func (a Alignment) Align(width, maxWidth int) int {
	mw := maxWidth
	switch a {
	case Middle:
		return (mw - width) / 2
	case End:
		return mw - width
	case Start:
		return 0
	default:
		panic(fmt.Errorf("unknown alignment %v", a))
	}
}
