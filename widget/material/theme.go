// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image/color"

	"golang.org/x/image/colornames"

	"gioui.org/codelab/font"
	"gioui.org/codelab/internal/f32color"
	"gioui.org/codelab/text"
	"gioui.org/codelab/unit"
)

// Palette contains the minimal set of colors that a widget may need to
// draw itself.
type Palette struct {
	// Bg is the background color atop which content is currently being
	// drawn.
	Bg color.NRGBA

	// Fg is a color suitable for drawing on top of Bg.
	Fg color.NRGBA

	// ContrastBg is a color used to draw attention to active,
	// important, interactive widgets such as buttons.
	ContrastBg color.NRGBA

	// ContrastFg is a color suitable for content drawn on top of
	// ContrastBg.
	ContrastFg color.NRGBA
}

// Theme holds the general theme of an application such as colors and
// text sizes. A Theme owns a text.Shaper and must only be used from a
// single goroutine.
type Theme struct {
	Shaper *text.Shaper
	Palette
	TextSize unit.Sp
	// Face is the default font of labels.
	Face font.Font
}

// NewTheme constructs a theme with the Material baseline colors.
func NewTheme(fontCollection []font.FontFace) *Theme {
	t := &Theme{
		Shaper: text.NewShaper(fontCollection),
	}
	t.Palette = Palette{
		Fg:         nrgba(colornames.Black),
		Bg:         nrgba(colornames.White),
		ContrastBg: f32color.RGB(0x6200ee),
		ContrastFg: nrgba(colornames.White),
	}
	t.TextSize = 16
	return t
}

// WithPalette returns a copy of th with the palette replaced.
func (t Theme) WithPalette(p Palette) Theme {
	t.Palette = p
	return t
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
