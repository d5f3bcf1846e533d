// SPDX-License-Identifier: Unlicense OR MIT

/*
Package font provides type describing font faces attributes.
*/
package font

import (
	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
)

// A FontFace is a Font and the matching parsed font, once for shaping
// and once for glyph outlines. Both are parsed from the same data, so
// their glyph indices agree.
type FontFace struct {
	Font Font
	// Face provides glyph outlines and metrics.
	Face *opentype.Font
	// Shaping is the font used by the text shaper.
	Shaping *gotext.Font
}

// Style is the font style.
type Style int

// Weight is a font weight, in CSS units subtracted 400 so the zero value
// is normal text weight.
type Weight int

// Font specify a particular typeface variant, style and weight.
type Font struct {
	// Typeface specifies the name of the font family.
	Typeface Typeface
	// Variant specifies a variant of the typeface, such as "Mono".
	Variant Variant
	// Style specifies the kind of text style.
	Style Style
	// Weight is the text weight.
	Weight Weight
}

// Typeface identifies a particular typeface design.
type Typeface string

// Variant denotes a typeface variant such as "Mono" or "Smallcaps".
type Variant string

const (
	Regular Style = iota
	Italic
)

const (
	Thin       Weight = -300
	ExtraLight Weight = -200
	Light      Weight = -100
	Normal     Weight = 0
	Medium     Weight = 100
	SemiBold   Weight = 200
	Bold       Weight = 300
	ExtraBold  Weight = 400
	Black      Weight = 500
)

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		panic("invalid Style")
	}
}

func (w Weight) String() string {
	switch w {
	case Thin:
		return "Thin"
	case ExtraLight:
		return "ExtraLight"
	case Light:
		return "Light"
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case SemiBold:
		return "SemiBold"
	case Bold:
		return "Bold"
	case ExtraBold:
		return "ExtraBold"
	case Black:
		return "Black"
	default:
		panic("invalid Weight")
	}
}
