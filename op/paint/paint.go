// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint provides drawing operations.

The current material is set by ColorOp or ImageOp and painted over the
current clip area by PaintOp. TextOp draws a line of shaped text with the
current color.
*/
package paint

import (
	"image"
	"image/color"

	"golang.org/x/image/font/sfnt"

	"gioui.org/codelab/internal/ops"
	"gioui.org/codelab/op"
	"gioui.org/codelab/op/clip"
	"gioui.org/codelab/text"
)

// ColorOp sets the material to a constant color.
type ColorOp struct {
	Color color.NRGBA
}

// ImageOp sets the material to an image. PaintOp scales the image to
// the bounds of the innermost clip area.
type ImageOp struct {
	src image.Image
}

// PaintOp fills the current clip area with the current material.
type PaintOp struct{}

// TextOp draws a single line of shaped text with its baseline origin
// at the current offset.
type TextOp struct {
	Font    *sfnt.Font
	PxPerEm int
	Glyphs  []text.Glyph
	// Text is the source text of the line, kept for inspection.
	Text string
}

// NewImageOp creates an ImageOp backed by src.
//
// The image is not copied; src must not be mutated after being passed
// to NewImageOp.
func NewImageOp(src image.Image) ImageOp {
	return ImageOp{src: src}
}

// Size returns the natural size of the image.
func (i ImageOp) Size() image.Point {
	if i.src == nil {
		return image.Point{}
	}
	return i.src.Bounds().Size()
}

func (i ImageOp) Add(o *op.Ops) {
	if i.src == nil {
		return
	}
	o.Internal.Write(ops.Op{Type: ops.TypeImage, Image: i.src})
}

func (c ColorOp) Add(o *op.Ops) {
	o.Internal.Write(ops.Op{Type: ops.TypeColor, Color: c.Color})
}

func (d PaintOp) Add(o *op.Ops) {
	o.Internal.Write(ops.Op{Type: ops.TypePaint})
}

func (t TextOp) Add(o *op.Ops) {
	if len(t.Glyphs) == 0 || t.Font == nil {
		return
	}
	o.Internal.Write(ops.Op{
		Type:    ops.TypeText,
		Font:    t.Font,
		PxPerEm: t.PxPerEm,
		Glyphs:  t.Glyphs,
		Text:    t.Text,
	})
}

// FillShape fills the clip shape with a color.
func FillShape(o *op.Ops, c color.NRGBA, shape clip.Op) {
	defer shape.Push(o).Pop()
	Fill(o, c)
}

// Fill paints an infinitely large plane with the provided color. It
// is intended to be used with a clip.Op already in place to limit
// the painted area.
func Fill(o *op.Ops, c color.NRGBA) {
	ColorOp{Color: c}.Add(o)
	PaintOp{}.Add(o)
}
