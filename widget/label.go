// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"gioui.org/codelab/font"
	"gioui.org/codelab/layout"
	"gioui.org/codelab/op"
	"gioui.org/codelab/op/clip"
	"gioui.org/codelab/op/paint"
	"gioui.org/codelab/text"
	"gioui.org/codelab/unit"
)

// Label is a widget for laying out and drawing text. The text is drawn
// with the current color material.
//
// Text the shaper cannot lay out, for example because its collection
// has no faces, takes no space and draws nothing. Package text logs a
// warning for it; see [text.SetLogger].
type Label struct {
	// Alignment specify the text alignment.
	Alignment text.Alignment
	// MaxLines limits the number of lines. Zero means no limit.
	MaxLines int
}

func (l Label) Layout(gtx layout.Context, lt *text.Shaper, font font.Font, size unit.Sp, txt string) layout.Dimensions {
	cs := gtx.Constraints
	lay := lt.Layout(text.Parameters{
		Font:     font,
		PxPerEm:  gtx.Sp(size),
		MaxWidth: cs.Max.X,
		MaxLines: l.MaxLines,
	}, txt)
	w, h := lay.Size()
	dims := layout.Dimensions{Size: cs.Constrain(image.Pt(w, h))}
	defer clip.Rect{Max: dims.Size}.Push(gtx.Ops).Pop()
	y := 0
	for i, line := range lay.Lines {
		y += line.Ascent
		if i == 0 {
			dims.Baseline = dims.Size.Y - y
		}
		x := l.Alignment.Align(line.Width, dims.Size.X)
		t := op.Offset(image.Pt(x, y)).Push(gtx.Ops)
		paint.TextOp{
			Font:    lay.Font,
			PxPerEm: lay.PxPerEm,
			Glyphs:  line.Glyphs,
			Text:    line.Text,
		}.Add(gtx.Ops)
		t.Pop()
		y += line.Descent
	}
	return dims
}
