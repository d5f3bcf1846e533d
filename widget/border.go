// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"

	"gioui.org/codelab/layout"
	"gioui.org/codelab/op/clip"
	"gioui.org/codelab/op/paint"
	"gioui.org/codelab/unit"
)

// Border lays out a widget and draws a border inside it.
type Border struct {
	Color        color.NRGBA
	CornerRadius unit.Dp
	Width        unit.Dp
}

func (b Border) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	dims := w(gtx)
	rr := gtx.Dp(b.CornerRadius)
	width := gtx.Dp(b.Width)
	r := image.Rectangle{Max: dims.Size}
	paint.FillShape(gtx.Ops,
		b.Color,
		clip.Stroke{
			Area:  clip.UniformRRect(r, rr).Op(),
			Width: width,
		}.Op(),
	)
	return dims
}
