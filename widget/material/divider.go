// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"gioui.org/codelab/internal/f32color"
	"gioui.org/codelab/layout"
	"gioui.org/codelab/op/clip"
	"gioui.org/codelab/op/paint"
	"gioui.org/codelab/unit"
)

// DividerStyle draws a thin line. A Horizontal divider spans the
// minimum width constraint, a Vertical divider the minimum height
// constraint; lay it out under fixed cross constraints, for example in
// a layout.IntrinsicHeight row.
type DividerStyle struct {
	Axis      layout.Axis
	Thickness unit.Dp
	Fill      color.NRGBA
}

func Divider(th *Theme) DividerStyle {
	return DividerStyle{
		Thickness: 1,
		Fill:      f32color.MulAlpha(th.Palette.Fg, 0x1f),
	}
}

func (d DividerStyle) Layout(gtx layout.Context) layout.Dimensions {
	t := gtx.Dp(d.Thickness)
	sz := image.Point{X: gtx.Constraints.Min.X, Y: t}
	if d.Axis == layout.Vertical {
		sz = image.Point{X: t, Y: gtx.Constraints.Min.Y}
	}
	sz = gtx.Constraints.Constrain(sz)
	paint.FillShape(gtx.Ops, d.Fill, clip.Rect{Max: sz}.Op())
	return layout.Dimensions{Size: sz}
}
