// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"gioui.org/codelab/layout"
	"gioui.org/codelab/op"
	"gioui.org/codelab/op/clip"
	"gioui.org/codelab/op/paint"
	"gioui.org/codelab/unit"
)

// Shape is the outline of a Surface.
type Shape uint8

const (
	RectangleShape Shape = iota
	RoundedShape
	CircleShape
)

// SurfaceStyle fills a shape with a color and clips its content to
// the shape.
type SurfaceStyle struct {
	Shape Shape
	Color color.NRGBA
	// CornerRadius applies to RoundedShape.
	CornerRadius unit.Dp
}

func Surface(th *Theme) SurfaceStyle {
	return SurfaceStyle{
		Color: th.Palette.Bg,
	}
}

func (s SurfaceStyle) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	sz := gtx.Constraints.Constrain(dims.Size)
	defer s.clip(gtx, image.Rectangle{Max: sz}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, s.Color)
	call.Add(gtx.Ops)
	return layout.Dimensions{Size: sz, Baseline: dims.Baseline}
}

func (s SurfaceStyle) clip(gtx layout.Context, r image.Rectangle) clip.Op {
	switch s.Shape {
	case CircleShape:
		return clip.Ellipse(r).Op()
	case RoundedShape:
		return clip.UniformRRect(r, gtx.Dp(s.CornerRadius)).Op()
	default:
		return clip.Rect(r).Op()
	}
}
