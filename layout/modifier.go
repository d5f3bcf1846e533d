// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"gioui.org/codelab/op"
	"gioui.org/codelab/unit"
)

// FirstBaselineToTop positions a widget such that the baseline of its
// first line of text is Distance from the top of the layout.
//
// Widgets without text report a zero baseline, which measures the
// distance to their bottom edge instead.
type FirstBaselineToTop struct {
	Distance unit.Dp
}

// Layout a widget.
func (f FirstBaselineToTop) Layout(gtx Context, w Widget) Dimensions {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()

	firstBaseline := dims.Size.Y - dims.Baseline
	y := gtx.Dp(f.Distance) - firstBaseline
	size := gtx.Constraints.Constrain(image.Pt(dims.Size.X, dims.Size.Y+y))

	trans := op.Offset(image.Pt(0, y)).Push(gtx.Ops)
	call.Add(gtx.Ops)
	trans.Pop()
	return Dimensions{
		Size:     size,
		Baseline: size.Y - gtx.Dp(f.Distance),
	}
}

// IntrinsicHeight lays out a widget at the height it needs when given
// no minimum height. Children that fill their minimum height, such as
// dividers, then match the height of their tallest sibling.
//
// The widget is laid out twice: the first pass is only measured.
type IntrinsicHeight struct{}

// Layout a widget.
func (IntrinsicHeight) Layout(gtx Context, w Widget) Dimensions {
	measure := gtx
	measure.Constraints.Min.Y = 0
	macro := op.Record(gtx.Ops)
	dims := w(measure)
	// The recording is discarded; only the size is kept.
	macro.Stop()

	h := gtx.Constraints.Constrain(dims.Size).Y
	gtx.Constraints.Min.Y = h
	gtx.Constraints.Max.Y = h
	return w(gtx)
}
