// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"gioui.org/codelab/internal/ops"
	"gioui.org/codelab/op"
	"gioui.org/codelab/op/paint"
)

func testContext(cs Constraints) Context {
	return Context{
		Ops:         new(op.Ops),
		Constraints: cs,
	}
}

// sizedWidget paints a marker and reports a fixed size.
func sizedWidget(w, h int) Widget {
	return func(gtx Context) Dimensions {
		paint.PaintOp{}.Add(gtx.Ops)
		return Dimensions{Size: image.Pt(w, h)}
	}
}

// paintOffsets returns the absolute offset of every paint op, in
// execution order.
func paintOffsets(o *op.Ops) []image.Point {
	var (
		r     ops.Reader
		off   image.Point
		stack []image.Point
		pts   []image.Point
	)
	r.Reset(&o.Internal)
	for e, ok := r.Decode(); ok; e, ok = r.Decode() {
		switch e.Type {
		case ops.TypePushTransform:
			stack = append(stack, off)
			off = off.Add(e.Offset)
		case ops.TypeTransform:
			off = off.Add(e.Offset)
		case ops.TypePopTransform:
			off = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		case ops.TypePaint:
			pts = append(pts, off)
		}
	}
	return pts
}
