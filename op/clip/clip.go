// SPDX-License-Identifier: Unlicense OR MIT

/*
Package clip provides operations for restricting the area painted by
subsequent paint operations.

A clip area is pushed on the clip stack and is in effect until the
corresponding Pop. Nested areas intersect.

	defer clip.Rect{Max: image.Pt(50, 50)}.Push(ops).Pop()
	paint.ColorOp{Color: red}.Add(ops)
	paint.PaintOp{}.Add(ops)
*/
package clip

import (
	"image"

	"gioui.org/codelab/internal/ops"
	"gioui.org/codelab/op"
)

// Op represents a clip area. Use Push to apply it.
type Op struct {
	bounds image.Rectangle
	shape  ops.Shape
	radius int
	width  int
}

// Stack represents an Op pushed on the clip stack.
type Stack struct {
	ops     *ops.Ops
	id      ops.StackID
	macroID int
}

// Rect represents the clip area of a pixel-aligned rectangle.
type Rect image.Rectangle

// RRect represents the clip area of a rectangle with rounded
// corners of a single radius.
type RRect struct {
	Rect   image.Rectangle
	Radius int
}

// Ellipse represents the largest axis-aligned ellipse that
// is contained in its bounds.
type Ellipse image.Rectangle

// Stroke represents the outline of a clip area, Width pixels
// wide, drawn inside the area.
type Stroke struct {
	Area  Op
	Width int
}

// UniformRRect returns an RRect with all corner radii set to the
// provided radius.
func UniformRRect(rect image.Rectangle, radius int) RRect {
	return RRect{Rect: rect, Radius: radius}
}

// Op returns the op for the rectangle.
func (r Rect) Op() Op {
	return Op{bounds: image.Rectangle(r), shape: ops.ShapeRect}
}

// Push the clip operation on the clip stack.
func (r Rect) Push(o *op.Ops) Stack {
	return r.Op().Push(o)
}

// Op returns the op for the rounded rectangle.
func (rr RRect) Op() Op {
	radius := rr.Radius
	if max := min(rr.Rect.Dx(), rr.Rect.Dy()) / 2; radius > max {
		radius = max
	}
	if radius < 0 {
		radius = 0
	}
	return Op{bounds: rr.Rect, shape: ops.ShapeRRect, radius: radius}
}

// Push the rounded rectangle clip on the clip stack.
func (rr RRect) Push(o *op.Ops) Stack {
	return rr.Op().Push(o)
}

// Op returns the op for the ellipse.
func (e Ellipse) Op() Op {
	return Op{bounds: image.Rectangle(e), shape: ops.ShapeEllipse}
}

// Push the ellipse clip on the clip stack.
func (e Ellipse) Push(o *op.Ops) Stack {
	return e.Op().Push(o)
}

// Op returns a clip operation representing the stroke.
func (s Stroke) Op() Op {
	a := s.Area
	a.width = s.Width
	return a
}

// Bounds returns the bounding rectangle of the clip area.
func (p Op) Bounds() image.Rectangle {
	return p.bounds
}

// Push saves the current clip state on the stack and updates the current
// state to the intersection of the current area and p.
func (p Op) Push(o *op.Ops) Stack {
	id, macroID := o.Internal.PushOp(ops.ClipStack)
	o.Internal.Write(ops.Op{
		Type:   ops.TypePushClip,
		Bounds: p.bounds,
		Shape:  p.shape,
		Radius: p.radius,
		Width:  p.width,
	})
	return Stack{ops: &o.Internal, id: id, macroID: macroID}
}

// Pop restores the clip area active before the corresponding Push.
func (s Stack) Pop() {
	s.ops.PopOp(ops.ClipStack, s.id, s.macroID)
	s.ops.Write(ops.Op{Type: ops.TypePopClip})
}
