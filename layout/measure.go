// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"gioui.org/codelab/op"
)

// Measurable is a child that can be measured under a set of
// constraints. Measure is called at most once per layout pass.
type Measurable interface {
	Measure(cs Constraints) Placeable
}

// Placeable is a measured child that is waiting for its position.
// Place is called exactly once, with an offset relative to the
// origin of the layout that measured it.
type Placeable interface {
	Size() image.Point
	Place(pt image.Point)
}

// widgetChild adapts a Widget to Measurable. Measuring records the
// widget's operations; placing replays them at an offset.
type widgetChild struct {
	gtx  Context
	w    Widget
	call op.CallOp
	dims Dimensions
}

func (c *widgetChild) Measure(cs Constraints) Placeable {
	gtx := c.gtx
	gtx.Constraints = cs
	macro := op.Record(gtx.Ops)
	c.dims = c.w(gtx)
	c.call = macro.Stop()
	return c
}

func (c *widgetChild) Size() image.Point {
	return c.dims.Size
}

func (c *widgetChild) Place(pt image.Point) {
	trans := op.Offset(pt).Push(c.gtx.Ops)
	c.call.Add(c.gtx.Ops)
	trans.Pop()
}

// measurables wraps widgets for the Measurable based layouts.
func measurables(gtx Context, widgets []Widget) []Measurable {
	children := make([]widgetChild, len(widgets))
	ms := make([]Measurable, len(widgets))
	for i, w := range widgets {
		children[i] = widgetChild{gtx: gtx, w: w}
		ms[i] = &children[i]
	}
	return ms
}
