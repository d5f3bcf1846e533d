// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"gioui.org/codelab/op"
	"gioui.org/codelab/unit"
)

// Context carries the state needed by almost all layouts and widgets.
// A zero value Context maps units to pixels with a scale of 1.0;
// Ops must be set before laying out widgets.
type Context struct {
	// Constraints track the constraints for the active widget or
	// layout.
	Constraints Constraints

	Metric unit.Metric

	*op.Ops
}

// NewContext is a shorthand for
//
//	Context{
//	  Ops: ops,
//	  Metric: m,
//	  Constraints: Exact(size),
//	}
//
// NewContext calls ops.Reset.
func NewContext(ops *op.Ops, m unit.Metric, size image.Point) Context {
	ops.Reset()
	return Context{
		Ops:         ops,
		Metric:      m,
		Constraints: Exact(size),
	}
}

// Dp converts v to pixels.
func (c Context) Dp(v unit.Dp) int {
	return c.Metric.Dp(v)
}

// Sp converts v to pixels.
func (c Context) Sp(v unit.Sp) int {
	return c.Metric.Sp(v)
}
