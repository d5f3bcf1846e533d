// SPDX-License-Identifier: Unlicense OR MIT

/*
Package op implements operations for describing a laid out user
interface.

Ops represents a list of operations. Layouts and widgets add operations
to an Ops list while they measure and place themselves; a renderer, such
as package raster, executes the list afterwards.

# Placement

A layout measures a child by recording the operations the child adds,
and places it later by replaying the recording under an offset:

	ops := new(op.Ops)
	macro := op.Record(ops)
	// Operations added here are recorded, not executed.
	...
	call := macro.Stop()

	// Place the recording at (10, 20).
	trans := op.Offset(image.Pt(10, 20)).Push(ops)
	call.Add(ops)
	trans.Pop()

A recording that is never added to an ops list has no effect. This is
how layouts discard a measurement pass.

# State

Transformations and clip areas are scoped by their Push and Pop
methods. Pops must be balanced and must not cross the boundary of a
recording; violations panic.
*/
package op

import (
	"image"

	"gioui.org/codelab/internal/ops"
)

// Ops holds a list of operations.
type Ops struct {
	// Internal is for internal use, despite being exported.
	Internal ops.Ops
}

// MacroOp records a list of operations for later use.
type MacroOp struct {
	ops *ops.Ops
	id  ops.StackID
	pc  int
}

// CallOp invokes the operations recorded by Record.
type CallOp struct {
	// Ops is the list of operations to invoke.
	ops     *ops.Ops
	version int
	start   int
	end     int
}

// TransformOp represents a translation of the coordinate space.
type TransformOp struct {
	offset image.Point
}

// TransformStack represents a TransformOp pushed on the transformation
// stack.
type TransformStack struct {
	id      ops.StackID
	macroID int
	ops     *ops.Ops
}

// Record a macro of operations.
func Record(o *Ops) MacroOp {
	m := MacroOp{
		ops: &o.Internal,
		id:  o.Internal.PushMacro(),
		pc:  o.Internal.PC(),
	}
	// Reserve room for a macro definition. Updated in Stop.
	m.ops.Write(ops.Op{Type: ops.TypeMacro})
	return m
}

// Stop ending a previously started recording and returns an
// operation for replaying it.
func (m MacroOp) Stop() CallOp {
	m.ops.PopMacro(m.id)
	m.ops.FillMacro(m.pc)
	return CallOp{
		ops:     m.ops,
		version: m.ops.Version(),
		start:   m.pc,
		end:     m.ops.PC(),
	}
}

// Add the recorded list of operations. Add
// panics if the Ops containing the recording
// has been reset.
func (c CallOp) Add(o *Ops) {
	if c.ops == nil {
		return
	}
	if c.ops.Version() != c.version {
		panic("op: CallOp added after its Ops was reset")
	}
	o.Internal.AddCall(c.ops, c.start, c.end)
}

// Offset converts an offset to a TransformOp.
func Offset(off image.Point) TransformOp {
	return TransformOp{offset: off}
}

// Offset returns the translation of t.
func (t TransformOp) Offset() image.Point {
	return t.offset
}

// Push the current transformation to the stack and then multiply the
// current transformation with t.
func (t TransformOp) Push(o *Ops) TransformStack {
	id, macroID := o.Internal.PushOp(ops.TransStack)
	o.Internal.Write(ops.Op{Type: ops.TypePushTransform, Offset: t.offset})
	return TransformStack{ops: &o.Internal, id: id, macroID: macroID}
}

// Add is like Push except it doesn't push the current transformation to the
// stack.
func (t TransformOp) Add(o *Ops) {
	o.Internal.Write(ops.Op{Type: ops.TypeTransform, Offset: t.offset})
}

// Pop restores the transformation active before the corresponding Push.
func (t TransformStack) Pop() {
	t.ops.PopOp(ops.TransStack, t.id, t.macroID)
	t.ops.Write(ops.Op{Type: ops.TypePopTransform})
}

// Reset the Ops, preparing it for re-use. Reset invalidates
// any recorded macros.
func (o *Ops) Reset() {
	o.Internal.Reset()
}
