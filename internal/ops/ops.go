// SPDX-License-Identifier: Unlicense OR MIT

package ops

import (
	"image"
	"image/color"

	"golang.org/x/image/font/sfnt"

	"gioui.org/codelab/text"
)

// Ops is the internal representation of an op.Ops list. Operations are
// stored as typed records; no renderer in this module needs a byte
// encoding.
type Ops struct {
	// version is incremented at each Reset.
	version int
	// data contains the recorded operations.
	data []Op

	macroStack stack
	stacks     [2]stack
}

type OpType uint8

const (
	// TypeMacro marks the start of a recording. Its End field is
	// the index just past the recording.
	TypeMacro OpType = iota
	TypeCall
	TypePushTransform
	TypeTransform
	TypePopTransform
	TypePushClip
	TypePopClip
	TypeColor
	TypeImage
	TypePaint
	TypeText
)

// Shape is the outline of a clip area.
type Shape uint8

const (
	ShapeRect Shape = iota
	ShapeRRect
	ShapeEllipse
)

// StackKind identifies an independent push/pop stack.
type StackKind uint8

const (
	TransStack StackKind = iota
	ClipStack
)

// Op is a single recorded operation. Only the fields relevant for
// Type are set.
type Op struct {
	Type OpType

	// Offset is the translation of TypePushTransform and
	// TypeTransform, and the baseline origin of TypeText.
	Offset image.Point

	// Clip fields.
	Bounds image.Rectangle
	Shape  Shape
	Radius int
	// Width is the stroke width of an outline clip. Zero means
	// the area is filled.
	Width int

	Color color.NRGBA
	Image image.Image

	// Text fields. Glyphs are positioned relative to Offset.
	Font    *sfnt.Font
	PxPerEm int
	Glyphs  []text.Glyph
	Text    string

	// Call and macro fields.
	Ops        *Ops
	Start, End int
}

type StackID struct {
	id   int
	prev int
}

// stack tracks the integer identities of stack operations to ensure correct
// pairing of their push and pop methods.
type stack struct {
	currentID int
	nextID    int
}

func (o *Ops) Reset() {
	o.macroStack = stack{}
	for i := range o.stacks {
		o.stacks[i] = stack{}
	}
	// Leave references to the GC.
	for i := range o.data {
		o.data[i] = Op{}
	}
	o.data = o.data[:0]
	o.version++
}

func (o *Ops) Data() []Op {
	return o.data
}

func (o *Ops) Version() int {
	return o.version
}

// Write appends op and returns its index.
func (o *Ops) Write(op Op) int {
	o.data = append(o.data, op)
	return len(o.data) - 1
}

// PC returns the index of the next op to be written.
func (o *Ops) PC() int {
	return len(o.data)
}

func (o *Ops) PushMacro() StackID {
	return o.macroStack.push()
}

func (o *Ops) PopMacro(id StackID) {
	o.macroStack.pop(id)
}

// FillMacro records the end of the macro started at startPC.
func (o *Ops) FillMacro(startPC int) {
	o.data[startPC].End = len(o.data)
}

func (o *Ops) AddCall(callOps *Ops, start, end int) {
	o.Write(Op{Type: TypeCall, Ops: callOps, Start: start, End: end})
}

func (o *Ops) PushOp(kind StackKind) (StackID, int) {
	return o.stacks[kind].push(), o.macroStack.currentID
}

func (o *Ops) PopOp(kind StackKind, sid StackID, macroID int) {
	if o.macroStack.currentID != macroID {
		panic("stack push and pop must not cross macro boundary")
	}
	o.stacks[kind].pop(sid)
}

func (s *stack) push() StackID {
	s.nextID++
	sid := StackID{
		id:   s.nextID,
		prev: s.currentID,
	}
	s.currentID = s.nextID
	return sid
}

func (s *stack) check(sid StackID) {
	if s.currentID != sid.id {
		panic("unbalanced operation")
	}
}

func (s *stack) pop(sid StackID) {
	s.check(sid)
	s.currentID = sid.prev
}
