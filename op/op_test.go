// SPDX-License-Identifier: Unlicense OR MIT

package op

import (
	"image"
	"testing"

	"gioui.org/codelab/internal/ops"
)

func TestTransformChecks(t *testing.T) {
	defer func() {
		if err := recover(); err == nil {
			t.Error("cross-macro Pop didn't panic")
		}
	}()
	var ops Ops
	trans := Offset(image.Point{}).Push(&ops)
	Record(&ops)
	trans.Pop()
}

func TestUnbalancedPop(t *testing.T) {
	defer func() {
		if err := recover(); err == nil {
			t.Error("out of order Pop didn't panic")
		}
	}()
	var ops Ops
	outer := Offset(image.Pt(1, 1)).Push(&ops)
	Offset(image.Pt(2, 2)).Push(&ops)
	outer.Pop()
}

func TestRecordReplay(t *testing.T) {
	var o Ops
	m := Record(&o)
	Offset(image.Pt(3, 4)).Add(&o)
	call := m.Stop()
	trans := Offset(image.Pt(10, 20)).Push(&o)
	call.Add(&o)
	call.Add(&o)
	trans.Pop()

	var r ops.Reader
	r.Reset(&o.Internal)
	var offsets []image.Point
	for op, ok := r.Decode(); ok; op, ok = r.Decode() {
		switch op.Type {
		case ops.TypePushTransform, ops.TypeTransform:
			offsets = append(offsets, op.Offset)
		}
	}
	want := []image.Point{{10, 20}, {3, 4}, {3, 4}}
	if len(offsets) != len(want) {
		t.Fatalf("got offsets %v, want %v", offsets, want)
	}
	for i := range want {
		if offsets[i] != want[i] {
			t.Errorf("offset %d: got %v, want %v", i, offsets[i], want[i])
		}
	}
}

func TestDiscardedRecording(t *testing.T) {
	var o Ops
	m := Record(&o)
	Offset(image.Pt(3, 4)).Add(&o)
	m.Stop()

	var r ops.Reader
	r.Reset(&o.Internal)
	if op, ok := r.Decode(); ok {
		t.Errorf("discarded recording produced op %+v", op)
	}
}

func TestCallAfterReset(t *testing.T) {
	defer func() {
		if err := recover(); err == nil {
			t.Error("CallOp from a reset Ops didn't panic")
		}
	}()
	var o Ops
	m := Record(&o)
	Offset(image.Pt(1, 1)).Add(&o)
	call := m.Stop()
	o.Reset()
	call.Add(&o)
}
