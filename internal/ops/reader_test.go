// SPDX-License-Identifier: Unlicense OR MIT

package ops

import (
	"image"
	"testing"
)

func TestReaderExpandsCalls(t *testing.T) {
	var o Ops
	start := o.Write(Op{Type: TypeMacro})
	o.Write(Op{Type: TypeText, Text: "recorded"})
	o.FillMacro(start)
	o.Write(Op{Type: TypePushTransform, Offset: image.Pt(1, 2)})
	o.AddCall(&o, start, o.Data()[start].End)
	o.Write(Op{Type: TypePopTransform})

	var r Reader
	r.Reset(&o)
	var got []OpType
	for op, ok := r.Decode(); ok; op, ok = r.Decode() {
		got = append(got, op.Type)
	}
	want := []OpType{TypePushTransform, TypeText, TypePopTransform}
	if len(got) != len(want) {
		t.Fatalf("decoded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("op %d: got type %d, want %d", i, got[i], want[i])
		}
	}
}

func TestReaderNestedCalls(t *testing.T) {
	var inner, outer Ops
	s := inner.Write(Op{Type: TypeMacro})
	inner.Write(Op{Type: TypePaint})
	inner.FillMacro(s)

	s2 := outer.Write(Op{Type: TypeMacro})
	outer.AddCall(&inner, s, inner.Data()[s].End)
	outer.AddCall(&inner, s, inner.Data()[s].End)
	outer.FillMacro(s2)
	outer.AddCall(&outer, s2, outer.Data()[s2].End)

	var r Reader
	r.Reset(&outer)
	n := 0
	for op, ok := r.Decode(); ok; op, ok = r.Decode() {
		if op.Type != TypePaint {
			t.Errorf("unexpected op type %d", op.Type)
		}
		n++
	}
	if n != 2 {
		t.Errorf("decoded %d paint ops, want 2", n)
	}
}
