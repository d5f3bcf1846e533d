// SPDX-License-Identifier: Unlicense OR MIT

//go:build !race
// +build !race

package layout

import (
	"image"
	"testing"

	"gioui.org/codelab/op"
)

func TestStackAllocs(t *testing.T) {
	var ops op.Ops
	// Warm up the ops buffer.
	for i := 0; i < 2; i++ {
		ops.Reset()
		stackOnce(&ops)
	}
	allocs := testing.AllocsPerRun(1, func() {
		ops.Reset()
		stackOnce(&ops)
	})
	if allocs != 0 {
		t.Errorf("expected no allocs, got %f", allocs)
	}
}

func stackOnce(ops *op.Ops) {
	gtx := Context{
		Ops: ops,
	}
	Stack{}.Layout(gtx,
		Stacked(func(gtx Context) Dimensions {
			return Dimensions{Size: image.Point{X: 50, Y: 50}}
		}),
	)
}

func TestFlexAllocs(t *testing.T) {
	var ops op.Ops
	for i := 0; i < 2; i++ {
		ops.Reset()
		flexOnce(&ops)
	}
	allocs := testing.AllocsPerRun(1, func() {
		ops.Reset()
		flexOnce(&ops)
	})
	if allocs != 0 {
		t.Errorf("expected no allocs, got %f", allocs)
	}
}

func flexOnce(ops *op.Ops) {
	gtx := Context{
		Ops: ops,
	}
	Flex{}.Layout(gtx,
		Rigid(func(gtx Context) Dimensions {
			return Dimensions{Size: image.Point{X: 50, Y: 50}}
		}),
	)
}

func BenchmarkStack(b *testing.B) {
	gtx := Context{
		Ops: new(op.Ops),
		Constraints: Constraints{
			Max: image.Point{X: 100, Y: 100},
		},
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		gtx.Ops.Reset()

		Stack{}.Layout(gtx,
			Expanded(emptyWidget{
				Size: image.Point{X: 60, Y: 60},
			}.Layout),
			Stacked(emptyWidget{
				Size: image.Point{X: 30, Y: 30},
			}.Layout),
		)
	}
}

type emptyWidget struct {
	Size image.Point
}

func (w emptyWidget) Layout(gtx Context) Dimensions {
	return Dimensions{Size: w.Size}
}
