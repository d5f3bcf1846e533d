// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
	"reflect"
	"testing"
)

// box is a Measurable with a fixed size that records its placement.
type box struct {
	size     image.Point
	measured []Constraints
	placed   []image.Point
}

func (b *box) Measure(cs Constraints) Placeable {
	b.measured = append(b.measured, cs)
	return b
}

func (b *box) Size() image.Point { return b.size }

func (b *box) Place(pt image.Point) { b.placed = append(b.placed, pt) }

func boxes(sizes ...image.Point) ([]*box, []Measurable) {
	bs := make([]*box, len(sizes))
	ms := make([]Measurable, len(sizes))
	for i, sz := range sizes {
		bs[i] = &box{size: sz}
		ms[i] = bs[i]
	}
	return bs, ms
}

var unbounded = Constraints{Max: image.Pt(inf, inf)}

func TestStaggeredGridExample(t *testing.T) {
	bs, ms := boxes(image.Pt(10, 5), image.Pt(20, 8), image.Pt(5, 5), image.Pt(10, 10))
	size := StaggeredGrid{Rows: 3}.Arrange(unbounded, ms)
	if want := image.Pt(20, 23); size != want {
		t.Errorf("grid size: got %v, want %v", size, want)
	}
	want := []image.Point{{0, 0}, {0, 10}, {0, 18}, {10, 0}}
	for i, b := range bs {
		if len(b.placed) != 1 {
			t.Fatalf("child %d placed %d times, want once", i, len(b.placed))
		}
		if got := b.placed[0]; got != want[i] {
			t.Errorf("child %d: placed at %v, want %v", i, got, want[i])
		}
	}
}

func TestStaggeredGridRowAssignment(t *testing.T) {
	for _, rows := range []int{1, 2, 3, 5, 8} {
		for _, n := range []int{0, 1, 4, 7, 19} {
			sizes := make([]image.Point, n)
			for i := range sizes {
				sizes[i] = image.Pt(3+i%4, 2+i%3)
			}
			bs, ms := boxes(sizes...)
			StaggeredGrid{Rows: rows}.Arrange(unbounded, ms)

			rowY := make(map[int]int)
			lastX := make(map[int]int)
			for i, b := range bs {
				row := i % rows
				pt := b.placed[0]
				if y, ok := rowY[row]; ok && y != pt.Y {
					t.Errorf("rows=%d n=%d: child %d at y=%d, row %d is at y=%d", rows, n, i, pt.Y, row, y)
				}
				rowY[row] = pt.Y
				if x, ok := lastX[row]; ok && pt.X <= x {
					t.Errorf("rows=%d n=%d: child %d at x=%d, not right of x=%d", rows, n, i, pt.X, x)
				}
				lastX[row] = pt.X
			}
		}
	}
}

func TestStaggeredGridConstraints(t *testing.T) {
	sizes := []image.Point{{10, 5}, {20, 8}, {5, 5}, {10, 10}}
	for _, tc := range []struct {
		label string
		cs    Constraints
		want  image.Point
	}{
		{"unbounded", unbounded, image.Pt(20, 23)},
		{"min", Constraints{Min: image.Pt(50, 40), Max: image.Pt(100, 100)}, image.Pt(50, 40)},
		{"max", Constraints{Max: image.Pt(15, 20)}, image.Pt(15, 20)},
		{"exact", Exact(image.Pt(7, 7)), image.Pt(7, 7)},
	} {
		t.Run(tc.label, func(t *testing.T) {
			bs, ms := boxes(sizes...)
			got := StaggeredGrid{Rows: 3}.Arrange(tc.cs, ms)
			if got != tc.want {
				t.Errorf("got size %v, want %v", got, tc.want)
			}
			for i, b := range bs {
				if len(b.measured) != 1 || b.measured[0] != tc.cs {
					t.Errorf("child %d measured with %v, want %v once", i, b.measured, tc.cs)
				}
			}
			// Rows overflow rather than wrap; placements ignore the clamp.
			if got, want := bs[3].placed[0], image.Pt(10, 0); got != want {
				t.Errorf("child 3 placed at %v, want %v", got, want)
			}
		})
	}
}

func TestStaggeredGridEmpty(t *testing.T) {
	cs := Constraints{Min: image.Pt(12, 34), Max: image.Pt(100, 100)}
	if got, want := (StaggeredGrid{Rows: 4}).Arrange(cs, nil), cs.Min; got != want {
		t.Errorf("empty grid: got %v, want %v", got, want)
	}
}

func TestStaggeredGridMoreRowsThanChildren(t *testing.T) {
	bs, ms := boxes(image.Pt(4, 3), image.Pt(6, 2))
	size := StaggeredGrid{Rows: 10}.Arrange(unbounded, ms)
	if want := image.Pt(6, 5); size != want {
		t.Errorf("got %v, want %v", size, want)
	}
	if got, want := bs[1].placed[0], image.Pt(0, 3); got != want {
		t.Errorf("child 1 placed at %v, want %v", got, want)
	}
}

func TestStaggeredGridInvalidRows(t *testing.T) {
	for _, rows := range []int{0, -3} {
		bs, ms := boxes(image.Pt(4, 3), image.Pt(6, 2))
		size := StaggeredGrid{Rows: rows}.Arrange(unbounded, ms)
		if want := image.Pt(10, 3); size != want {
			t.Errorf("rows=%d: got %v, want %v", rows, size, want)
		}
		if got, want := bs[1].placed[0], image.Pt(4, 0); got != want {
			t.Errorf("rows=%d: child 1 placed at %v, want %v", rows, got, want)
		}
	}
}

func TestStaggeredGridIdempotent(t *testing.T) {
	sizes := []image.Point{{3, 9}, {8, 1}, {4, 4}, {7, 2}, {1, 6}}
	g := StaggeredGrid{Rows: 2}
	cs := Constraints{Max: image.Pt(12, 100)}
	bs1, ms1 := boxes(sizes...)
	bs2, ms2 := boxes(sizes...)
	s1 := g.Arrange(cs, ms1)
	s2 := g.Arrange(cs, ms2)
	if s1 != s2 {
		t.Errorf("sizes differ: %v != %v", s1, s2)
	}
	for i := range bs1 {
		if !reflect.DeepEqual(bs1[i].placed, bs2[i].placed) {
			t.Errorf("child %d placements differ: %v != %v", i, bs1[i].placed, bs2[i].placed)
		}
	}
}

func TestStaggeredGridWidgets(t *testing.T) {
	gtx := testContext(unbounded)
	dims := StaggeredGrid{Rows: 3}.Layout(gtx,
		sizedWidget(10, 5),
		sizedWidget(20, 8),
		sizedWidget(5, 5),
		sizedWidget(10, 10),
	)
	if want := image.Pt(20, 23); dims.Size != want {
		t.Errorf("got size %v, want %v", dims.Size, want)
	}
	got := paintOffsets(gtx.Ops)
	want := []image.Point{{0, 0}, {0, 10}, {0, 18}, {10, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("painted at %v, want %v", got, want)
	}
}

func BenchmarkStaggeredGrid(b *testing.B) {
	gtx := testContext(Constraints{Max: image.Pt(1000, 1000)})
	children := make([]Widget, 19)
	for i := range children {
		children[i] = sizedWidget(40+i, 30)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gtx.Ops.Reset()
		StaggeredGrid{Rows: 5}.Layout(gtx, children...)
	}
}
