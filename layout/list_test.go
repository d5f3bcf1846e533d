// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
	"testing"

	"gioui.org/codelab/op"
)

func TestListPositionExtremes(t *testing.T) {
	var l List
	gtx := Context{
		Ops:         new(op.Ops),
		Constraints: Exact(image.Pt(20, 10)),
	}
	const n = 3
	layout := func(_ Context, idx int) Dimensions {
		if idx < 0 || idx >= n {
			t.Errorf("list index %d out of bounds [0;%d]", idx, n-1)
		}
		return Dimensions{}
	}
	l.Position.First = -1
	l.Layout(gtx, n, layout)
	l.Position.First = n + 1
	l.Layout(gtx, n, layout)
}

func TestEmptyList(t *testing.T) {
	var l List
	gtx := Context{
		Ops:         new(op.Ops),
		Constraints: Exact(image.Pt(20, 10)),
	}
	dims := l.Layout(gtx, 0, nil)
	if got, want := dims.Size, gtx.Constraints.Min; got != want {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestListScrollToEnd(t *testing.T) {
	l := List{
		ScrollToEnd: true,
	}
	gtx := Context{
		Ops:         new(op.Ops),
		Constraints: Exact(image.Pt(20, 10)),
	}
	l.Layout(gtx, 1, func(gtx Context, idx int) Dimensions {
		return Dimensions{
			Size: image.Pt(10, 10),
		}
	})
	if want, got := -10, l.Position.Offset; want != got {
		t.Errorf("got offset %d, want %d", got, want)
	}
}

func TestListPosition(t *testing.T) {
	gtx := Context{
		Ops: new(op.Ops),
		Constraints: Constraints{
			Max: image.Pt(20, 10),
		},
	}
	el := func(gtx Context, idx int) Dimensions {
		return Dimensions{Size: image.Pt(10, 10)}
	}
	for _, tc := range []struct {
		label  string
		num    int
		scroll int
		first  int
		count  int
		offset int
		last   int
	}{
		{label: "no item", last: 20},
		{label: "1 visible 0 hidden", num: 1, count: 1, last: 10},
		{label: "2 visible 0 hidden", num: 2, count: 2},
		{label: "2 visible 1 hidden", num: 3, count: 2},
		{label: "3 visible 0 hidden small scroll", num: 3, count: 3, offset: 5, last: -5, scroll: 5},
		{label: "3 visible 0 hidden small scroll 2", num: 3, count: 3, offset: 3, last: -7, scroll: 3},
		{label: "2 visible 1 hidden large scroll", num: 3, count: 2, first: 1, scroll: 10},
	} {
		t.Run(tc.label, func(t *testing.T) {
			gtx.Ops.Reset()

			var list List
			// Initialize the list.
			list.Layout(gtx, tc.num, el)
			// Scroll and let the list apply it.
			list.Scroll(tc.scroll)
			list.Layout(gtx, tc.num, el)

			pos := list.Position
			if got, want := pos.First, tc.first; got != want {
				t.Errorf("List: invalid first position: got %v; want %v", got, want)
			}
			if got, want := pos.Count, tc.count; got != want {
				t.Errorf("List: invalid number of visible children: got %v; want %v", got, want)
			}
			if got, want := pos.Offset, tc.offset; got != want {
				t.Errorf("List: invalid first visible offset: got %v; want %v", got, want)
			}
			if got, want := pos.OffsetLast, tc.last; got != want {
				t.Errorf("List: invalid last visible offset: got %v; want %v", got, want)
			}
		})
	}
}

func TestExtraChildren(t *testing.T) {
	var l List
	l.Position.First = 1
	gtx := Context{
		Ops:         new(op.Ops),
		Constraints: Exact(image.Pt(10, 10)),
	}
	count := 0
	const all = 3
	l.Layout(gtx, all, func(gtx Context, idx int) Dimensions {
		count++
		return Dimensions{Size: image.Pt(10, 10)}
	})
	if count != all {
		t.Errorf("laid out %d of %d children", count, all)
	}
}

func TestListScrollTo(t *testing.T) {
	l := List{Axis: Vertical}
	gtx := Context{
		Ops:         new(op.Ops),
		Constraints: Exact(image.Pt(50, 100)),
	}
	const n = 100
	var laidOut []int
	el := func(gtx Context, idx int) Dimensions {
		laidOut = append(laidOut, idx)
		return Dimensions{Size: image.Pt(50, 20)}
	}
	l.Layout(gtx, n, el)
	if got, want := l.Position.Count, 5; got != want {
		t.Errorf("visible children: got %d, want %d", got, want)
	}
	if !l.Position.BeforeEnd {
		t.Error("fresh list reports being at the end")
	}

	l.ScrollTo(n - 1)
	gtx.Ops.Reset()
	l.Layout(gtx, n, el)
	if got, want := l.Position.First, n-5; got != want {
		t.Errorf("after ScrollTo(last): first = %d, want %d", got, want)
	}
	if l.Position.BeforeEnd {
		t.Error("list scrolled to the last item reports BeforeEnd")
	}

	l.ScrollTo(0)
	laidOut = laidOut[:0]
	gtx.Ops.Reset()
	l.Layout(gtx, n, el)
	if got := l.Position.First; got != 0 {
		t.Errorf("after ScrollTo(0): first = %d, want 0", got)
	}
	if len(laidOut) != 5 || laidOut[0] != 0 {
		t.Errorf("laid out %v, want the first five children", laidOut)
	}
}

func TestListScrollBy(t *testing.T) {
	l := List{Axis: Vertical}
	gtx := Context{
		Ops:         new(op.Ops),
		Constraints: Exact(image.Pt(50, 100)),
	}
	el := func(gtx Context, idx int) Dimensions {
		return Dimensions{Size: image.Pt(50, 20)}
	}
	l.Layout(gtx, 50, el)
	if got, want := l.Position.Length, 1000; got != want {
		t.Errorf("estimated length %d, want %d", got, want)
	}
	l.ScrollBy(2.5)
	gtx.Ops.Reset()
	l.Layout(gtx, 50, el)
	if got, want := l.Position.First, 2; got != want {
		t.Errorf("first = %d, want %d", got, want)
	}
	if got, want := l.Position.Offset, 10; got != want {
		t.Errorf("offset = %d, want %d", got, want)
	}
}
