// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
)

// StaggeredGrid packs children into a fixed number of rows. Child i
// goes to row i mod Rows regardless of its size; rows are filled left
// to right and stacked top to bottom, each row as tall as its tallest
// child.
//
// Rows are not wrapped: a row may be wider than the maximum width
// constraint, in which case it overflows the grid. Only the grid's own
// size is constrained.
type StaggeredGrid struct {
	// Rows is the number of rows. Values less than one are treated
	// as a single row.
	Rows int
}

// Arrange measures and places children and returns the size of the
// grid. Every child is measured with cs unmodified.
func (g StaggeredGrid) Arrange(cs Constraints, children []Measurable) image.Point {
	rows := g.Rows
	if rows < 1 {
		rows = 1
	}
	rowWidths := make([]int, rows)
	rowHeights := make([]int, rows)
	placeables := make([]Placeable, len(children))
	for i, child := range children {
		p := child.Measure(cs)
		sz := p.Size()
		row := i % rows
		rowWidths[row] += sz.X
		if sz.Y > rowHeights[row] {
			rowHeights[row] = sz.Y
		}
		placeables[i] = p
	}

	var size image.Point
	for _, w := range rowWidths {
		if w > size.X {
			size.X = w
		}
	}
	for _, h := range rowHeights {
		size.Y += h
	}
	size = cs.Constrain(size)

	// Vertical offset of each row, accumulated from the rows above.
	rowY := make([]int, rows)
	for i := 1; i < rows; i++ {
		rowY[i] = rowY[i-1] + rowHeights[i-1]
	}
	// Horizontal offset placed up to, per row.
	rowX := make([]int, rows)
	for i, p := range placeables {
		row := i % rows
		p.Place(image.Pt(rowX[row], rowY[row]))
		rowX[row] += p.Size().X
	}
	return size
}

// Layout lays out widgets in a staggered grid.
func (g StaggeredGrid) Layout(gtx Context, children ...Widget) Dimensions {
	size := g.Arrange(gtx.Constraints, measurables(gtx, children))
	return Dimensions{Size: size}
}
