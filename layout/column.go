// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
)

// Column places children top to bottom at the left edge in a single
// pass. Children are measured with the Column's constraints
// unmodified, and the Column claims its maximum constraints as its
// size, whatever the children need.
//
// Use Flex for columns that size themselves to their content.
type Column struct{}

// Arrange measures and places children and returns the column size.
func (Column) Arrange(cs Constraints, children []Measurable) image.Point {
	placeables := make([]Placeable, len(children))
	for i, child := range children {
		placeables[i] = child.Measure(cs)
	}
	y := 0
	for _, p := range placeables {
		p.Place(image.Pt(0, y))
		y += p.Size().Y
	}
	return cs.Max
}

// Layout lays out widgets in a column.
func (c Column) Layout(gtx Context, children ...Widget) Dimensions {
	size := c.Arrange(gtx.Constraints, measurables(gtx, children))
	return Dimensions{Size: size}
}
