// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"gioui.org/codelab/layout"
)

// Fit scales a widget to fit and clip to the constraints.
type Fit uint8

const (
	// Unscaled does not alter the scale of a widget.
	Unscaled Fit = iota
	// Contain scales widget as large as possible without cropping
	// and it preserves aspect-ratio.
	Contain
	// Cover scales the widget to cover the constraint area and
	// preserves aspect-ratio.
	Cover
	// ScaleDown scales the widget smaller without cropping,
	// when it exceeds the constraint area.
	// It preserves aspect-ratio.
	ScaleDown
	// Fill stretches the widget to the constraints and does not
	// preserve aspect-ratio.
	Fill
)

// scale fits dims to the constraints. It returns the dimensions of the
// fitted area and the rectangle covered by the scaled widget, relative
// to the area. The rectangle may extend beyond the area; callers clip.
func (fit Fit) scale(cs layout.Constraints, pos layout.Direction, dims layout.Dimensions) (layout.Dimensions, image.Rectangle) {
	widgetSize := dims.Size

	if fit == Unscaled || dims.Size.X == 0 || dims.Size.Y == 0 {
		return place(cs, pos, widgetSize)
	}

	scaleX := float32(cs.Max.X) / float32(widgetSize.X)
	scaleY := float32(cs.Max.Y) / float32(widgetSize.Y)

	switch fit {
	case Contain:
		if scaleY < scaleX {
			scaleX = scaleY
		} else {
			scaleY = scaleX
		}
	case Cover:
		if scaleY > scaleX {
			scaleX = scaleY
		} else {
			scaleY = scaleX
		}
	case ScaleDown:
		if scaleY < scaleX {
			scaleX = scaleY
		} else {
			scaleY = scaleX
		}

		// The widget would need to be scaled up, no change needed.
		if scaleX >= 1 {
			return place(cs, pos, widgetSize)
		}
	case Fill:
	}

	scaledSize := image.Point{
		X: int(float32(widgetSize.X) * scaleX),
		Y: int(float32(widgetSize.Y) * scaleY),
	}
	return place(cs, pos, scaledSize)
}

func place(cs layout.Constraints, pos layout.Direction, sz image.Point) (layout.Dimensions, image.Rectangle) {
	dims := layout.Dimensions{Size: cs.Constrain(sz)}
	offset := pos.Position(sz, dims.Size)
	return dims, image.Rectangle{Min: offset, Max: offset.Add(sz)}
}
