// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"gioui.org/codelab/internal/ops"
)

type point struct {
	x, y float32
}

const (
	// Segments per rounded corner.
	cornerSegments = 8
	// Segments per full ellipse.
	ellipseSegments = 64
)

// coverage rasterizes shape over area into a mask covering bounds. A
// positive width outlines the shape instead of filling it.
func coverage(bounds image.Rectangle, shape ops.Shape, area image.Rectangle, radius, width int) *image.Alpha {
	mask := image.NewAlpha(bounds)
	vr := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	vr.DrawOp = draw.Src
	o := point{float32(bounds.Min.X), float32(bounds.Min.Y)}
	addPolygon(vr, outline(shape, area, float32(radius)), o, false)
	if width > 0 {
		inner := area.Inset(width)
		if !inner.Empty() {
			r := float32(radius - width)
			if r < 0 {
				r = 0
			}
			addPolygon(vr, outline(shape, inner, r), o, true)
		}
	}
	vr.Draw(mask, bounds, image.Opaque, image.Point{})
	return mask
}

func addPolygon(vr *vector.Rasterizer, pts []point, o point, reverse bool) {
	if len(pts) == 0 {
		return
	}
	at := func(i int) point {
		if reverse {
			i = len(pts) - 1 - i
		}
		return point{pts[i].x - o.x, pts[i].y - o.y}
	}
	p := at(0)
	vr.MoveTo(p.x, p.y)
	for i := 1; i < len(pts); i++ {
		p := at(i)
		vr.LineTo(p.x, p.y)
	}
	vr.ClosePath()
}

// outline returns the clockwise outline of a shape as a polygon.
func outline(shape ops.Shape, r image.Rectangle, radius float32) []point {
	minX, minY := float32(r.Min.X), float32(r.Min.Y)
	maxX, maxY := float32(r.Max.X), float32(r.Max.Y)
	switch shape {
	case ops.ShapeEllipse:
		cx, cy := (minX+maxX)/2, (minY+maxY)/2
		rx, ry := (maxX-minX)/2, (maxY-minY)/2
		pts := make([]point, 0, ellipseSegments)
		for i := 0; i < ellipseSegments; i++ {
			a := 2 * math.Pi * float64(i) / ellipseSegments
			pts = append(pts, point{
				cx + rx*float32(math.Cos(a)),
				cy + ry*float32(math.Sin(a)),
			})
		}
		return pts
	case ops.ShapeRRect:
		if radius > 0 {
			pts := make([]point, 0, 4*(cornerSegments+1))
			pts = arc(pts, maxX-radius, minY+radius, radius, -math.Pi/2)
			pts = arc(pts, maxX-radius, maxY-radius, radius, 0)
			pts = arc(pts, minX+radius, maxY-radius, radius, math.Pi/2)
			pts = arc(pts, minX+radius, minY+radius, radius, math.Pi)
			return pts
		}
	}
	return []point{{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}}
}

// arc appends a clockwise quarter circle starting at angle start.
func arc(pts []point, cx, cy, r float32, start float64) []point {
	for i := 0; i <= cornerSegments; i++ {
		a := start + math.Pi/2*float64(i)/cornerSegments
		pts = append(pts, point{
			cx + r*float32(math.Cos(a)),
			cy + r*float32(math.Sin(a)),
		})
	}
	return pts
}
