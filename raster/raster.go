// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a software rasterizer for op lists.

A Rasterizer draws the operations of a frame onto an *image.RGBA:
offsets, rectangular, rounded and elliptical clip areas, color and
image materials and lines of text. It is used to render layouts to
image files without a GPU.
*/
package raster

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"gioui.org/codelab/internal/ops"
	"gioui.org/codelab/op"
)

// Rasterizer renders frames. The zero value is ready to use. A
// Rasterizer must not be used by multiple goroutines at once.
type Rasterizer struct {
	reader ops.Reader

	scratch struct {
		transforms []image.Point
		clips      []clipState
		glyphs     sfnt.Buffer
	}
}

type clipState struct {
	// area is the clip area in frame coordinates, before
	// intersection with the parent. Images are scaled to it.
	area image.Rectangle
	// bounds is the intersection of area with the parent bounds.
	bounds image.Rectangle
	// mask is the coverage of the clip stack within bounds, or nil
	// if every pixel of bounds is covered.
	mask *image.Alpha
}

// Render is a shorthand for rendering a frame onto a new image filled
// with bg.
func Render(frame *op.Ops, size image.Point, bg color.NRGBA) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	var r Rasterizer
	r.Frame(frame, img)
	return img
}

// Frame draws the frame over the current contents of frameBuf.
func (r *Rasterizer) Frame(frame *op.Ops, frameBuf *image.RGBA) {
	if frame == nil {
		return
	}
	d := &r.reader
	d.Reset(&frame.Internal)

	stack := r.scratch.transforms[:0]
	clips := r.scratch.clips[:0]
	defer func() {
		r.scratch.transforms = stack
		r.scratch.clips = clips
	}()
	var (
		off      image.Point
		material image.Image = image.NewUniform(color.NRGBA{})
		isImage  bool
		paints   int
		texts    int
	)
	frameClip := clipState{area: frameBuf.Bounds(), bounds: frameBuf.Bounds()}
	top := func() clipState {
		if len(clips) == 0 {
			return frameClip
		}
		return clips[len(clips)-1]
	}
	for encOp, ok := d.Decode(); ok; encOp, ok = d.Decode() {
		switch encOp.Type {
		case ops.TypePushTransform:
			stack = append(stack, off)
			off = off.Add(encOp.Offset)
		case ops.TypeTransform:
			off = off.Add(encOp.Offset)
		case ops.TypePopTransform:
			off = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		case ops.TypePushClip:
			clips = append(clips, pushClip(top(), encOp, off))
		case ops.TypePopClip:
			clips = clips[:len(clips)-1]
		case ops.TypeColor:
			material = image.NewUniform(encOp.Color)
			isImage = false
		case ops.TypeImage:
			material = encOp.Image
			isImage = true
		case ops.TypePaint:
			c := top()
			if c.bounds.Empty() {
				break
			}
			src, sp := material, c.bounds.Min
			if isImage {
				src = scaleImage(material, c.area)
			}
			if c.mask == nil {
				draw.Draw(frameBuf, c.bounds, src, sp, draw.Over)
			} else {
				draw.DrawMask(frameBuf, c.bounds, src, sp, c.mask, c.bounds.Min, draw.Over)
			}
			paints++
		case ops.TypeText:
			r.drawText(frameBuf, top(), material, encOp, off.Add(encOp.Offset))
			texts++
		default:
			Logger().Warn("raster: unsupported op", "type", encOp.Type)
		}
	}
	Logger().Debug("raster: frame",
		"size", frameBuf.Bounds().Size(),
		"paints", paints,
		"texts", texts,
	)
}

// pushClip intersects the parent clip with the area described by o at
// offset off.
func pushClip(parent clipState, o ops.Op, off image.Point) clipState {
	area := o.Bounds.Add(off)
	c := clipState{
		area:   area,
		bounds: area.Intersect(parent.bounds),
	}
	if c.bounds.Empty() {
		c.bounds = image.Rectangle{}
		return c
	}
	if o.Shape == ops.ShapeRect && o.Width == 0 {
		if parent.mask != nil {
			c.mask = image.NewAlpha(c.bounds)
			draw.Draw(c.mask, c.bounds, parent.mask, c.bounds.Min, draw.Src)
		}
		return c
	}
	c.mask = coverage(c.bounds, o.Shape, area, o.Radius, o.Width)
	if parent.mask != nil {
		intersectMask(c.mask, parent.mask)
	}
	return c
}

// intersectMask multiplies the coverage of dst by src over the bounds
// of dst.
func intersectMask(dst, src *image.Alpha) {
	b := dst.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := dst.PixOffset(x, y)
			a := src.AlphaAt(x, y).A
			dst.Pix[i] = uint8(uint32(dst.Pix[i]) * uint32(a) / 0xff)
		}
	}
}

// scaleImage returns src scaled to cover area, in frame coordinates.
func scaleImage(src image.Image, area image.Rectangle) image.Image {
	if src.Bounds().Size() == area.Size() {
		return translated{src, area.Min.Sub(src.Bounds().Min)}
	}
	dst := image.NewRGBA(area)
	xdraw.ApproxBiLinear.Scale(dst, area, src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// translated shifts an image by an offset without copying it.
type translated struct {
	image.Image
	off image.Point
}

func (t translated) Bounds() image.Rectangle {
	return t.Image.Bounds().Add(t.off)
}

func (t translated) At(x, y int) color.Color {
	return t.Image.At(x-t.off.X, y-t.off.Y)
}

// drawText draws the glyph outlines of a line of text with its
// baseline origin at dot.
func (r *Rasterizer) drawText(dst *image.RGBA, c clipState, material image.Image, o ops.Op, dot image.Point) {
	if o.Font == nil || len(o.Glyphs) == 0 || c.bounds.Empty() {
		return
	}
	ppem := o.PxPerEm
	last := o.Glyphs[len(o.Glyphs)-1]
	b := image.Rect(-ppem, -2*ppem, last.X.Ceil()+2*ppem, ppem).Add(dot).Intersect(c.bounds)
	if b.Empty() {
		return
	}
	vr := vector.NewRasterizer(b.Dx(), b.Dy())
	vr.DrawOp = draw.Src
	for _, g := range o.Glyphs {
		segs, err := o.Font.LoadGlyph(&r.scratch.glyphs, sfnt.GlyphIndex(g.ID), fixed.I(ppem), nil)
		if err != nil {
			Logger().Warn("raster: glyph outline", "glyph", g.ID, "err", err)
			continue
		}
		gx := float32(dot.X-b.Min.X) + fixed26ToFloat(g.X)
		gy := float32(dot.Y-b.Min.Y) + fixed26ToFloat(g.Y)
		pt := func(p fixed.Point26_6) (float32, float32) {
			return gx + fixed26ToFloat(p.X), gy + fixed26ToFloat(p.Y)
		}
		for _, seg := range segs {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				vr.ClosePath()
				vr.MoveTo(pt(seg.Args[0]))
			case sfnt.SegmentOpLineTo:
				vr.LineTo(pt(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				x0, y0 := pt(seg.Args[0])
				x1, y1 := pt(seg.Args[1])
				vr.QuadTo(x0, y0, x1, y1)
			case sfnt.SegmentOpCubeTo:
				x0, y0 := pt(seg.Args[0])
				x1, y1 := pt(seg.Args[1])
				x2, y2 := pt(seg.Args[2])
				vr.CubeTo(x0, y0, x1, y1, x2, y2)
			}
		}
		vr.ClosePath()
	}
	mask := image.NewAlpha(b)
	vr.Draw(mask, b, image.Opaque, image.Point{})
	if c.mask != nil {
		intersectMask(mask, c.mask)
	}
	draw.DrawMask(dst, b, material, b.Min, mask, b.Min, draw.Over)
}

func fixed26ToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
