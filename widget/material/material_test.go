// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"testing"

	"golang.org/x/exp/shiny/materialdesign/icons"

	"gioui.org/codelab/font"
	"gioui.org/codelab/font/gofont"
	"gioui.org/codelab/internal/ops"
	"gioui.org/codelab/layout"
	"gioui.org/codelab/op"
	"gioui.org/codelab/unit"
	"gioui.org/codelab/widget"
)

func testContext(cs layout.Constraints) layout.Context {
	return layout.Context{
		Ops:         new(op.Ops),
		Constraints: cs,
	}
}

func TestButtonLayout(t *testing.T) {
	th := NewTheme(gofont.Collection())
	gtx := testContext(layout.Exact(image.Pt(100, 100)))

	dims := ButtonLayout(th, new(widget.Clickable)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		if got := gtx.Constraints.Min; got != (image.Point{}) {
			t.Errorf("content minimum is %v, expected zero", got)
		}
		return layout.Dimensions{Size: image.Pt(10, 10)}
	})
	if dims.Size != image.Pt(100, 100) {
		t.Errorf("button size %v, expected the minimum constraint", dims.Size)
	}
}

func TestButtonClick(t *testing.T) {
	th := NewTheme(gofont.Collection())
	var btn widget.Clickable
	gtx := testContext(layout.Constraints{Max: image.Pt(300, 300)})
	btn.Click()
	dims := Button(th, &btn, "Continue").Layout(gtx)
	if dims.Size.X == 0 || dims.Size.Y == 0 {
		t.Errorf("empty button %v", dims.Size)
	}
	if !btn.Clicked() {
		t.Error("button lost its click")
	}
}

func TestIconButtonSize(t *testing.T) {
	th := NewTheme(gofont.Collection())
	ic, err := widget.NewIcon(icons.ActionFavorite)
	if err != nil {
		t.Fatal(err)
	}
	gtx := testContext(layout.Constraints{Max: image.Pt(300, 300)})
	dims := IconButton(th, new(widget.Clickable), ic).Layout(gtx)
	if want := image.Pt(48, 48); dims.Size != want {
		t.Errorf("icon button size %v, want %v", dims.Size, want)
	}
}

func TestDivider(t *testing.T) {
	th := NewTheme(gofont.Collection())
	gtx := testContext(layout.Constraints{Min: image.Pt(0, 40), Max: image.Pt(300, 300)})
	d := Divider(th)
	d.Axis = layout.Vertical
	if got := d.Layout(gtx).Size; got != image.Pt(1, 40) {
		t.Errorf("vertical divider %v, want 1x40", got)
	}
	gtx.Constraints = layout.Constraints{Min: image.Pt(120, 0), Max: image.Pt(300, 300)}
	d.Axis = layout.Horizontal
	d.Thickness = 2
	if got := d.Layout(gtx).Size; got != image.Pt(120, 2) {
		t.Errorf("horizontal divider %v, want 120x2", got)
	}
}

func TestSurfaceClip(t *testing.T) {
	th := NewTheme(gofont.Collection())
	for _, tc := range []struct {
		shape Shape
		want  ops.Shape
	}{
		{RectangleShape, ops.ShapeRect},
		{RoundedShape, ops.ShapeRRect},
		{CircleShape, ops.ShapeEllipse},
	} {
		gtx := testContext(layout.Constraints{Max: image.Pt(100, 100)})
		s := Surface(th)
		s.Shape = tc.shape
		s.CornerRadius = 8
		dims := s.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Dimensions{Size: image.Pt(50, 50)}
		})
		if dims.Size != image.Pt(50, 50) {
			t.Errorf("surface size %v", dims.Size)
		}
		var r ops.Reader
		r.Reset(&gtx.Ops.Internal)
		o, ok := r.Decode()
		for ok && o.Type != ops.TypePushClip {
			o, ok = r.Decode()
		}
		if !ok || o.Shape != tc.want {
			t.Errorf("shape %d: got clip %+v", tc.shape, o)
		}
	}
}

func TestTopAppBar(t *testing.T) {
	th := NewTheme(gofont.Collection())
	ic, err := widget.NewIcon(icons.ActionFavorite)
	if err != nil {
		t.Fatal(err)
	}
	var fav widget.Clickable
	gtx := testContext(layout.Constraints{Max: image.Pt(360, 640)})
	gtx.Metric.PxPerDp = 2
	dims := TopAppBar(th, "LayoutsCodelab", AppBarAction{Icon: ic, Button: &fav}).Layout(gtx)
	if want := image.Pt(360, 112); dims.Size != want {
		t.Errorf("app bar size %v, want %v", dims.Size, want)
	}
}

func TestCard(t *testing.T) {
	th := NewTheme(gofont.Collection())
	gtx := testContext(layout.Constraints{Max: image.Pt(200, 200)})
	dims := Card(th).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return Body1(th, "Hello").Layout(gtx)
	})
	if dims.Size.X == 0 || dims.Size.Y == 0 {
		t.Errorf("empty card %v", dims.Size)
	}
	if dims.Baseline == 0 {
		t.Error("card dropped the label baseline")
	}
}

func TestLabelStyles(t *testing.T) {
	th := NewTheme(gofont.Collection())
	for _, tc := range []struct {
		name   string
		style  func(*Theme, string) LabelStyle
		size   unit.Sp
		weight font.Weight
	}{
		{"H3", H3, 48, font.Normal},
		{"H4", H4, 34, font.Normal},
		{"H5", H5, 24, font.Normal},
		{"H6", H6, 20, font.Medium},
		{"Subtitle1", Subtitle1, 16, font.Normal},
		{"Subtitle2", Subtitle2, 14, font.Medium},
		{"Body1", Body1, 16, font.Normal},
		{"Body2", Body2, 14, font.Normal},
		{"Caption", Caption, 12, font.Normal},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l := tc.style(th, "text")
			if l.TextSize != tc.size {
				t.Errorf("text size %v, want %v", l.TextSize, tc.size)
			}
			if l.Font.Weight != tc.weight {
				t.Errorf("weight %v, want %v", l.Font.Weight, tc.weight)
			}
			if l.Color != th.Fg {
				t.Errorf("color %v, want the foreground %v", l.Color, th.Fg)
			}
		})
	}
}

func TestWithPalette(t *testing.T) {
	th := NewTheme(gofont.Collection())
	orig := th.Palette
	p := Palette{Fg: th.Bg, Bg: th.Fg, ContrastBg: th.ContrastFg, ContrastFg: th.ContrastBg}
	dark := th.WithPalette(p)
	if dark.Palette != p {
		t.Errorf("palette %+v, want %+v", dark.Palette, p)
	}
	if th.Palette != orig {
		t.Error("WithPalette modified the receiver")
	}
	if dark.Shaper != th.Shaper || dark.TextSize != th.TextSize {
		t.Error("WithPalette did not keep the shaper and text size")
	}
	if l := Body1(&dark, "text"); l.Color != p.Fg {
		t.Errorf("label color %v, want %v", l.Color, p.Fg)
	}
}
