// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"gioui.org/codelab/internal/f32color"
	"gioui.org/codelab/layout"
	"gioui.org/codelab/op/clip"
	"gioui.org/codelab/op/paint"
	"gioui.org/codelab/unit"
	"gioui.org/codelab/widget"
)

// CardStyle draws content on a rounded, outlined surface.
type CardStyle struct {
	Background   color.NRGBA
	CornerRadius unit.Dp
	// BorderColor and BorderWidth describe the outline. A zero width
	// disables the outline.
	BorderColor color.NRGBA
	BorderWidth unit.Dp
}

func Card(th *Theme) CardStyle {
	return CardStyle{
		Background:   th.Palette.Bg,
		CornerRadius: 4,
		BorderColor:  f32color.MulAlpha(th.Palette.Fg, 0x1f),
		BorderWidth:  1,
	}
}

func (c CardStyle) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	content := func(gtx layout.Context) layout.Dimensions {
		return layout.Stack{}.Layout(gtx,
			layout.Expanded(func(gtx layout.Context) layout.Dimensions {
				rr := gtx.Dp(c.CornerRadius)
				defer clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, rr).Push(gtx.Ops).Pop()
				paint.Fill(gtx.Ops, c.Background)
				return layout.Dimensions{Size: gtx.Constraints.Min}
			}),
			layout.Stacked(w),
		)
	}
	if c.BorderWidth <= 0 {
		return content(gtx)
	}
	return widget.Border{
		Color:        c.BorderColor,
		CornerRadius: c.CornerRadius,
		Width:        c.BorderWidth,
	}.Layout(gtx, content)
}
