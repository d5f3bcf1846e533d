// SPDX-License-Identifier: Unlicense OR MIT

package codelab

import (
	"image"

	"golang.org/x/image/colornames"

	"gioui.org/codelab/font"
	"gioui.org/codelab/internal/f32color"
	"gioui.org/codelab/layout"
	"gioui.org/codelab/widget"
	"gioui.org/codelab/widget/material"
)

// TwoTexts places two texts side by side, separated by a divider as
// tall as the taller text.
func TwoTexts(gtx layout.Context, th *Theme, text1, text2 string) layout.Dimensions {
	divider := material.Divider(th.Theme)
	divider.Axis = layout.Vertical
	divider.Fill = nrgba(colornames.Black)
	return layout.IntrinsicHeight{}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{}.Layout(gtx,
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{Left: 4}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.W.Layout(gtx, material.Body1(th.Theme, text1).Layout)
				})
			}),
			layout.Rigid(divider.Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{Left: 4}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.E.Layout(gtx, material.Body1(th.Theme, text2).Layout)
				})
			}),
		)
	})
}

// PhotographerCard shows an avatar placeholder next to a name and the
// time of the last activity, on a clickable rounded surface.
type PhotographerCard struct {
	Click widget.Clickable
	// Name defaults to Alfred Sisley.
	Name string
	// MinutesAgo is the age of the last activity; zero means 3.
	MinutesAgo int
}

func (p *PhotographerCard) Layout(gtx layout.Context, th *Theme) layout.Dimensions {
	name := p.Name
	if name == "" {
		name = "Alfred Sisley"
	}
	minutes := p.MinutesAgo
	if minutes == 0 {
		minutes = 3
	}
	surface := material.Surface(th.Theme)
	surface.Shape = material.RoundedShape
	surface.CornerRadius = 4
	return layout.UniformInset(8).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return surface.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return p.Click.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(16).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							avatar := material.Surface(th.Theme)
							avatar.Shape = material.CircleShape
							avatar.Color = f32color.MulAlpha(th.Palette.Fg, 0x33)
							sz := gtx.Dp(50)
							gtx.Constraints = layout.Exact(gtx.Constraints.Constrain(image.Pt(sz, sz)))
							return avatar.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
								return layout.Dimensions{Size: gtx.Constraints.Min}
							})
						}),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return layout.Inset{Left: 8}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
								title := material.Body1(th.Theme, name)
								title.Font.Weight = font.Bold
								age := material.Body2(th.Theme, th.Printer.Sprintf(msgMinutesAgo, minutes))
								age.Color = f32color.MulAlpha(th.Palette.Fg, 0x99)
								return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
									layout.Rigid(title.Layout),
									layout.Rigid(age.Layout),
								)
							})
						}),
					)
				})
			})
		})
	})
}

// ColumnText are the lines of MyOwnColumn.
var ColumnText = []string{
	"Hi There!!",
	"Thanks for going through the Layouts codelab",
	"MyOwnColumn",
	"places items",
	"vertically.",
	"We've done it by hand!",
}

// MyOwnColumn stacks ColumnText with layout.Column, the hand-written
// single pass column.
func MyOwnColumn(gtx layout.Context, th *Theme) layout.Dimensions {
	fillMax(gtx, th.Palette.Bg)
	return layout.UniformInset(8).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		children := make([]layout.Widget, len(ColumnText))
		for i, t := range ColumnText {
			children[i] = material.Body1(th.Theme, t).Layout
		}
		return layout.Column{}.Layout(gtx, children...)
	})
}

// FirstBaselineDemo compares a text whose first baseline is 32dp from
// the top with a text padded 32dp from the top.
func FirstBaselineDemo(gtx layout.Context, th *Theme) layout.Dimensions {
	fillMax(gtx, th.Palette.Bg)
	hi := th.Printer.Sprintf(msgHiThere)
	return layout.Flex{Spacing: layout.SpaceEvenly}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.FirstBaselineToTop{Distance: 32}.Layout(gtx, material.Body1(th.Theme, hi).Layout)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Top: 32}.Layout(gtx, material.Body1(th.Theme, hi).Layout)
		}),
	)
}
