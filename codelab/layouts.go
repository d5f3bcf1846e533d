// SPDX-License-Identifier: Unlicense OR MIT

package codelab

import (
	"image"

	"golang.org/x/image/colornames"

	"gioui.org/codelab/layout"
	"gioui.org/codelab/unit"
	"gioui.org/codelab/widget"
	"gioui.org/codelab/widget/material"
)

// Topics are the chips of BodyContent.
var Topics = []string{
	"Arts & Crafts", "Beauty", "Books", "Business", "Comics", "Culinary",
	"Design", "Fashion", "Film", "History", "Maths", "Music", "People", "Philosophy",
	"Religion", "Social sciences", "Technology", "TV", "Writing",
}

// LayoutsCodelab is a top app bar with a favorite action above
// BodyContent.
type LayoutsCodelab struct {
	Favorite widget.Clickable
	// Favorites counts the clicks on the favorite action.
	Favorites int
	Body      BodyContent
}

func (l *LayoutsCodelab) Layout(gtx layout.Context, th *Theme) layout.Dimensions {
	for l.Favorite.Clicked() {
		l.Favorites++
	}
	fillMax(gtx, th.Palette.Bg)
	gtx.Constraints.Min = gtx.Constraints.Max
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(material.TopAppBar(th.Theme, th.Printer.Sprintf(msgAppTitle),
			material.AppBarAction{Icon: th.Icon.Favorite, Button: &l.Favorite},
		).Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min = image.Point{}
			return l.Body.Layout(gtx, th)
		}),
	)
}

// BodyContent packs the topic chips into a staggered grid of five
// rows, scrolled horizontally inside a 200dp square on a light gray
// background.
type BodyContent struct {
	// Topics overrides the default Topics.
	Topics []string
	// Rows is the number of grid rows; zero means five.
	Rows int

	Scroll layout.List
}

const (
	bodyRows   = 5
	bodyBox    = unit.Dp(200)
	bodyMargin = unit.Dp(16)
)

func (b *BodyContent) Layout(gtx layout.Context, th *Theme) layout.Dimensions {
	topics := b.Topics
	if topics == nil {
		topics = Topics
	}
	rows := b.Rows
	if rows == 0 {
		rows = bodyRows
	}
	b.Scroll.Axis = layout.Horizontal
	chips := make([]layout.Widget, len(topics))
	for i, t := range topics {
		t := t
		chips[i] = func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(8).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return Chip(gtx, th, t)
			})
		}
	}
	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			return fillMin(gtx, nrgba(colornames.Lightgray))
		},
		func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(bodyMargin).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				box := gtx.Dp(bodyBox)
				gtx.Constraints = layout.Exact(gtx.Constraints.Constrain(image.Pt(box, box)))
				return b.Scroll.Layout(gtx, 1, func(gtx layout.Context, _ int) layout.Dimensions {
					// Children of a row are free to be smaller than the box.
					gtx.Constraints.Min = image.Point{}
					return layout.StaggeredGrid{Rows: rows}.Layout(gtx, chips...)
				})
			})
		},
	)
}

// Chip is a topic label with a colored square, in an outlined card
// with rounded corners.
func Chip(gtx layout.Context, th *Theme, text string) layout.Dimensions {
	card := material.Card(th.Theme)
	card.CornerRadius = 8
	card.BorderColor = nrgba(colornames.Black)
	card.BorderWidth = unit.Dp(1 / nonZero(gtx.Metric.PxPerDp))
	return card.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Left: 8, Top: 4, Right: 8, Bottom: 4}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					sz := gtx.Dp(16)
					gtx.Constraints.Min = image.Pt(sz, sz)
					return fillMin(gtx, th.Secondary)
				}),
				layout.Rigid(layout.Spacer{Width: 4}.Layout),
				layout.Rigid(material.Body1(th.Theme, text).Layout),
			)
		})
	})
}

func nonZero(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}
