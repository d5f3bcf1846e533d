// SPDX-License-Identifier: Unlicense OR MIT

package codelab

import (
	"image"

	"gioui.org/codelab/layout"
	"gioui.org/codelab/op/paint"
	"gioui.org/codelab/widget"
	"gioui.org/codelab/widget/material"
)

// ScrollingList is a list of image rows below two buttons that jump to
// its first and last rows.
type ScrollingList struct {
	// Size is the number of rows; zero means 100.
	Size int

	List   layout.List
	Top    widget.Clickable
	Bottom widget.Clickable
}

const defaultListSize = 100

func (s *ScrollingList) Layout(gtx layout.Context, th *Theme) layout.Dimensions {
	n := s.Size
	if n == 0 {
		n = defaultListSize
	}
	s.List.Axis = layout.Vertical
	for s.Top.Clicked() {
		s.List.ScrollTo(0)
	}
	for s.Bottom.Clicked() {
		s.List.ScrollTo(n - 1)
	}
	fillMax(gtx, th.Palette.Bg)
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{}.Layout(gtx,
				layout.Rigid(material.Button(th.Theme, &s.Top, th.Printer.Sprintf(msgScrollTop)).Layout),
				layout.Rigid(material.Button(th.Theme, &s.Bottom, th.Printer.Sprintf(msgScrollEnd)).Layout),
			)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return s.List.Layout(gtx, n, func(gtx layout.Context, i int) layout.Dimensions {
				return ImageListItem(gtx, th, i)
			})
		}),
	)
}

// ImageListItem is a 50dp logo followed by the item number.
func ImageListItem(gtx layout.Context, th *Theme, index int) layout.Dimensions {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			sz := gtx.Dp(50)
			gtx.Constraints = layout.Exact(gtx.Constraints.Constrain(image.Pt(sz, sz)))
			return widget.Image{
				Src: paint.NewImageOp(th.Logo),
				Fit: widget.Contain,
			}.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: 10}.Layout),
		layout.Rigid(material.Subtitle1(th.Theme, th.Printer.Sprintf(msgItemNumbered, index)).Layout),
	)
}

// SimpleList is a column of 100 text rows without scrolling.
type SimpleList struct {
	// Size is the number of rows; zero means 100.
	Size int
}

func (s SimpleList) Layout(gtx layout.Context, th *Theme) layout.Dimensions {
	n := s.Size
	if n == 0 {
		n = defaultListSize
	}
	fillMax(gtx, th.Palette.Bg)
	rows := make([]layout.FlexChild, n)
	for i := range rows {
		rows[i] = layout.Rigid(material.Body1(th.Theme, th.Printer.Sprintf(msgItem, i)).Layout)
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, rows...)
}
