// SPDX-License-Identifier: Unlicense OR MIT

package codelab

import (
	"image"
	"strings"

	"gioui.org/codelab/internal/f32color"
	"gioui.org/codelab/layout"
	"gioui.org/codelab/op/clip"
	"gioui.org/codelab/op/paint"
	"gioui.org/codelab/widget"
	"gioui.org/codelab/widget/material"
)

// RallyTab is a tab of the Rally top app bar.
type RallyTab uint8

const (
	Overview RallyTab = iota
	Accounts
	Bills
)

// RallyTabs lists the tabs in display order.
var RallyTabs = []RallyTab{Overview, Accounts, Bills}

func (s RallyTab) String() string {
	switch s {
	case Overview:
		return "Overview"
	case Accounts:
		return "Accounts"
	case Bills:
		return "Bills"
	default:
		panic("unreachable")
	}
}

func (s RallyTab) icon(th *Theme) *widget.Icon {
	switch s {
	case Accounts:
		return th.Icon.Accounts
	case Bills:
		return th.Icon.Bills
	default:
		return th.Icon.Overview
	}
}

// RallyTopAppBar is a row of tabs. Every tab shows its icon; the
// current tab also shows its name in capitals.
type RallyTopAppBar struct {
	Current RallyTab
	tabs    [3]widget.Clickable
}

// Select queues a click on the tab of s.
func (r *RallyTopAppBar) Select(s RallyTab) {
	r.tabs[s].Click()
}

func (r *RallyTopAppBar) Layout(gtx layout.Context, th *Theme) layout.Dimensions {
	for _, s := range RallyTabs {
		for r.tabs[s].Clicked() {
			r.Current = s
		}
	}
	sz := gtx.Constraints.Constrain(image.Pt(gtx.Constraints.Max.X, gtx.Dp(56)))
	paint.FillShape(gtx.Ops, th.Palette.Bg, clip.Rect{Max: sz}.Op())
	gtx.Constraints = layout.Exact(sz)
	tabs := make([]layout.FlexChild, len(RallyTabs))
	for i, s := range RallyTabs {
		s := s
		tabs[i] = layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.Y = 0
			return r.tab(gtx, th, s)
		})
	}
	layout.Flex{Alignment: layout.Middle}.Layout(gtx, tabs...)
	return layout.Dimensions{Size: sz}
}

func (r *RallyTopAppBar) tab(gtx layout.Context, th *Theme, s RallyTab) layout.Dimensions {
	selected := s == r.Current
	c := th.Palette.Fg
	if !selected {
		c = f32color.MulAlpha(c, 0x99)
	}
	return r.tabs[s].Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.UniformInset(16).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			children := []layout.FlexChild{
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return s.icon(th).Layout(gtx, c)
				}),
			}
			if selected {
				name := material.Body2(th.Theme, strings.ToUpper(s.String()))
				name.Color = c
				children = append(children,
					layout.Rigid(layout.Spacer{Width: 12}.Layout),
					layout.Rigid(name.Layout),
				)
			}
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx, children...)
		})
	})
}
