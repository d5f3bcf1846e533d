// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"gioui.org/codelab/layout"
	"gioui.org/codelab/op/clip"
	"gioui.org/codelab/op/paint"
	"gioui.org/codelab/unit"
	"gioui.org/codelab/widget"
)

// AppBarAction is an icon button at the end of a top app bar.
type AppBarAction struct {
	Icon   *widget.Icon
	Button *widget.Clickable
}

// TopAppBarStyle lays out a title and a row of actions in a bar that
// spans the maximum width.
type TopAppBarStyle struct {
	Title      LabelStyle
	Background color.NRGBA
	// Color is the color of the action icons.
	Color   color.NRGBA
	Height  unit.Dp
	Actions []AppBarAction
}

func TopAppBar(th *Theme, title string, actions ...AppBarAction) TopAppBarStyle {
	t := H6(th, title)
	t.Color = th.Palette.ContrastFg
	t.MaxLines = 1
	return TopAppBarStyle{
		Title:      t,
		Background: th.Palette.ContrastBg,
		Color:      th.Palette.ContrastFg,
		Height:     56,
		Actions:    actions,
	}
}

func (a TopAppBarStyle) Layout(gtx layout.Context) layout.Dimensions {
	sz := gtx.Constraints.Constrain(image.Point{
		X: gtx.Constraints.Max.X,
		Y: gtx.Dp(a.Height),
	})
	paint.FillShape(gtx.Ops, a.Background, clip.Rect{Max: sz}.Op())
	gtx.Constraints = layout.Exact(sz)

	children := []layout.FlexChild{
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.Y = 0
			return layout.Inset{Left: 16, Right: 16}.Layout(gtx, a.Title.Layout)
		}),
	}
	for _, act := range a.Actions {
		act := act
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min = image.Point{}
			return IconButtonStyle{
				Color:  a.Color,
				Icon:   act.Icon,
				Size:   24,
				Inset:  layout.UniformInset(12),
				Button: act.Button,
			}.Layout(gtx)
		}))
	}
	layout.Flex{Alignment: layout.Middle}.Layout(gtx, children...)
	return layout.Dimensions{Size: sz}
}
