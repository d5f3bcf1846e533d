// SPDX-License-Identifier: Unlicense OR MIT

package codelab

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/iconvg"
	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/image/colornames"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gioui.org/codelab/font"
	"gioui.org/codelab/internal/f32color"
	"gioui.org/codelab/layout"
	"gioui.org/codelab/op/clip"
	"gioui.org/codelab/op/paint"
	"gioui.org/codelab/widget"
	"gioui.org/codelab/widget/material"
)

// Theme extends the material theme with the strings, icons and images
// of the codelab screens. A Theme must only be used from a single
// goroutine.
type Theme struct {
	*material.Theme
	Printer *message.Printer

	// Secondary is the accent color of topic chips.
	Secondary color.NRGBA

	Icon struct {
		Favorite   *widget.Icon
		ExpandMore *widget.Icon
		ExpandLess *widget.Icon
		Overview   *widget.Icon
		Accounts   *widget.Icon
		Bills      *widget.Icon
	}
	// Logo is the image shown in scrolling list rows.
	Logo image.Image
}

const logoSize = 96

// NewTheme loads the icons of the screens and selects the strings
// closest to lang.
func NewTheme(collection []font.FontFace, lang language.Tag) (*Theme, error) {
	th := &Theme{
		Theme:     material.NewTheme(collection),
		Printer:   NewPrinter(lang),
		Secondary: f32color.RGB(0x03dac6),
	}
	for _, ic := range []struct {
		dst  **widget.Icon
		data []byte
	}{
		{&th.Icon.Favorite, icons.ActionFavorite},
		{&th.Icon.ExpandMore, icons.NavigationExpandMore},
		{&th.Icon.ExpandLess, icons.NavigationExpandLess},
		{&th.Icon.Overview, icons.EditorInsertChart},
		{&th.Icon.Accounts, icons.EditorAttachMoney},
		{&th.Icon.Bills, icons.ActionAccountBalance},
	} {
		icon, err := widget.NewIcon(ic.data)
		if err != nil {
			return nil, err
		}
		*ic.dst = icon
	}
	logo, err := rasterize(icons.ActionAndroid, logoSize, nrgba(colornames.Limegreen))
	if err != nil {
		return nil, fmt.Errorf("codelab: logo: %w", err)
	}
	th.Logo = logo
	return th, nil
}

// rasterize draws IconVG data into a square image.
func rasterize(data []byte, size int, c color.NRGBA) (*image.RGBA, error) {
	m, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	var z iconvg.Rasterizer
	z.SetDstImage(img, img.Bounds(), draw.Src)
	m.Palette[0] = f32color.NRGBAToRGBA(c)
	if err := iconvg.Decode(&z, data, &iconvg.DecodeOptions{Palette: &m.Palette}); err != nil {
		return nil, err
	}
	return img, nil
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// fillMax paints the maximum constraint area.
func fillMax(gtx layout.Context, c color.NRGBA) {
	paint.FillShape(gtx.Ops, c, clip.Rect{Max: gtx.Constraints.Max}.Op())
}

// fillMin paints the minimum constraint area, as the background of a
// layout.Background.
func fillMin(gtx layout.Context, c color.NRGBA) layout.Dimensions {
	paint.FillShape(gtx.Ops, c, clip.Rect{Max: gtx.Constraints.Min}.Op())
	return layout.Dimensions{Size: gtx.Constraints.Min}
}
