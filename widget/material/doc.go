// SPDX-License-Identifier: Unlicense OR MIT

// Package material implements the Material Design look of the codelab
// screens.
//
// To maximize reusability and visual flexibility, user interface controls are
// split into two parts: the widget and the style. The widget, such as
// widget.Clickable, holds state; the style, such as ButtonStyle, is a
// short-lived value created for each frame and consumed by its Layout
// method.
//
// Styles are created from a Theme:
//
//	th := material.NewTheme(gofont.Collection())
//	material.Body1(th, "Hello").Layout(gtx)
//
// The fields of a style may be adjusted before calling Layout.
package material
