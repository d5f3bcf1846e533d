// SPDX-License-Identifier: Unlicense OR MIT

/*
Package codelab implements the screens of the Compose basics and
layouts codelabs on top of the layout, widget and material packages.

Every screen is a struct holding its state, such as list positions,
expanded cards and pending clicks, with a Layout method that draws one
frame:

	th, err := codelab.NewTheme(gofont.Collection(), language.English)
	...
	var screen codelab.LayoutsCodelab
	screen.Layout(gtx, th)

The centrepiece is BodyContent, which packs topic chips into a
five-row layout.StaggeredGrid inside a horizontally scrolled box.
*/
package codelab
