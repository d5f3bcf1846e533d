// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The codelab command renders the screens of the layouts codelab to PNG
images.

Usage:

	codelab [flags]

The -screen flag selects the screen to render, or all to render every
screen. Screens are basics, greetings, layouts, scrolling, simplelist,
twotexts, photographer, column, baseline and rally.

The -o flag specifies the output file, or the output directory when
rendering all screens. The default is <screen>.png in the current
directory.

The -width and -height flags set the window size in dp. The -scale flag
sets the number of pixels per dp.

The -lang flag selects the language of the strings, for example en or ko.

The -v flag logs rendering details to standard error.
`
