// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements common user interface controls. Widgets
// contain persistent state such as toggles and pending clicks. Theme
// packages such as widget/material draw widgets with a consistent
// style.
package widget
