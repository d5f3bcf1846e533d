// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"gioui.org/codelab/layout"
)

// Bool is a boolean toggled by clicks, such as the expanded state of
// a card.
type Bool struct {
	Value bool

	clk Clickable

	changed bool
}

// Click queues a toggle.
func (b *Bool) Click() {
	b.clk.Click()
}

// Update processes pending clicks and reports whether Value changed.
func (b *Bool) Update() bool {
	changed := false
	for b.clk.Clicked() {
		b.Value = !b.Value
		b.changed = true
		changed = true
	}
	return changed
}

// Changed reports whether Value has changed since the last
// call to Changed.
func (b *Bool) Changed() bool {
	changed := b.changed
	b.changed = false
	return changed
}

func (b *Bool) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	b.Update()
	return b.clk.Layout(gtx, w)
}
