// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"gioui.org/codelab/layout"
)

// Clickable represents a clickable area. Clicks are queued with Click
// and consumed with Clicked or Clicks.
type Clickable struct {
	clicks []Click
	// prevClicks is the index into clicks that marks the clicks
	// from the most recent Layout call. prevClicks is used to keep
	// clicks bounded.
	prevClicks int
}

// Click represents a click.
type Click struct {
	NumClicks int
}

// Click queues a single click, as if the area was tapped.
func (b *Clickable) Click() {
	b.clicks = append(b.clicks, Click{NumClicks: 1})
}

// Clicked reports whether there are pending clicks as would be
// reported by Clicks. If so, Clicked removes the earliest click.
func (b *Clickable) Clicked() bool {
	if len(b.clicks) == 0 {
		return false
	}
	n := copy(b.clicks, b.clicks[1:])
	b.clicks = b.clicks[:n]
	if b.prevClicks > 0 {
		b.prevClicks--
	}
	return true
}

// Clicks returns and clear the clicks since the last call to Clicks.
func (b *Clickable) Clicks() []Click {
	clicks := b.clicks
	b.clicks = nil
	b.prevClicks = 0
	return clicks
}

// Layout and update the clickable area. Clicks not consumed since the
// previous Layout are discarded.
func (b *Clickable) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	b.update()
	return w(gtx)
}

func (b *Clickable) update() {
	// Flush clicks from before the last update.
	n := copy(b.clicks, b.clicks[b.prevClicks:])
	b.clicks = b.clicks[:n]
	b.prevClicks = n
}
