// SPDX-License-Identifier: Unlicense OR MIT

package gofont

import (
	"testing"

	"gioui.org/codelab/font"
)

func TestCollection(t *testing.T) {
	c := Collection()
	if len(c) == 0 {
		t.Fatal("empty collection")
	}
	if got := c[0].Font; got != (font.Font{Typeface: "Go"}) {
		t.Errorf("first face is %+v, want the regular Go face", got)
	}
	seen := make(map[font.Font]bool)
	for _, f := range c {
		if f.Face == nil || f.Shaping == nil {
			t.Errorf("%+v: missing parsed font", f.Font)
		}
		if seen[f.Font] {
			t.Errorf("duplicate face %+v", f.Font)
		}
		seen[f.Font] = true
	}
	// Appending must not clobber the shared collection.
	_ = append(Collection(), font.FontFace{})
	if len(Collection()) != len(c) {
		t.Error("collection changed length")
	}
}
