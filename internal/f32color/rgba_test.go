// SPDX-License-Identifier: Unlicense OR MIT

package f32color

import (
	"image/color"
	"testing"
)

func TestNRGBAToRGBA_Boundary(t *testing.T) {
	for col := 0; col <= 0xFF; col++ {
		for alpha := 0; alpha <= 0xFF; alpha++ {
			in := color.NRGBA{R: uint8(col), A: uint8(alpha)}
			premul := NRGBAToRGBA(in)
			if premul.A != uint8(alpha) {
				t.Errorf("%v: got %v expected %v", in, premul.A, alpha)
			}
			if premul.R > premul.A {
				t.Errorf("%v: R=%v > A=%v", in, premul.R, premul.A)
			}
		}
	}
}

func TestMulAlpha(t *testing.T) {
	for _, tc := range []struct {
		in    color.NRGBA
		alpha uint8
		want  uint8
	}{
		{color.NRGBA{A: 0xFF}, 0xFF, 0xFF},
		{color.NRGBA{A: 0xFF}, 0x00, 0x00},
		{color.NRGBA{A: 0xFF}, 0x99, 0x99},
		{color.NRGBA{A: 0x80}, 0x80, 0x40},
	} {
		got := MulAlpha(tc.in, tc.alpha)
		if got.A != tc.want {
			t.Errorf("MulAlpha(%v, %#x).A = %#x, want %#x", tc.in, tc.alpha, got.A, tc.want)
		}
	}
}

func TestRGB(t *testing.T) {
	if got, want := RGB(0x6200ee), (color.NRGBA{R: 0x62, G: 0x00, B: 0xee, A: 0xff}); got != want {
		t.Errorf("RGB = %v, want %v", got, want)
	}
}

func TestDisabled(t *testing.T) {
	d := Disabled(color.NRGBA{R: 0xff, A: 0xff})
	if d.A >= 0xff {
		t.Errorf("disabled color is still opaque: %v", d)
	}
	if d.R <= d.G {
		t.Errorf("disabled color lost its hue: %v", d)
	}
}

var sink color.RGBA

func BenchmarkNRGBAToRGBA(b *testing.B) {
	b.Run("opaque", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink = NRGBAToRGBA(color.NRGBA{R: byte(i), G: byte(i >> 8), B: byte(i >> 16), A: 0xFF})
		}
	})
	b.Run("translucent", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink = NRGBAToRGBA(color.NRGBA{R: byte(i), G: byte(i >> 8), B: byte(i >> 16), A: 0x50})
		}
	})
}
