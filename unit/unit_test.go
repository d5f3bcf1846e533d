// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"gioui.org/codelab/unit"
)

func TestMetric_DpToSp(t *testing.T) {
	m := unit.Metric{
		PxPerDp: 2,
		PxPerSp: 3,
	}

	{
		exp := m.Dp(5)
		got := m.Sp(m.DpToSp(5))
		if got != exp {
			t.Errorf("DpToSp conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := m.Sp(5)
		got := m.Dp(m.SpToDp(5))
		if got != exp {
			t.Errorf("SpToDp conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := unit.Dp(5)
		got := m.PxToDp(m.Dp(5))
		if got != exp {
			t.Errorf("PxToDp conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := unit.Sp(5)
		got := m.PxToSp(m.Sp(5))
		if got != exp {
			t.Errorf("PxToSp conversion mismatch %v != %v", exp, got)
		}
	}
}

func TestMetricZeroValue(t *testing.T) {
	var m unit.Metric
	if got := m.Dp(16); got != 16 {
		t.Errorf("zero Metric: got %d px for 16dp, want 16", got)
	}
	if got := m.Sp(14); got != 14 {
		t.Errorf("zero Metric: got %d px for 14sp, want 14", got)
	}
}

func TestMetricScale(t *testing.T) {
	m := unit.Metric{}.Scale(2.5)
	for _, tc := range []struct {
		dp   unit.Dp
		want int
	}{
		{0, 0},
		{1, 3},
		{4, 10},
		{50, 125},
	} {
		if got := m.Dp(tc.dp); got != tc.want {
			t.Errorf("Dp(%v) = %d, want %d", tc.dp, got, tc.want)
		}
	}
}
