// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"

	"gioui.org/codelab/codelab"
	"gioui.org/codelab/unit"
)

func TestRenderAll(t *testing.T) {
	dir := t.TempDir()
	metric := unit.Metric{PxPerDp: 1, PxPerSp: 1}
	size := image.Pt(180, 320)
	var infos []renderInfo
	for _, s := range codelab.Screens {
		infos = append(infos, renderInfo{
			screen: s,
			lang:   language.English,
			size:   size,
			metric: metric,
			path:   filepath.Join(dir, s.String()+".png"),
		})
	}
	if err := renderAll(infos); err != nil {
		t.Fatal(err)
	}
	for _, ri := range infos {
		t.Run(ri.screen.String(), func(t *testing.T) {
			f, err := os.Open(ri.path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			cfg, err := png.DecodeConfig(f)
			if err != nil {
				t.Fatal(err)
			}
			if got := image.Pt(cfg.Width, cfg.Height); got != size {
				t.Errorf("image size is %v, expected %v", got, size)
			}
		})
	}
}

func TestRenderAllEmpty(t *testing.T) {
	if err := renderAll(nil); err == nil {
		t.Error("expected an error for an empty screen list")
	}
}

func TestRenderBadPath(t *testing.T) {
	ri := renderInfo{
		screen: codelab.LayoutsScreen,
		lang:   language.English,
		size:   image.Pt(100, 100),
		metric: unit.Metric{PxPerDp: 1, PxPerSp: 1},
		path:   filepath.Join(t.TempDir(), "missing", "layouts.png"),
	}
	if err := renderAll([]renderInfo{ri}); err == nil {
		t.Error("expected an error writing to a missing directory")
	}
}
