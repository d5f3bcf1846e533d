// SPDX-License-Identifier: Unlicense OR MIT

// Command codelab renders the screens of the layouts codelab to PNG
// images.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"gioui.org/codelab/codelab"
	"gioui.org/codelab/font/gofont"
	"gioui.org/codelab/layout"
	"gioui.org/codelab/op"
	"gioui.org/codelab/raster"
	"gioui.org/codelab/text"
	"gioui.org/codelab/unit"
)

var (
	screenName = flag.String("screen", "layouts", "screen to render, or all.")
	destPath   = flag.String("o", "", "output file, or directory for -screen all.")
	width      = flag.Int("width", 360, "window width in dp.")
	height     = flag.Int("height", 640, "window height in dp.")
	scale      = flag.Float64("scale", 2, "pixels per dp.")
	lang       = flag.String("lang", "en", "language of the strings (en, ko).")
	verbose    = flag.Bool("v", false, "log rendering details.")
)

type renderInfo struct {
	screen codelab.Screen
	lang   language.Tag
	size   image.Point
	metric unit.Metric
	path   string
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "codelab: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func mainErr() error {
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("invalid size %dx%d", *width, *height)
	}
	if *scale <= 0 {
		return fmt.Errorf("invalid -scale %v", *scale)
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		return fmt.Errorf("invalid -lang %s: %w", *lang, err)
	}
	if *verbose {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(l)
		raster.SetLogger(l)
		text.SetLogger(l)
	}
	metric := unit.Metric{PxPerDp: float32(*scale), PxPerSp: float32(*scale)}
	size := image.Pt(metric.Dp(unit.Dp(*width)), metric.Dp(unit.Dp(*height)))
	var screens []codelab.Screen
	dir := "."
	if *screenName == "all" {
		screens = codelab.Screens
		if *destPath != "" {
			dir = *destPath
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
	} else {
		s, err := codelab.ParseScreen(*screenName)
		if err != nil {
			return err
		}
		screens = []codelab.Screen{s}
	}
	var infos []renderInfo
	for _, s := range screens {
		path := filepath.Join(dir, s.String()+".png")
		if len(screens) == 1 && *destPath != "" {
			path = *destPath
		}
		infos = append(infos, renderInfo{
			screen: s,
			lang:   tag,
			size:   size,
			metric: metric,
			path:   path,
		})
	}
	return renderAll(infos)
}

// renderAll renders every screen concurrently.
func renderAll(infos []renderInfo) error {
	if len(infos) == 0 {
		return errors.New("no screens to render")
	}
	var g errgroup.Group
	for _, ri := range infos {
		ri := ri
		g.Go(func() error {
			img, err := render(ri)
			if err != nil {
				return fmt.Errorf("%s: %w", ri.screen, err)
			}
			if err := writePNG(ri.path, img); err != nil {
				return fmt.Errorf("%s: %w", ri.screen, err)
			}
			slog.Debug("codelab: rendered", "screen", ri.screen, "path", ri.path)
			return nil
		})
	}
	return g.Wait()
}

// render lays out a single screen and rasterizes it. Every call uses
// its own theme because shapers are not safe for concurrent use.
func render(ri renderInfo) (*image.RGBA, error) {
	th, err := codelab.NewTheme(gofont.Collection(), ri.lang)
	if err != nil {
		return nil, err
	}
	var (
		ops op.Ops
		app codelab.App
	)
	gtx := layout.NewContext(&ops, ri.metric, ri.size)
	app.Layout(gtx, th, ri.screen)
	return raster.Render(&ops, ri.size, th.Palette.Bg), nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
