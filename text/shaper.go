// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"gioui.org/codelab/font"
)

// Shaper lays out text with a collection of font faces.
//
// A Shaper is not safe for concurrent use; use one per goroutine.
type Shaper struct {
	collection []font.FontFace
	faces      map[*font.FontFace]*gotext.Face
	shaper     shaping.HarfbuzzShaper
	wrapper    shaping.LineWrapper
	buf        sfnt.Buffer
	layouts    layoutCache
}

var (
	errNoFaces = errors.New("text: no font faces")
	ellipsis   = []rune("…")
)

// unbounded is the line width used when breaking is disabled.
const unbounded = 1 << 24

// NewShaper constructs a shaper for the collection. The first face of
// the collection is the fallback for fonts the collection lacks.
func NewShaper(collection []font.FontFace) *Shaper {
	return &Shaper{
		collection: collection,
		faces:      make(map[*font.FontFace]*gotext.Face),
	}
}

// Layout text with the parameters. Text that cannot be shaped yields
// an empty layout, and a warning is logged.
func (s *Shaper) Layout(params Parameters, txt string) Layout {
	key := layoutKey{params: params, str: txt}
	if l, ok := s.layouts.Get(key); ok {
		return l
	}
	l, err := s.layoutText(params, txt)
	if err != nil {
		Logger().Warn("text: layout failed", "font", params.Font, "err", err)
	}
	s.layouts.Put(key, l)
	return l
}

func (s *Shaper) layoutText(params Parameters, txt string) (Layout, error) {
	f := s.closest(params.Font)
	if f == nil || f.Face == nil || f.Shaping == nil {
		return Layout{}, errNoFaces
	}
	face := s.faces[f]
	if face == nil {
		face = gotext.NewFace(f.Shaping)
		s.faces[f] = face
	}
	m, err := f.Face.Metrics(&s.buf, fixed.I(params.PxPerEm), xfont.HintingNone)
	if err != nil {
		return Layout{}, err
	}
	lt := Layout{Font: f.Face, PxPerEm: params.PxPerEm}
	blank := Line{Ascent: m.Ascent.Ceil(), Descent: m.Descent.Ceil()}
	paras := strings.Split(txt, "\n")
	for i, para := range paras {
		runes := []rune(para)
		maxLines := 0
		if params.MaxLines > 0 {
			maxLines = params.MaxLines - len(lt.Lines)
			if maxLines <= 0 {
				// Count the newline ending the previous paragraph.
				lt.Truncated += len(runes) + 1
				continue
			}
		}
		if len(runes) == 0 {
			lt.Lines = append(lt.Lines, blank)
			continue
		}
		continues := i < len(paras)-1
		lines, truncated := s.wrap(face, params, runes, maxLines, continues)
		didTruncate := truncated > 0 || (continues && maxLines > 0 && len(lines) == maxLines)
		lt.Truncated += truncated
		start := 0
		for j, l := range lines {
			last := j == len(lines)-1
			line := toLine(l, runes, last && didTruncate, blank)
			end := len(runes)
			switch {
			case !last:
				next := lines[j+1]
				if j+1 == len(lines)-1 && didTruncate {
					next = next[:len(next)-1]
				}
				end = firstIndex(next, end)
			case truncated > 0:
				end = len(runes) - truncated
			}
			if end < start {
				end = start
			}
			line.Text = string(runes[start:end])
			start = end
			lt.Lines = append(lt.Lines, line)
		}
	}
	return lt, nil
}

// wrap shapes a paragraph and breaks it into lines no wider than
// params.MaxWidth. If maxLines is positive, text past the last allowed
// line is replaced by an ellipsis.
func (s *Shaper) wrap(face *gotext.Face, params Parameters, txt []rune, maxLines int, continues bool) ([]shaping.Line, int) {
	wc := shaping.WrapConfig{
		TruncateAfterLines: maxLines,
		TextContinues:      continues,
	}
	if maxLines > 0 {
		wc.Truncator = s.shape(face, params.PxPerEm, ellipsis)
	}
	maxWidth := params.MaxWidth
	if maxWidth <= 0 {
		maxWidth = unbounded
	}
	out := s.shape(face, params.PxPerEm, txt)
	return s.wrapper.WrapParagraph(wc, maxWidth, txt, shaping.NewSliceIterator([]shaping.Output{out}))
}

func (s *Shaper) shape(face *gotext.Face, ppem int, txt []rune) shaping.Output {
	return s.shaper.Shape(shaping.Input{
		Text:      txt,
		RunStart:  0,
		RunEnd:    len(txt),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.I(ppem),
		Script:    script(txt),
		Language:  language.NewLanguage("en"),
	})
}

// script returns the script of the first letter of txt.
func script(txt []rune) language.Script {
	for _, r := range txt {
		if unicode.IsSpace(r) {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// toLine positions the glyphs of l. If truncated is set, the final
// run of l is the ellipsis.
func toLine(l shaping.Line, txt []rune, truncated bool, metrics Line) Line {
	line := Line{Ascent: metrics.Ascent, Descent: metrics.Descent}
	var pen, width fixed.Int26_6
	for i, run := range l {
		truncator := truncated && i == len(l)-1
		for _, g := range run.Glyphs {
			line.Glyphs = append(line.Glyphs, Glyph{
				ID: uint16(g.GlyphID),
				X:  pen + g.XOffset,
				Y:  -g.YOffset,
			})
			pen += g.Advance
			if truncator || !isSpace(txt, g.TextIndex()) {
				width = pen
			}
		}
	}
	line.Width = width.Ceil()
	return line
}

func isSpace(txt []rune, i int) bool {
	return i >= 0 && i < len(txt) && unicode.IsSpace(txt[i])
}

// firstIndex returns the index of the first rune of l, or def if l has
// no glyphs.
func firstIndex(l shaping.Line, def int) int {
	idx := def
	for _, run := range l {
		for _, g := range run.Glyphs {
			if i := g.TextIndex(); i < idx {
				idx = i
			}
		}
	}
	return idx
}

// closest picks the face best matching fnt: the typeface must match
// unless no face has it, then variant and style, then the nearest
// weight.
func (s *Shaper) closest(fnt font.Font) *font.FontFace {
	var (
		best      *font.FontFace
		bestScore = -1
	)
	for i := range s.collection {
		f := &s.collection[i]
		score := 0
		if fnt.Typeface == "" || f.Font.Typeface == fnt.Typeface {
			score += 1 << 12
		}
		if f.Font.Variant == fnt.Variant {
			score += 1 << 11
		}
		if f.Font.Style == fnt.Style {
			score += 1 << 10
		}
		dw := int(f.Font.Weight - fnt.Weight)
		if dw < 0 {
			dw = -dw
		}
		score += 1<<10 - 1 - dw
		if score > bestScore {
			best, bestScore = f, score
		}
	}
	return best
}
