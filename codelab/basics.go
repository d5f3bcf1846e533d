// SPDX-License-Identifier: Unlicense OR MIT

package codelab

import (
	"strconv"
	"strings"

	"gioui.org/codelab/font"
	"gioui.org/codelab/layout"
	"gioui.org/codelab/widget"
	"gioui.org/codelab/widget/material"
)

// Basics shows the onboarding screen until its continue button is
// clicked, then the greetings.
type Basics struct {
	// Onboarded is set once the onboarding screen is dismissed.
	Onboarded  bool
	Onboarding Onboarding
	Greetings  Greetings
}

func (b *Basics) Layout(gtx layout.Context, th *Theme) layout.Dimensions {
	for b.Onboarding.Continue.Clicked() {
		b.Onboarded = true
	}
	if !b.Onboarded {
		return b.Onboarding.Layout(gtx, th)
	}
	return b.Greetings.Layout(gtx, th)
}

// Onboarding is a welcome message above a continue button, centered on
// the screen.
type Onboarding struct {
	Continue widget.Clickable
}

func (o *Onboarding) Layout(gtx layout.Context, th *Theme) layout.Dimensions {
	fillMax(gtx, th.Palette.Bg)
	gtx.Constraints.Min = gtx.Constraints.Max
	return layout.Flex{
		Axis:      layout.Vertical,
		Spacing:   layout.SpaceSides,
		Alignment: layout.Middle,
	}.Layout(gtx,
		layout.Rigid(material.Body1(th.Theme, th.Printer.Sprintf(msgWelcome)).Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Top: 24, Bottom: 24}.Layout(gtx,
				material.Button(th.Theme, &o.Continue, th.Printer.Sprintf(msgContinue)).Layout,
			)
		}),
	)
}

// Greetings is a list of greeting cards that expand to show more text.
type Greetings struct {
	// Names are the names greeted. Nil means the numbers 0 to 999.
	Names []string

	list  layout.List
	cards map[int]*greetingCard
}

type greetingCard struct {
	expanded widget.Bool
	toggle   widget.Clickable
}

const defaultGreetings = 1000

func (g *Greetings) Layout(gtx layout.Context, th *Theme) layout.Dimensions {
	fillMax(gtx, th.Palette.Bg)
	g.list.Axis = layout.Vertical
	n := len(g.Names)
	if g.Names == nil {
		n = defaultGreetings
	}
	return layout.Inset{Top: 4, Bottom: 4}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return g.list.Layout(gtx, n, func(gtx layout.Context, i int) layout.Dimensions {
			return g.greeting(gtx, th, i)
		})
	})
}

// Expanded reports whether card i is expanded.
func (g *Greetings) Expanded(i int) bool {
	c, ok := g.cards[i]
	return ok && c.expanded.Value
}

// Toggle queues a click on the expand button of card i.
func (g *Greetings) Toggle(i int) {
	g.card(i).toggle.Click()
}

func (g *Greetings) card(i int) *greetingCard {
	if g.cards == nil {
		g.cards = make(map[int]*greetingCard)
	}
	c, ok := g.cards[i]
	if !ok {
		c = new(greetingCard)
		g.cards[i] = c
	}
	return c
}

func (g *Greetings) name(i int) string {
	if g.Names == nil {
		return strconv.Itoa(i)
	}
	return g.Names[i]
}

func (g *Greetings) greeting(gtx layout.Context, th *Theme, i int) layout.Dimensions {
	c := g.card(i)
	for c.toggle.Clicked() {
		c.expanded.Click()
	}
	card := material.Card(th.Theme)
	card.Background = th.Palette.ContrastBg
	card.BorderWidth = 0
	return layout.Symmetric(4, 8).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return c.expanded.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return card.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(24).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return g.cardContent(gtx, th, c, g.name(i))
				})
			})
		})
	})
}

func (g *Greetings) cardContent(gtx layout.Context, th *Theme, c *greetingCard, name string) layout.Dimensions {
	fg := th.Palette.ContrastFg
	label := func(l material.LabelStyle) layout.Widget {
		l.Color = fg
		return l.Layout
	}
	texts := []layout.FlexChild{
		layout.Rigid(label(material.Body1(th.Theme, th.Printer.Sprintf(msgHello)))),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			l := material.H3(th.Theme, name)
			l.Font.Weight = font.ExtraBold
			return label(l)(gtx)
		}),
	}
	if c.expanded.Value {
		lorem := strings.Repeat(th.Printer.Sprintf(msgLorem), 4)
		texts = append(texts, layout.Rigid(label(material.Body1(th.Theme, lorem))))
	}
	icon, desc := th.Icon.ExpandMore, msgShowMore
	if c.expanded.Value {
		icon, desc = th.Icon.ExpandLess, msgShowLess
	}
	return layout.Flex{Alignment: layout.Start}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(12).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx, texts...)
			})
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					btn := material.IconButton(th.Theme, &c.toggle, icon)
					btn.Background = th.Palette.ContrastBg
					return btn.Layout(gtx)
				}),
				layout.Rigid(label(material.Caption(th.Theme, th.Printer.Sprintf(desc)))),
			)
		}),
	)
}
