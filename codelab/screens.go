// SPDX-License-Identifier: Unlicense OR MIT

package codelab

import (
	"fmt"

	"gioui.org/codelab/layout"
)

// Screen identifies a screen of the App.
type Screen uint8

const (
	BasicsScreen Screen = iota
	GreetingsScreen
	LayoutsScreen
	ScrollingScreen
	SimpleListScreen
	TwoTextsScreen
	PhotographerScreen
	ColumnScreen
	BaselineScreen
	RallyScreen
)

// Screens lists every screen.
var Screens = []Screen{
	BasicsScreen,
	GreetingsScreen,
	LayoutsScreen,
	ScrollingScreen,
	SimpleListScreen,
	TwoTextsScreen,
	PhotographerScreen,
	ColumnScreen,
	BaselineScreen,
	RallyScreen,
}

var screenNames = [...]string{
	BasicsScreen:       "basics",
	GreetingsScreen:    "greetings",
	LayoutsScreen:      "layouts",
	ScrollingScreen:    "scrolling",
	SimpleListScreen:   "simplelist",
	TwoTextsScreen:     "twotexts",
	PhotographerScreen: "photographer",
	ColumnScreen:       "column",
	BaselineScreen:     "baseline",
	RallyScreen:        "rally",
}

func (s Screen) String() string {
	if int(s) < len(screenNames) {
		return screenNames[s]
	}
	return fmt.Sprintf("Screen(%d)", s)
}

// ParseScreen returns the screen with the given name.
func ParseScreen(name string) (Screen, error) {
	for _, s := range Screens {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("codelab: unknown screen %q", name)
}

// App holds the state of every screen.
type App struct {
	Basics       Basics
	Greetings    Greetings
	Layouts      LayoutsCodelab
	Scrolling    ScrollingList
	Photographer PhotographerCard
	Rally        RallyTopAppBar
}

// Layout draws screen s.
func (a *App) Layout(gtx layout.Context, th *Theme, s Screen) layout.Dimensions {
	switch s {
	case BasicsScreen:
		return a.Basics.Layout(gtx, th)
	case GreetingsScreen:
		return a.Greetings.Layout(gtx, th)
	case LayoutsScreen:
		return a.Layouts.Layout(gtx, th)
	case ScrollingScreen:
		return a.Scrolling.Layout(gtx, th)
	case SimpleListScreen:
		return SimpleList{}.Layout(gtx, th)
	case TwoTextsScreen:
		fillMax(gtx, th.Palette.Bg)
		return TwoTexts(gtx, th, th.Printer.Sprintf("Hi"), th.Printer.Sprintf("There"))
	case PhotographerScreen:
		fillMax(gtx, th.Palette.Bg)
		return a.Photographer.Layout(gtx, th)
	case ColumnScreen:
		return MyOwnColumn(gtx, th)
	case BaselineScreen:
		return FirstBaselineDemo(gtx, th)
	case RallyScreen:
		fillMax(gtx, th.Palette.Bg)
		return a.Rally.Layout(gtx, th)
	default:
		panic(fmt.Errorf("codelab: unknown screen %v", s))
	}
}
