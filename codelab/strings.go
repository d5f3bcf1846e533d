// SPDX-License-Identifier: Unlicense OR MIT

package codelab

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. The English text doubles as the key.
const (
	msgWelcome      = "Welcome to the Basics Codelab!"
	msgContinue     = "Continue"
	msgHello        = "Hello,"
	msgShowMore     = "Show more"
	msgShowLess     = "Show less"
	msgLorem        = "Compose lorem ipsum lalabula"
	msgAppTitle     = "LayoutsCodelab"
	msgScrollTop    = "Scroll to the top"
	msgScrollEnd    = "Scroll to the end"
	msgItemNumbered = "Item #%d"
	msgItem         = "Item %d"
	msgMinutesAgo   = "%d minutes ago"
	msgHiThere      = "Hi there"
)

// Supported lists the languages with translations. English is the
// fallback.
var Supported = []language.Tag{
	language.English,
	language.Korean,
}

var matcher = language.NewMatcher(Supported)

var korean = map[string]string{
	msgWelcome:    "기본 코드랩에 오신 것을 환영합니다!",
	msgContinue:   "계속",
	msgHello:      "안녕하세요,",
	msgShowMore:   "더 보기",
	msgShowLess:   "접기",
	msgScrollTop:  "맨 위로",
	msgScrollEnd:  "맨 아래로",
	msgMinutesAgo: "%d분 전",
}

func init() {
	for key, msg := range korean {
		if err := message.SetString(language.Korean, key, msg); err != nil {
			panic(fmt.Errorf("codelab: %q: %w", key, err))
		}
	}
}

// NewPrinter returns a printer for the supported language closest to
// tag.
func NewPrinter(tag language.Tag) *message.Printer {
	_, i, _ := matcher.Match(tag)
	return message.NewPrinter(Supported[i])
}
