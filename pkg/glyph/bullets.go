package glyph

import (
	"fmt"

	"tableflip.dev/trio/pkg/day"
)

type Glyph struct {
	Key      string
	Symbol   string
	Meaning  string
	Priority bool
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	italicCode    = 3
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 7)

	g = append(g, Glyph{
		Key:     "+",
		Symbol:  "●",
		Meaning: "open task",
	}, Glyph{
		Key:     "x",
		Symbol:  "✘",
		Meaning: "task completed",
	}, Glyph{
		Key:     "_",
		Symbol:  "◌",
		Meaning: "empty focus slot",
	}, Glyph{
		Key:     ">",
		Symbol:  "›",
		Meaning: "task moved to a later day",
	}, Glyph{
		Key:      "!",
		Symbol:   "!",
		Meaning:  "must do",
		Priority: true,
	}, Glyph{
		Key:      "~",
		Symbol:   "~",
		Meaning:  "medium",
		Priority: true,
	}, Glyph{
		Key:      "-",
		Symbol:   "·",
		Meaning:  "nice to have",
		Priority: true,
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

// Task returns the bullet for a task's done state.
func Task(done bool) string {
	if done {
		return "✘"
	}
	return "●"
}

// EmptySlot is the bullet shown for an unfilled focus slot.
const EmptySlot = "◌"

// ForPriority returns the symbol displayed next to an inbox item.
func ForPriority(p day.Priority) string {
	switch p {
	case day.Must:
		return "!"
	case day.Nice:
		return "·"
	default:
		return "~"
	}
}
