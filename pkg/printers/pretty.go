package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/trio/pkg/day"
	"tableflip.dev/trio/pkg/glyph"
	"tableflip.dev/trio/pkg/timeutil"
)

// PrettyPrint renders day snapshots for the terminal.
type PrettyPrint struct {
	ShowIndex bool
}

var (
	indent = "  "
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Day prints a full snapshot: the three focus slots, then overflow and inbox
// unless their collapse flags are set.
func (pp *PrettyPrint) Day(s day.Snapshot) {
	heading := s.Date
	if t, err := timeutil.ParseDay(s.Date); err == nil {
		heading = t.Format(timeutil.LayoutUS)
	}
	pp.Title(heading)

	for _, slot := range s.Focus {
		pp.slot(slot)
	}

	if s.Mood != nil {
		f := color.New(color.Faint)
		_, _ = f.Printf("%smood %d/%d\n", indent, *s.Mood, day.MaxMood)
	}

	pp.section("Overflow", s.UI.OverflowCollapsed, len(s.Overflow))
	if !s.UI.OverflowCollapsed {
		for i, item := range s.Overflow {
			pp.item(i, glyph.Task(item.Done), item.Text, item.Done)
		}
	}

	pp.section("Inbox", s.UI.InboxCollapsed, len(s.Inbox))
	if !s.UI.InboxCollapsed {
		for i, item := range s.Inbox {
			bullet := fmt.Sprintf("%s %s", glyph.ForPriority(item.Priority), glyph.Task(item.Done))
			pp.item(i, bullet, item.Text, item.Done)
		}
	}
	fmt.Println("")
}

func (pp *PrettyPrint) slot(slot day.FocusSlot) {
	label := color.New(color.Faint)
	_, _ = label.Printf("%s%-8s", indent, slot.Label)

	if strings.TrimSpace(slot.Text) == "" {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("%s\n", glyph.EmptySlot)
		return
	}

	t := color.New()
	text := slot.Text
	if slot.Done {
		text = glyph.Strike(text)
	}
	_, _ = t.Printf("%s %s\n", glyph.Task(slot.Done), text)
	if slot.Note != "" {
		n := color.New(color.Faint, color.Italic)
		_, _ = n.Printf("%s%-8s  %s\n", indent, "", slot.Note)
	}
}

func (pp *PrettyPrint) section(name string, collapsed bool, count int) {
	t := color.New(color.Bold)
	c := color.New(color.Faint)
	_, _ = t.Printf("\n%s", name)
	_, _ = c.Printf(" - %d", count)
	switch count {
	case 1:
		_, _ = c.Print(" entry")
	default:
		_, _ = c.Print(" entries")
	}
	if collapsed {
		_, _ = c.Print(" (collapsed)")
	}
	fmt.Println("")
}

func (pp *PrettyPrint) item(index int, bullet, text string, done bool) {
	t := color.New()
	if done {
		text = glyph.Strike(text)
	}
	if pp.ShowIndex {
		y := color.New(color.FgHiYellow, color.Italic, color.Faint)
		_, _ = y.Printf("%s%2d ", indent, index)
	} else {
		_, _ = t.Print(indent)
	}
	_, _ = t.Printf("%s %s\n", bullet, text)
}
