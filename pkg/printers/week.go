package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/trio/pkg/glyph"
	"tableflip.dev/trio/pkg/summary"
)

// Week renders a weekly summary as a table with a completion bar per day.
func (pp *PrettyPrint) Week(s summary.Summary) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Date"), glyph.Bold("Done"), glyph.Bold(""), glyph.Bold("Mood"))

	for _, d := range s.PerDay {
		mood := "-"
		if d.Mood != nil {
			mood = fmt.Sprintf("%d", *d.Mood)
		}
		bar := strings.Repeat("█", d.Completed) + strings.Repeat("░", d.Total-d.Completed)
		tbl.AddRow(d.Date, fmt.Sprintf("%d/%d", d.Completed, d.Total), bar, mood)
	}

	_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nWeek")))
	_, _ = fmt.Fprintln(color.Output, tbl)

	c := color.New(color.Faint)
	_, _ = c.Printf("\n%d of %d focus tasks completed", s.Completed, s.Total)
	if s.AverageMood != nil {
		_, _ = c.Printf(", average mood %.1f", *s.AverageMood)
	}
	fmt.Println("")
}
