// Package summary derives weekly completion and mood statistics from a set
// of day snapshots. Nothing here is persisted; it is recomputed on demand.
package summary

import (
	"tableflip.dev/trio/pkg/day"
)

// DayStat is one day's contribution to a summary.
type DayStat struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Mood      *int   `json:"mood,omitempty"`
}

// Summary aggregates focus completion and mood over a set of days. Overflow
// and inbox items never count; only focus commitments feed the done signal.
type Summary struct {
	Completed   int       `json:"completed"`
	Total       int       `json:"total"`
	AverageMood *float64  `json:"averageMood,omitempty"`
	PerDay      []DayStat `json:"perDay"`
}

// Week computes a summary over the supplied snapshots, in the order given.
func Week(snaps []day.Snapshot) Summary {
	out := Summary{PerDay: make([]DayStat, 0, len(snaps))}

	moodSum := 0
	moodCount := 0
	for _, s := range snaps {
		stat := DayStat{Date: s.Date, Total: day.FocusSlots}
		for _, slot := range s.Focus {
			if slot.Done {
				stat.Completed++
			}
		}
		if s.Mood != nil {
			m := *s.Mood
			stat.Mood = &m
			moodSum += m
			moodCount++
		}
		out.Completed += stat.Completed
		out.Total += stat.Total
		out.PerDay = append(out.PerDay, stat)
	}

	if moodCount > 0 {
		avg := float64(moodSum) / float64(moodCount)
		out.AverageMood = &avg
	}
	return out
}
