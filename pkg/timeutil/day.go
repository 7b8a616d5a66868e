// Package timeutil handles the calendar-day arithmetic the ledger runs on:
// ISO date parsing, day stepping, and week ranges.
package timeutil

import (
	"fmt"
	"time"
)

const (
	// LayoutISO is the canonical day key format used for file names and
	// snapshot dates.
	LayoutISO = "2006-01-02"

	// LayoutUS is the long human-readable form used in printed headings.
	LayoutUS = "January 2, 2006"
)

// ParseDay parses an ISO calendar date in the local zone.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(LayoutISO, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: parse day %q: %w", s, err)
	}
	return t, nil
}

// FormatDay renders a time as an ISO day key.
func FormatDay(t time.Time) string {
	return t.Format(LayoutISO)
}

// Today returns the current local calendar day.
func Today() string {
	return FormatDay(time.Now())
}

// Valid reports whether s is a well-formed ISO day.
func Valid(s string) bool {
	_, err := ParseDay(s)
	return err == nil
}

// Before reports whether day a falls strictly before day b. Malformed input
// is never before anything.
func Before(a, b string) bool {
	ta, err := ParseDay(a)
	if err != nil {
		return false
	}
	tb, err := ParseDay(b)
	if err != nil {
		return false
	}
	return ta.Before(tb)
}

// Shift returns the day n days after (or before, for negative n) the given
// one.
func Shift(date string, n int) (string, error) {
	t, err := ParseDay(date)
	if err != nil {
		return "", err
	}
	return FormatDay(t.AddDate(0, 0, n)), nil
}

// PrevDay returns the calendar day before the given one.
func PrevDay(date string) (string, error) {
	return Shift(date, -1)
}

// NextDay returns the calendar day after the given one.
func NextDay(date string) (string, error) {
	return Shift(date, 1)
}

// WeekOf returns the Monday..Sunday range containing the given day.
func WeekOf(date string) (start, end string, err error) {
	t, err := ParseDay(date)
	if err != nil {
		return "", "", err
	}
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	monday := t.AddDate(0, 0, -offset)
	return FormatDay(monday), FormatDay(monday.AddDate(0, 0, 6)), nil
}

// Range expands [start, end] into the list of days it covers, ascending.
// An inverted or malformed range yields nil.
func Range(start, end string) []string {
	ts, err := ParseDay(start)
	if err != nil {
		return nil
	}
	te, err := ParseDay(end)
	if err != nil || te.Before(ts) {
		return nil
	}
	var days []string
	for t := ts; !t.After(te); t = t.AddDate(0, 0, 1) {
		days = append(days, FormatDay(t))
	}
	return days
}
