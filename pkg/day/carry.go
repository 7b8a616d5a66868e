package day

import "strings"

// Carry seeds a freshly created day with the unfinished focus work from the
// previous one. Slots are scanned in label order; each not-done slot with
// non-empty text is copied (text and note, done reset) into the next empty
// slot of the new day. Once the new day's three slots are full the remaining
// candidates are dropped.
//
// Carry runs exactly once, when a day is first materialized. It never
// re-seeds a day that already has focus text.
func Carry(prev, next Snapshot) Snapshot {
	out := next.Clone()
	for _, slot := range prev.Focus {
		text := strings.TrimSpace(slot.Text)
		if slot.Done || text == "" {
			continue
		}
		dst := out.EmptySlot()
		if dst < 0 {
			break
		}
		out.Focus[dst].Text = Truncate(text, MaxFocusText)
		out.Focus[dst].Note = Truncate(slot.Note, MaxFocusNote)
		out.Focus[dst].Done = false
	}
	return out
}
