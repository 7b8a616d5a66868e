package day

import "strings"

// Sanitize canonicalizes a snapshot so that anything read off disk, however
// mangled, comes back as a valid value. It rebuilds the three focus slots
// from their canonical labels, enforces every text cap, drops overflow and
// inbox items whose text trims to nothing, and clamps the mood rating.
//
// Sanitize is total and idempotent; it is applied on every load and before
// every persist.
func Sanitize(s Snapshot) Snapshot {
	out := New(s.Date)

	byLabel := make(map[string]FocusSlot, FocusSlots)
	for _, slot := range s.Focus {
		if _, ok := byLabel[slot.Label]; !ok {
			byLabel[slot.Label] = slot
		}
	}
	for i, label := range Labels() {
		slot, ok := byLabel[label]
		if !ok {
			continue
		}
		text := Truncate(strings.TrimSpace(slot.Text), MaxFocusText)
		if text == "" {
			continue
		}
		out.Focus[i] = FocusSlot{
			Label: label,
			Text:  text,
			Done:  slot.Done,
			Note:  Truncate(slot.Note, MaxFocusNote),
		}
	}

	out.Overflow = make([]OverflowItem, 0, len(s.Overflow))
	for _, item := range s.Overflow {
		text := Truncate(strings.TrimSpace(item.Text), MaxOverflowText)
		if text == "" {
			continue
		}
		out.Overflow = append(out.Overflow, OverflowItem{Text: text, Done: item.Done})
	}

	out.Inbox = make([]InboxItem, 0, len(s.Inbox))
	for _, item := range s.Inbox {
		text := Truncate(strings.TrimSpace(item.Text), MaxInboxText)
		if text == "" {
			continue
		}
		out.Inbox = append(out.Inbox, InboxItem{
			Text:     text,
			Priority: ParsePriority(string(item.Priority)),
			Done:     item.Done,
		})
	}

	if s.Mood != nil {
		out.SetMood(*s.Mood)
	}
	out.UI = s.UI
	return out
}
