// Package day defines the per-day snapshot model: three labeled focus slots,
// an overflow list, a priority-tagged inbox, and the rules for moving task
// text between them.
package day

import (
	"strings"
)

const (
	// FocusSlots is the fixed number of focus commitments per day.
	FocusSlots = 3

	MaxFocusText    = 80
	MaxFocusNote    = 200
	MaxOverflowText = 80
	MaxInboxText    = 100

	MinMood = 1
	MaxMood = 5
)

// Labels returns the canonical focus slot labels in display order. Slot
// identity is the label, never the raw index.
func Labels() [FocusSlots]string {
	return [FocusSlots]string{"Focus 1", "Focus 2", "Focus 3"}
}

// Priority ranks an inbox item.
type Priority string

const (
	Must   Priority = "must"
	Medium Priority = "medium"
	Nice   Priority = "nice"
)

// ParsePriority maps a user-supplied string onto a Priority. Unknown input
// degrades to Medium rather than failing.
func ParsePriority(s string) Priority {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case Must:
		return Must
	case Nice:
		return Nice
	default:
		return Medium
	}
}

// FocusSlot is one of the three labeled daily commitments.
type FocusSlot struct {
	Label string `json:"label"`
	Text  string `json:"text"`
	Done  bool   `json:"done"`
	Note  string `json:"note"`
}

// OverflowItem is a same-day task that did not make the focus cut.
type OverflowItem struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// InboxItem is a backlog task not tied to any particular day.
type InboxItem struct {
	Text     string   `json:"text"`
	Priority Priority `json:"priority"`
	Done     bool     `json:"done"`
}

// UIState carries the per-day display flags that survive restarts.
type UIState struct {
	OverflowCollapsed bool `json:"overflowCollapsed"`
	InboxCollapsed    bool `json:"inboxCollapsed"`
}

// Snapshot is the full state for one calendar day, keyed by its ISO date.
type Snapshot struct {
	Date     string                `json:"date"`
	Focus    [FocusSlots]FocusSlot `json:"focus"`
	Overflow []OverflowItem        `json:"overflow"`
	Inbox    []InboxItem           `json:"inbox"`
	Mood     *int                  `json:"mood,omitempty"`
	UI       UIState               `json:"uiState"`
}

// New returns the default snapshot for a date: three empty labeled slots and
// empty overflow/inbox lists.
func New(date string) Snapshot {
	s := Snapshot{
		Date:     date,
		Overflow: []OverflowItem{},
		Inbox:    []InboxItem{},
	}
	for i, label := range Labels() {
		s.Focus[i] = FocusSlot{Label: label}
	}
	return s
}

// Clone returns a deep copy. Snapshots handed out of a cache must never share
// backing storage with the cached value.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Overflow = append([]OverflowItem{}, s.Overflow...)
	out.Inbox = append([]InboxItem{}, s.Inbox...)
	if s.Mood != nil {
		m := *s.Mood
		out.Mood = &m
	}
	return out
}

// SlotIndex resolves a canonical label to its slot position, or -1.
func SlotIndex(label string) int {
	for i, l := range Labels() {
		if l == label {
			return i
		}
	}
	return -1
}

// Slot returns a pointer to the slot with the given label, or nil if the
// label is not one of the canonical three.
func (s *Snapshot) Slot(label string) *FocusSlot {
	if i := SlotIndex(label); i >= 0 {
		return &s.Focus[i]
	}
	return nil
}

// SetText replaces a focus slot's text. Clearing the text (empty after
// trimming) also resets done and note, so a vacated slot never keeps a stale
// checkmark or annotation.
func (s *Snapshot) SetText(label, text string) bool {
	slot := s.Slot(label)
	if slot == nil {
		return false
	}
	text = Truncate(strings.TrimSpace(text), MaxFocusText)
	if text == "" {
		*slot = FocusSlot{Label: slot.Label}
		return true
	}
	slot.Text = text
	return true
}

// SetNote replaces a focus slot's note. Notes on empty slots are discarded.
func (s *Snapshot) SetNote(label, note string) bool {
	slot := s.Slot(label)
	if slot == nil {
		return false
	}
	if strings.TrimSpace(slot.Text) == "" {
		return false
	}
	slot.Note = Truncate(note, MaxFocusNote)
	return true
}

// Toggle flips a focus slot's done state. Empty slots cannot be completed.
func (s *Snapshot) Toggle(label string) bool {
	slot := s.Slot(label)
	if slot == nil || strings.TrimSpace(slot.Text) == "" {
		return false
	}
	slot.Done = !slot.Done
	return true
}

// ClearSlot resets a focus slot to its default empty state.
func (s *Snapshot) ClearSlot(label string) bool {
	slot := s.Slot(label)
	if slot == nil {
		return false
	}
	*slot = FocusSlot{Label: slot.Label}
	return true
}

// SetMood records a 1..5 rating; anything out of range clears it.
func (s *Snapshot) SetMood(mood int) {
	if mood < MinMood || mood > MaxMood {
		s.Mood = nil
		return
	}
	m := mood
	s.Mood = &m
}

// EmptySlot returns the index of the first focus slot with no text, or -1.
func (s Snapshot) EmptySlot() int {
	for i := range s.Focus {
		if strings.TrimSpace(s.Focus[i].Text) == "" {
			return i
		}
	}
	return -1
}

// BestSlot picks the landing slot for an incoming task: the first empty slot,
// else the first slot not yet done, else the last slot.
func (s Snapshot) BestSlot() int {
	if i := s.EmptySlot(); i >= 0 {
		return i
	}
	for i := range s.Focus {
		if !s.Focus[i].Done {
			return i
		}
	}
	return FocusSlots - 1
}

// Truncate caps s at n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
