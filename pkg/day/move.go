package day

import "strings"

// Outcome reports why a compartment move succeeded or did not. Failures
// leave the snapshot untouched.
type Outcome int

const (
	// Moved means the operation mutated the snapshot.
	Moved Outcome = iota
	// NotFound means the source index or label did not resolve to an item.
	NotFound
	// EmptyText means the source text trimmed to nothing.
	EmptyText
	// NoSlotFree means a promotion found no empty focus slot. Callers can
	// offer a slot replacement; this package only reports the condition.
	NoSlotFree
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case NotFound:
		return "not found"
	case EmptyText:
		return "empty text"
	case NoSlotFree:
		return "no free focus slot"
	}
	return "unknown"
}

// Order controls where new overflow items land. The inbox always inserts at
// the front; overflow placement has flip-flopped historically, so it stays a
// policy knob rather than a rule.
type Order int

const (
	Prepend Order = iota
	Append
)

// ParseOrder reads an order policy from configuration text.
func ParseOrder(s string) Order {
	if strings.EqualFold(strings.TrimSpace(s), "append") {
		return Append
	}
	return Prepend
}

func insertOverflow(s *Snapshot, item OverflowItem, order Order) {
	if order == Append {
		s.Overflow = append(s.Overflow, item)
		return
	}
	s.Overflow = append([]OverflowItem{item}, s.Overflow...)
}

func insertInbox(s *Snapshot, item InboxItem) {
	s.Inbox = append([]InboxItem{item}, s.Inbox...)
}

// AddOverflow appends or prepends a new overflow item per the order policy.
func AddOverflow(s *Snapshot, text string, order Order) Outcome {
	text = Truncate(strings.TrimSpace(text), MaxOverflowText)
	if text == "" {
		return EmptyText
	}
	insertOverflow(s, OverflowItem{Text: text}, order)
	return Moved
}

// AddInbox inserts a new inbox item at the front.
func AddInbox(s *Snapshot, text string, p Priority) Outcome {
	text = Truncate(strings.TrimSpace(text), MaxInboxText)
	if text == "" {
		return EmptyText
	}
	insertInbox(s, InboxItem{Text: text, Priority: p})
	return Moved
}

// PromoteOverflow moves an overflow item into the first empty focus slot and
// removes it from overflow.
func PromoteOverflow(s *Snapshot, index int) Outcome {
	if index < 0 || index >= len(s.Overflow) {
		return NotFound
	}
	text := strings.TrimSpace(s.Overflow[index].Text)
	if text == "" {
		return EmptyText
	}
	dst := s.EmptySlot()
	if dst < 0 {
		return NoSlotFree
	}
	s.Focus[dst] = FocusSlot{
		Label: s.Focus[dst].Label,
		Text:  Truncate(text, MaxFocusText),
	}
	s.Overflow = append(s.Overflow[:index], s.Overflow[index+1:]...)
	return Moved
}

// PromoteInbox moves an inbox item into the first empty focus slot and
// removes it from the inbox. The priority tag does not travel; focus slots
// carry no priority.
func PromoteInbox(s *Snapshot, index int) Outcome {
	if index < 0 || index >= len(s.Inbox) {
		return NotFound
	}
	text := strings.TrimSpace(s.Inbox[index].Text)
	if text == "" {
		return EmptyText
	}
	dst := s.EmptySlot()
	if dst < 0 {
		return NoSlotFree
	}
	s.Focus[dst] = FocusSlot{
		Label: s.Focus[dst].Label,
		Text:  Truncate(text, MaxFocusText),
	}
	s.Inbox = append(s.Inbox[:index], s.Inbox[index+1:]...)
	return Moved
}

// DemoteToOverflow moves a focus slot's text into a fresh overflow item and
// resets the slot.
func DemoteToOverflow(s *Snapshot, label string, order Order) Outcome {
	slot := s.Slot(label)
	if slot == nil {
		return NotFound
	}
	text := strings.TrimSpace(slot.Text)
	if text == "" {
		return EmptyText
	}
	insertOverflow(s, OverflowItem{Text: Truncate(text, MaxOverflowText)}, order)
	*slot = FocusSlot{Label: slot.Label}
	return Moved
}

// DemoteToInbox moves a focus slot's text into a fresh inbox item with the
// given priority and resets the slot. The slot's note does not travel; inbox
// items have no note field.
func DemoteToInbox(s *Snapshot, label string, p Priority) Outcome {
	slot := s.Slot(label)
	if slot == nil {
		return NotFound
	}
	text := strings.TrimSpace(slot.Text)
	if text == "" {
		return EmptyText
	}
	insertInbox(s, InboxItem{Text: Truncate(text, MaxInboxText), Priority: p})
	*slot = FocusSlot{Label: slot.Label}
	return Moved
}

// MoveOverflowToInbox transfers an overflow item into a fresh inbox item.
func MoveOverflowToInbox(s *Snapshot, index int, p Priority) Outcome {
	if index < 0 || index >= len(s.Overflow) {
		return NotFound
	}
	text := strings.TrimSpace(s.Overflow[index].Text)
	if text == "" {
		return EmptyText
	}
	s.Overflow = append(s.Overflow[:index], s.Overflow[index+1:]...)
	insertInbox(s, InboxItem{Text: Truncate(text, MaxInboxText), Priority: p})
	return Moved
}

// MoveInboxToOverflow transfers an inbox item into a fresh overflow item.
func MoveInboxToOverflow(s *Snapshot, index int, order Order) Outcome {
	if index < 0 || index >= len(s.Inbox) {
		return NotFound
	}
	text := strings.TrimSpace(s.Inbox[index].Text)
	if text == "" {
		return EmptyText
	}
	s.Inbox = append(s.Inbox[:index], s.Inbox[index+1:]...)
	insertOverflow(s, OverflowItem{Text: Truncate(text, MaxOverflowText)}, order)
	return Moved
}

// ToggleOverflow flips an overflow item's done state.
func ToggleOverflow(s *Snapshot, index int) Outcome {
	if index < 0 || index >= len(s.Overflow) {
		return NotFound
	}
	s.Overflow[index].Done = !s.Overflow[index].Done
	return Moved
}

// ToggleInbox flips an inbox item's done state.
func ToggleInbox(s *Snapshot, index int) Outcome {
	if index < 0 || index >= len(s.Inbox) {
		return NotFound
	}
	s.Inbox[index].Done = !s.Inbox[index].Done
	return Moved
}

// CrossMove relocates one focus slot's content from one day to another,
// used for forward scheduling. It fails when the source slot is blank or
// already done. On success the text and note land in the destination's best
// slot with done reset, and the source slot is cleared. Date ordering is the
// caller's concern; this function only moves content.
func CrossMove(from *Snapshot, label string, to *Snapshot) bool {
	slot := from.Slot(label)
	if slot == nil {
		return false
	}
	text := strings.TrimSpace(slot.Text)
	if text == "" || slot.Done {
		return false
	}
	dst := to.BestSlot()
	to.Focus[dst] = FocusSlot{
		Label: to.Focus[dst].Label,
		Text:  Truncate(text, MaxFocusText),
		Note:  Truncate(slot.Note, MaxFocusNote),
	}
	*slot = FocusSlot{Label: slot.Label}
	return true
}
