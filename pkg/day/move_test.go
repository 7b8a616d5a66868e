package day

import (
	"reflect"
	"testing"
)

func TestPromoteOverflow(t *testing.T) {
	s := New("2024-05-01")
	s.Overflow = []OverflowItem{{Text: "Call dentist"}, {Text: "other"}}

	if out := PromoteOverflow(&s, 0); out != Moved {
		t.Fatalf("promote = %v", out)
	}
	if s.Focus[0].Text != "Call dentist" || s.Focus[0].Done {
		t.Fatalf("promotion target wrong: %+v", s.Focus[0])
	}
	if len(s.Overflow) != 1 || s.Overflow[0].Text != "other" {
		t.Fatalf("source not removed: %+v", s.Overflow)
	}
}

func TestPromoteFailsWhenFull(t *testing.T) {
	s := New("2024-05-01")
	for i, label := range Labels() {
		s.Focus[i] = FocusSlot{Label: label, Text: "busy"}
	}
	s.Overflow = []OverflowItem{{Text: "waiting"}}

	before := s.Clone()
	if out := PromoteOverflow(&s, 0); out != NoSlotFree {
		t.Fatalf("promote = %v, want NoSlotFree", out)
	}
	if !reflect.DeepEqual(s, before) {
		t.Fatalf("failed promotion mutated the snapshot")
	}
}

func TestPromoteInboxDropsPriority(t *testing.T) {
	s := New("2024-05-01")
	s.Inbox = []InboxItem{{Text: "renew passport", Priority: Must}}

	if out := PromoteInbox(&s, 0); out != Moved {
		t.Fatalf("promote = %v", out)
	}
	if s.Focus[0].Text != "renew passport" {
		t.Fatalf("promotion target wrong: %+v", s.Focus[0])
	}
	if len(s.Inbox) != 0 {
		t.Fatalf("inbox entry not removed")
	}
}

func TestPromoteNotFound(t *testing.T) {
	s := New("2024-05-01")
	if out := PromoteOverflow(&s, 3); out != NotFound {
		t.Fatalf("promote = %v, want NotFound", out)
	}
	if out := PromoteInbox(&s, -1); out != NotFound {
		t.Fatalf("promote = %v, want NotFound", out)
	}
}

func TestDemoteToOverflowResetsSlot(t *testing.T) {
	s := New("2024-05-01")
	s.Focus[1] = FocusSlot{Label: "Focus 2", Text: "too ambitious", Done: false, Note: "try tomorrow"}

	if out := DemoteToOverflow(&s, "Focus 2", Prepend); out != Moved {
		t.Fatalf("demote = %v", out)
	}
	if s.Focus[1].Text != "" || s.Focus[1].Note != "" || s.Focus[1].Done {
		t.Fatalf("slot not reset: %+v", s.Focus[1])
	}
	if len(s.Overflow) != 1 || s.Overflow[0].Text != "too ambitious" || s.Overflow[0].Done {
		t.Fatalf("overflow item wrong: %+v", s.Overflow)
	}
}

func TestDemoteEmptySlot(t *testing.T) {
	s := New("2024-05-01")
	if out := DemoteToOverflow(&s, "Focus 1", Prepend); out != EmptyText {
		t.Fatalf("demote = %v, want EmptyText", out)
	}
	if out := DemoteToInbox(&s, "Focus 1", Must); out != EmptyText {
		t.Fatalf("demote = %v, want EmptyText", out)
	}
}

func TestMoveOverflowToInboxFrontInsertion(t *testing.T) {
	s := New("2024-05-01")
	s.Overflow = []OverflowItem{{Text: "Call dentist", Done: true}}
	s.Inbox = []InboxItem{{Text: "existing", Priority: Nice}}

	if out := MoveOverflowToInbox(&s, 0, Must); out != Moved {
		t.Fatalf("move = %v", out)
	}
	if len(s.Overflow) != 0 {
		t.Fatalf("source not removed")
	}
	want := InboxItem{Text: "Call dentist", Priority: Must, Done: false}
	if len(s.Inbox) != 2 || s.Inbox[0] != want {
		t.Fatalf("inbox front = %+v, want %+v", s.Inbox, want)
	}
}

func TestMoveInboxToOverflowOrder(t *testing.T) {
	for _, order := range []Order{Prepend, Append} {
		s := New("2024-05-01")
		s.Inbox = []InboxItem{{Text: "errand", Priority: Medium, Done: true}}
		s.Overflow = []OverflowItem{{Text: "existing"}}

		if out := MoveInboxToOverflow(&s, 0, order); out != Moved {
			t.Fatalf("move = %v", out)
		}
		if len(s.Inbox) != 0 {
			t.Fatalf("source not removed")
		}
		idx := 0
		if order == Append {
			idx = 1
		}
		if s.Overflow[idx].Text != "errand" || s.Overflow[idx].Done {
			t.Fatalf("order %v: overflow = %+v", order, s.Overflow)
		}
	}
}

func TestAddOverflowOrderPolicy(t *testing.T) {
	s := New("2024-05-01")
	AddOverflow(&s, "first", Append)
	AddOverflow(&s, "second", Append)
	if s.Overflow[1].Text != "second" {
		t.Fatalf("append order wrong: %+v", s.Overflow)
	}

	s = New("2024-05-01")
	AddOverflow(&s, "first", Prepend)
	AddOverflow(&s, "second", Prepend)
	if s.Overflow[0].Text != "second" {
		t.Fatalf("prepend order wrong: %+v", s.Overflow)
	}
}

func TestAddInboxFront(t *testing.T) {
	s := New("2024-05-01")
	AddInbox(&s, "older", Nice)
	AddInbox(&s, "newest", Must)
	if s.Inbox[0].Text != "newest" {
		t.Fatalf("inbox insertion not at front: %+v", s.Inbox)
	}
	if out := AddInbox(&s, "   ", Must); out != EmptyText {
		t.Fatalf("blank add = %v, want EmptyText", out)
	}
}

func TestCrossMove(t *testing.T) {
	from := New("2024-05-01")
	from.Focus[0] = FocusSlot{Label: "Focus 1", Text: "finish slides", Note: "deck v2"}
	to := New("2024-05-02")

	if !CrossMove(&from, "Focus 1", &to) {
		t.Fatalf("cross move failed")
	}
	if from.Focus[0].Text != "" || from.Focus[0].Note != "" {
		t.Fatalf("source slot not cleared: %+v", from.Focus[0])
	}
	if to.Focus[0].Text != "finish slides" || to.Focus[0].Note != "deck v2" || to.Focus[0].Done {
		t.Fatalf("destination wrong: %+v", to.Focus[0])
	}
}

func TestCrossMoveRejectsDoneAndBlank(t *testing.T) {
	from := New("2024-05-01")
	to := New("2024-05-02")
	if CrossMove(&from, "Focus 1", &to) {
		t.Fatalf("moved a blank slot")
	}

	from.Focus[0] = FocusSlot{Label: "Focus 1", Text: "done", Done: true}
	if CrossMove(&from, "Focus 1", &to) {
		t.Fatalf("moved a completed slot")
	}
}

func TestCrossMoveUsesBestSlot(t *testing.T) {
	from := New("2024-05-01")
	from.Focus[0] = FocusSlot{Label: "Focus 1", Text: "incoming"}

	to := New("2024-05-02")
	to.Focus[0] = FocusSlot{Label: "Focus 1", Text: "a", Done: true}
	to.Focus[1] = FocusSlot{Label: "Focus 2", Text: "b", Done: true}
	to.Focus[2] = FocusSlot{Label: "Focus 3", Text: "c"}

	if !CrossMove(&from, "Focus 1", &to) {
		t.Fatalf("cross move failed")
	}
	// No empty slot: first not-done slot is replaced.
	if to.Focus[2].Text != "incoming" {
		t.Fatalf("expected the not-done slot replaced: %+v", to.Focus)
	}
}
