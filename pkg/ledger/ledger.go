// Package ledger is the single entry point callers use to read and mutate
// the daily task ledger. It wraps the day store, the compartment movement
// rules, and the weekly summary behind day-scoped and index-scoped
// operations so UIs and CLIs can share logic.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"tableflip.dev/trio/pkg/day"
	"tableflip.dev/trio/pkg/store"
	"tableflip.dev/trio/pkg/summary"
	"tableflip.dev/trio/pkg/timeutil"
)

// Service provides high-level ledger operations. Every mutation loads the
// day through the store, applies the change, and persists it before
// returning, so readers never observe an unpersisted write.
type Service struct {
	Store store.DayStore

	mu        sync.Mutex
	selected  string
	week      []day.Snapshot
	weekValid bool

	listeners map[int]func(date string)
	nextID    int
}

// New returns a Service over the given store.
func New(st store.DayStore) *Service {
	return &Service{
		Store:     st,
		listeners: make(map[int]func(string)),
	}
}

// Select sets the day subsequent day-scoped operations act on.
func (s *Service) Select(date string) error {
	if s.Store == nil {
		return errors.New("ledger: no store configured")
	}
	if !timeutil.Valid(date) {
		return fmt.Errorf("ledger: invalid date %q", date)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if date != s.selected {
		s.selected = date
		s.weekValid = false
	}
	return nil
}

// Selected returns the currently selected day, defaulting to today.
func (s *Service) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedLocked()
}

func (s *Service) selectedLocked() string {
	if s.selected == "" {
		s.selected = timeutil.Today()
	}
	return s.selected
}

// Subscribe registers a snapshot-changed listener and returns its cancel
// function. Listeners run synchronously after a mutation persists.
func (s *Service) Subscribe(fn func(date string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Service) notify(date string) {
	s.mu.Lock()
	fns := make([]func(string), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.weekValid = false
	s.mu.Unlock()
	for _, fn := range fns {
		fn(date)
	}
}

// Day returns the selected day's snapshot, materializing it if needed.
func (s *Service) Day(ctx context.Context) day.Snapshot {
	return s.DayOn(ctx, s.Selected())
}

// DayOn returns the snapshot for an explicit date.
func (s *Service) DayOn(ctx context.Context, date string) day.Snapshot {
	if s.Store == nil {
		return day.New(date)
	}
	return s.Store.Snapshot(ctx, date)
}

// mutate runs fn against the selected day and persists the result when fn
// reports a change.
func (s *Service) mutate(ctx context.Context, fn func(*day.Snapshot) bool) bool {
	if s.Store == nil {
		return false
	}
	date := s.Selected()
	snap := s.Store.Snapshot(ctx, date)
	if !fn(&snap) {
		return false
	}
	if err := s.Store.Save(ctx, snap); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	s.notify(date)
	return true
}

// move runs fn the same way but reports the mover's outcome; only a Moved
// outcome persists.
func (s *Service) move(ctx context.Context, fn func(*day.Snapshot) day.Outcome) day.Outcome {
	if s.Store == nil {
		return day.NotFound
	}
	date := s.Selected()
	snap := s.Store.Snapshot(ctx, date)
	out := fn(&snap)
	if out != day.Moved {
		return out
	}
	if err := s.Store.Save(ctx, snap); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	s.notify(date)
	return out
}

// Toggle flips a focus slot's done state.
func (s *Service) Toggle(ctx context.Context, label string) bool {
	return s.mutate(ctx, func(d *day.Snapshot) bool { return d.Toggle(label) })
}

// UpdateText replaces a focus slot's text; clearing it resets done and note.
func (s *Service) UpdateText(ctx context.Context, label, text string) bool {
	return s.mutate(ctx, func(d *day.Snapshot) bool { return d.SetText(label, text) })
}

// UpdateNote replaces a focus slot's note.
func (s *Service) UpdateNote(ctx context.Context, label, note string) bool {
	return s.mutate(ctx, func(d *day.Snapshot) bool { return d.SetNote(label, note) })
}

// Clear resets a focus slot to empty.
func (s *Service) Clear(ctx context.Context, label string) bool {
	return s.mutate(ctx, func(d *day.Snapshot) bool { return d.ClearSlot(label) })
}

// LogMood records the selected day's 1..5 mood rating.
func (s *Service) LogMood(ctx context.Context, mood int) bool {
	return s.mutate(ctx, func(d *day.Snapshot) bool {
		d.SetMood(mood)
		return true
	})
}

// SetOverflowCollapsed persists the overflow pane's collapse flag.
func (s *Service) SetOverflowCollapsed(ctx context.Context, collapsed bool) bool {
	return s.mutate(ctx, func(d *day.Snapshot) bool {
		d.UI.OverflowCollapsed = collapsed
		return true
	})
}

// SetInboxCollapsed persists the inbox pane's collapse flag.
func (s *Service) SetInboxCollapsed(ctx context.Context, collapsed bool) bool {
	return s.mutate(ctx, func(d *day.Snapshot) bool {
		d.UI.InboxCollapsed = collapsed
		return true
	})
}

func (s *Service) order() day.Order {
	if s.Store == nil {
		return day.Prepend
	}
	return s.Store.Order()
}

// AddOverflow records a new overflow task on the selected day.
func (s *Service) AddOverflow(ctx context.Context, text string) day.Outcome {
	return s.move(ctx, func(d *day.Snapshot) day.Outcome {
		return day.AddOverflow(d, text, s.order())
	})
}

// AddInbox records a new inbox task with the given priority.
func (s *Service) AddInbox(ctx context.Context, text string, p day.Priority) day.Outcome {
	return s.move(ctx, func(d *day.Snapshot) day.Outcome {
		return day.AddInbox(d, text, p)
	})
}

// ToggleOverflow flips an overflow item's done state.
func (s *Service) ToggleOverflow(ctx context.Context, index int) day.Outcome {
	return s.move(ctx, func(d *day.Snapshot) day.Outcome {
		return day.ToggleOverflow(d, index)
	})
}

// ToggleInbox flips an inbox item's done state.
func (s *Service) ToggleInbox(ctx context.Context, index int) day.Outcome {
	return s.move(ctx, func(d *day.Snapshot) day.Outcome {
		return day.ToggleInbox(d, index)
	})
}

// PromoteOverflow lifts an overflow item into the first empty focus slot.
// A NoSlotFree outcome means the caller may offer a slot replacement.
func (s *Service) PromoteOverflow(ctx context.Context, index int) day.Outcome {
	return s.move(ctx, func(d *day.Snapshot) day.Outcome {
		return day.PromoteOverflow(d, index)
	})
}

// PromoteInbox lifts an inbox item into the first empty focus slot.
func (s *Service) PromoteInbox(ctx context.Context, index int) day.Outcome {
	return s.move(ctx, func(d *day.Snapshot) day.Outcome {
		return day.PromoteInbox(d, index)
	})
}

// DemoteToOverflow pushes a focus slot's task down into overflow.
func (s *Service) DemoteToOverflow(ctx context.Context, label string) day.Outcome {
	return s.move(ctx, func(d *day.Snapshot) day.Outcome {
		return day.DemoteToOverflow(d, label, s.order())
	})
}

// DemoteToInbox pushes a focus slot's task into the inbox.
func (s *Service) DemoteToInbox(ctx context.Context, label string, p day.Priority) day.Outcome {
	return s.move(ctx, func(d *day.Snapshot) day.Outcome {
		return day.DemoteToInbox(d, label, p)
	})
}

// MoveOverflowToInbox transfers an overflow item to the inbox.
func (s *Service) MoveOverflowToInbox(ctx context.Context, index int, p day.Priority) day.Outcome {
	return s.move(ctx, func(d *day.Snapshot) day.Outcome {
		return day.MoveOverflowToInbox(d, index, p)
	})
}

// MoveInboxToOverflow transfers an inbox item to overflow.
func (s *Service) MoveInboxToOverflow(ctx context.Context, index int) day.Outcome {
	return s.move(ctx, func(d *day.Snapshot) day.Outcome {
		return day.MoveInboxToOverflow(d, index, s.order())
	})
}

// MoveTask reschedules a focus task onto a strictly later day.
func (s *Service) MoveTask(ctx context.Context, fromDate, toDate, label string) bool {
	if s.Store == nil {
		return false
	}
	_, _, ok := s.Store.MoveTask(ctx, fromDate, toDate, label)
	if ok {
		s.notify(fromDate)
		s.notify(toDate)
	}
	return ok
}

// WeekDays materializes the Monday..Sunday week around the selected day.
// The result is cached until a mutation invalidates it.
func (s *Service) WeekDays(ctx context.Context) []day.Snapshot {
	if s.Store == nil {
		return nil
	}
	date := s.Selected()

	s.mu.Lock()
	if s.weekValid {
		cached := make([]day.Snapshot, len(s.week))
		copy(cached, s.week)
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	start, end, err := timeutil.WeekOf(date)
	if err != nil {
		return nil
	}
	days := s.Store.FetchRange(ctx, start, end)

	s.mu.Lock()
	s.week = days
	s.weekValid = true
	cached := make([]day.Snapshot, len(days))
	copy(cached, days)
	s.mu.Unlock()
	return cached
}

// Week summarizes the selected day's week.
func (s *Service) Week(ctx context.Context) summary.Summary {
	return summary.Week(s.WeekDays(ctx))
}

// Evict drops a day from the store cache; the next access reloads it.
func (s *Service) Evict(date string) {
	if s.Store == nil {
		return
	}
	s.Store.Evict(date)
	s.mu.Lock()
	s.weekValid = false
	s.mu.Unlock()
}
