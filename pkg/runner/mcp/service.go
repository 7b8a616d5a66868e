// Package mcp provides the Model Context Protocol server integration for trio.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/trio/pkg/day"
	"tableflip.dev/trio/pkg/glyph"
	"tableflip.dev/trio/pkg/store"
	"tableflip.dev/trio/pkg/summary"
	"tableflip.dev/trio/pkg/timeutil"
)

// Service coordinates store-backed operations that are shared by the MCP server.
type Service struct {
	Store store.DayStore
}

// ErrSlotNotFound is returned when a focus label does not name one of the
// three slots.
var ErrSlotNotFound = errors.New("focus slot not found")

// SlotDTO is a transport-friendly projection of a focus slot.
type SlotDTO struct {
	Label  string `json:"label"`
	Text   string `json:"text,omitempty"`
	Done   bool   `json:"done"`
	Note   string `json:"note,omitempty"`
	Symbol string `json:"symbol"`
}

// ItemDTO projects an overflow or inbox item with its list position.
type ItemDTO struct {
	Index          int    `json:"index"`
	Text           string `json:"text"`
	Done           bool   `json:"done"`
	Symbol         string `json:"symbol"`
	Priority       string `json:"priority,omitempty"`
	PrioritySymbol string `json:"prioritySymbol,omitempty"`
}

// DayDTO is the wire shape of a single ledger day.
type DayDTO struct {
	Date      string    `json:"date"`
	Focus     []SlotDTO `json:"focus"`
	Overflow  []ItemDTO `json:"overflow"`
	Inbox     []ItemDTO `json:"inbox"`
	Mood      *int      `json:"mood,omitempty"`
	Completed int       `json:"completed"`
	Open      int       `json:"open"`
}

// DayStatDTO carries one day's completion counts inside a week report.
type DayStatDTO struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Mood      *int   `json:"mood,omitempty"`
}

// WeekDTO is the wire shape of a Monday..Sunday summary.
type WeekDTO struct {
	Start       string       `json:"start"`
	End         string       `json:"end"`
	Completed   int          `json:"completed"`
	Total       int          `json:"total"`
	AverageMood *float64     `json:"averageMood,omitempty"`
	Days        []DayStatDTO `json:"days"`
}

// NewService builds a service wrapper using the provided day store.
func NewService(st store.DayStore) *Service {
	return &Service{Store: st}
}

// Day returns the snapshot for a date, materializing it if needed. An empty
// date means today.
func (s *Service) Day(ctx context.Context, date string) (*DayDTO, error) {
	date, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	dto := toDTO(s.Store.Snapshot(ctx, date))
	return &dto, nil
}

// Week summarizes the Monday..Sunday week containing the given date.
func (s *Service) Week(ctx context.Context, date string) (*WeekDTO, error) {
	date, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	start, end, err := timeutil.WeekOf(date)
	if err != nil {
		return nil, err
	}
	snaps := s.Store.FetchRange(ctx, start, end)
	sum := summary.Week(snaps)

	out := WeekDTO{
		Start:       start,
		End:         end,
		Completed:   sum.Completed,
		Total:       sum.Total,
		AverageMood: sum.AverageMood,
	}
	for _, d := range sum.PerDay {
		out.Days = append(out.Days, DayStatDTO{
			Date:      d.Date,
			Completed: d.Completed,
			Total:     d.Total,
			Mood:      d.Mood,
		})
	}
	return &out, nil
}

// SetFocus replaces a focus slot's text; empty text clears the slot.
func (s *Service) SetFocus(ctx context.Context, date, label, text string) (*DayDTO, error) {
	return s.mutate(ctx, date, func(d *day.Snapshot) error {
		if !d.SetText(label, text) {
			return fmt.Errorf("%w: %q", ErrSlotNotFound, label)
		}
		return nil
	})
}

// SetNote attaches a note to a filled focus slot.
func (s *Service) SetNote(ctx context.Context, date, label, note string) (*DayDTO, error) {
	return s.mutate(ctx, date, func(d *day.Snapshot) error {
		if !d.SetNote(label, note) {
			return fmt.Errorf("cannot note %q: slot missing or empty", label)
		}
		return nil
	})
}

// ToggleFocus flips a focus slot's done state.
func (s *Service) ToggleFocus(ctx context.Context, date, label string) (*DayDTO, error) {
	return s.mutate(ctx, date, func(d *day.Snapshot) error {
		if !d.Toggle(label) {
			return fmt.Errorf("cannot toggle %q: slot missing or empty", label)
		}
		return nil
	})
}

// ClearFocus resets a focus slot to empty.
func (s *Service) ClearFocus(ctx context.Context, date, label string) (*DayDTO, error) {
	return s.mutate(ctx, date, func(d *day.Snapshot) error {
		if !d.ClearSlot(label) {
			return fmt.Errorf("%w: %q", ErrSlotNotFound, label)
		}
		return nil
	})
}

// LogMood records the day's 1..5 mood rating.
func (s *Service) LogMood(ctx context.Context, date string, mood int) (*DayDTO, error) {
	if mood < day.MinMood || mood > day.MaxMood {
		return nil, fmt.Errorf("mood %d out of range %d..%d", mood, day.MinMood, day.MaxMood)
	}
	return s.mutate(ctx, date, func(d *day.Snapshot) error {
		d.SetMood(mood)
		return nil
	})
}

// AddOverflow records a new overflow task.
func (s *Service) AddOverflow(ctx context.Context, date, text string) (*DayDTO, error) {
	return s.mutate(ctx, date, func(d *day.Snapshot) error {
		return outcomeErr(day.AddOverflow(d, text, s.Store.Order()))
	})
}

// AddInbox records a new inbox task with the given priority.
func (s *Service) AddInbox(ctx context.Context, date, text, priority string) (*DayDTO, error) {
	p := day.ParsePriority(priority)
	return s.mutate(ctx, date, func(d *day.Snapshot) error {
		return outcomeErr(day.AddInbox(d, text, p))
	})
}

// ToggleItem flips an overflow or inbox item's done state.
func (s *Service) ToggleItem(ctx context.Context, date, compartment string, index int) (*DayDTO, error) {
	return s.mutate(ctx, date, func(d *day.Snapshot) error {
		switch compartment {
		case "overflow":
			return outcomeErr(day.ToggleOverflow(d, index))
		case "inbox":
			return outcomeErr(day.ToggleInbox(d, index))
		default:
			return fmt.Errorf("unknown compartment %q", compartment)
		}
	})
}

// Promote lifts an overflow or inbox item into the first empty focus slot.
func (s *Service) Promote(ctx context.Context, date, compartment string, index int) (*DayDTO, error) {
	return s.mutate(ctx, date, func(d *day.Snapshot) error {
		switch compartment {
		case "overflow":
			return outcomeErr(day.PromoteOverflow(d, index))
		case "inbox":
			return outcomeErr(day.PromoteInbox(d, index))
		default:
			return fmt.Errorf("unknown compartment %q", compartment)
		}
	})
}

// Demote pushes a focus slot's task down into overflow or the inbox.
func (s *Service) Demote(ctx context.Context, date, label, target, priority string) (*DayDTO, error) {
	return s.mutate(ctx, date, func(d *day.Snapshot) error {
		switch target {
		case "overflow":
			return outcomeErr(day.DemoteToOverflow(d, label, s.Store.Order()))
		case "inbox":
			return outcomeErr(day.DemoteToInbox(d, label, day.ParsePriority(priority)))
		default:
			return fmt.Errorf("unknown compartment %q", target)
		}
	})
}

// Shuffle transfers an item between overflow and the inbox.
func (s *Service) Shuffle(ctx context.Context, date, from string, index int, priority string) (*DayDTO, error) {
	return s.mutate(ctx, date, func(d *day.Snapshot) error {
		switch from {
		case "overflow":
			return outcomeErr(day.MoveOverflowToInbox(d, index, day.ParsePriority(priority)))
		case "inbox":
			return outcomeErr(day.MoveInboxToOverflow(d, index, s.Store.Order()))
		default:
			return fmt.Errorf("unknown compartment %q", from)
		}
	})
}

// MoveTask reschedules a focus task onto a strictly later day.
func (s *Service) MoveTask(ctx context.Context, fromDate, toDate, label string) (*DayDTO, *DayDTO, error) {
	if s.Store == nil {
		return nil, nil, errors.New("store is not configured")
	}
	if !timeutil.Valid(fromDate) || !timeutil.Valid(toDate) {
		return nil, nil, fmt.Errorf("invalid date range %q..%q", fromDate, toDate)
	}
	from, to, ok := s.Store.MoveTask(ctx, fromDate, toDate, label)
	if !ok {
		return nil, nil, fmt.Errorf("cannot move %q from %s to %s", label, fromDate, toDate)
	}
	source := toDTO(from)
	target := toDTO(to)
	return &source, &target, nil
}

func (s *Service) resolveDate(date string) (string, error) {
	if s.Store == nil {
		return "", errors.New("store is not configured")
	}
	if date == "" {
		return timeutil.Today(), nil
	}
	if !timeutil.Valid(date) {
		return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}
	return date, nil
}

func (s *Service) mutate(ctx context.Context, date string, fn func(*day.Snapshot) error) (*DayDTO, error) {
	date, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	snap := s.Store.Snapshot(ctx, date)
	if err := fn(&snap); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, snap); err != nil {
		return nil, err
	}
	dto := toDTO(snap)
	return &dto, nil
}

func outcomeErr(o day.Outcome) error {
	switch o {
	case day.Moved:
		return nil
	case day.NotFound:
		return errors.New("item not found")
	case day.EmptyText:
		return errors.New("text is empty")
	case day.NoSlotFree:
		return errors.New("no focus slot free")
	default:
		return fmt.Errorf("move failed: %s", o)
	}
}

func toDTO(s day.Snapshot) DayDTO {
	dto := DayDTO{Date: s.Date}
	for _, slot := range s.Focus {
		symbol := glyph.EmptySlot
		if slot.Text != "" {
			symbol = glyph.Task(slot.Done)
		}
		dto.Focus = append(dto.Focus, SlotDTO{
			Label:  slot.Label,
			Text:   slot.Text,
			Done:   slot.Done,
			Note:   slot.Note,
			Symbol: symbol,
		})
		if slot.Text == "" {
			continue
		}
		if slot.Done {
			dto.Completed++
		} else {
			dto.Open++
		}
	}
	dto.Overflow = make([]ItemDTO, 0, len(s.Overflow))
	for i, item := range s.Overflow {
		dto.Overflow = append(dto.Overflow, ItemDTO{
			Index:  i,
			Text:   item.Text,
			Done:   item.Done,
			Symbol: glyph.Task(item.Done),
		})
	}
	dto.Inbox = make([]ItemDTO, 0, len(s.Inbox))
	for i, item := range s.Inbox {
		dto.Inbox = append(dto.Inbox, ItemDTO{
			Index:          i,
			Text:           item.Text,
			Done:           item.Done,
			Symbol:         glyph.Task(item.Done),
			Priority:       string(item.Priority),
			PrioritySymbol: glyph.ForPriority(item.Priority),
		})
	}
	if s.Mood != nil {
		m := *s.Mood
		dto.Mood = &m
	}
	return dto
}
