package ledger

import (
	"context"
	"sync"
	"testing"

	"tableflip.dev/trio/pkg/day"
	"tableflip.dev/trio/pkg/store"
	"tableflip.dev/trio/pkg/timeutil"
)

// memoryStore is an in-memory DayStore for facade tests.
type memoryStore struct {
	mu    sync.Mutex
	days  map[string]day.Snapshot
	saves int
	order day.Order
}

func newMemoryStore(snaps ...day.Snapshot) *memoryStore {
	m := &memoryStore{days: make(map[string]day.Snapshot)}
	for _, s := range snaps {
		m.days[s.Date] = day.Sanitize(s)
	}
	return m
}

func (m *memoryStore) Snapshot(_ context.Context, date string) day.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked(date).Clone()
}

func (m *memoryStore) snapshotLocked(date string) day.Snapshot {
	if s, ok := m.days[date]; ok {
		return s
	}
	s := day.New(date)
	if prev, err := timeutil.PrevDay(date); err == nil {
		if p, ok := m.days[prev]; ok {
			s = day.Carry(p, s)
		}
	}
	m.days[date] = s
	return s
}

func (m *memoryStore) FetchRange(_ context.Context, start, end string) []day.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []day.Snapshot
	for _, date := range timeutil.Range(start, end) {
		out = append(out, m.snapshotLocked(date).Clone())
	}
	return out
}

func (m *memoryStore) Save(_ context.Context, s day.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.days[s.Date] = day.Sanitize(s)
	m.saves++
	return nil
}

func (m *memoryStore) Load(date string) (day.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.days[date]; ok {
		return s.Clone(), nil
	}
	return day.Snapshot{}, &store.StorageError{Op: "read", Date: date, Err: store.ErrNotFound}
}

func (m *memoryStore) MoveTask(ctx context.Context, fromDate, toDate, label string) (day.Snapshot, day.Snapshot, bool) {
	if !timeutil.Before(fromDate, toDate) {
		return day.Snapshot{}, day.Snapshot{}, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	from := m.snapshotLocked(fromDate).Clone()
	to := m.snapshotLocked(toDate).Clone()
	if !day.CrossMove(&from, label, &to) {
		return day.Snapshot{}, day.Snapshot{}, false
	}
	m.days[fromDate] = day.Sanitize(from)
	m.days[toDate] = day.Sanitize(to)
	m.saves += 2
	return from, to, true
}

func (m *memoryStore) Evict(date string) {}

func (m *memoryStore) EvictAll() {}

func (m *memoryStore) Order() day.Order { return m.order }
func (m *memoryStore) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func newTestService(t *testing.T, snaps ...day.Snapshot) (*Service, *memoryStore) {
	t.Helper()
	m := newMemoryStore(snaps...)
	s := New(m)
	if err := s.Select("2024-05-01"); err != nil {
		t.Fatalf("select: %v", err)
	}
	return s, m
}

func TestSelectRejectsBadDates(t *testing.T) {
	s := New(newMemoryStore())
	if err := s.Select("05/01/2024"); err == nil {
		t.Fatalf("bad date accepted")
	}
	if err := s.Select("2024-05-01"); err != nil {
		t.Fatalf("good date rejected: %v", err)
	}
	if got := s.Selected(); got != "2024-05-01" {
		t.Fatalf("selected = %q", got)
	}
}

func TestUpdateTextPersistsBeforeReturning(t *testing.T) {
	s, m := newTestService(t)
	ctx := context.Background()

	if !s.UpdateText(ctx, "Focus 1", "write report") {
		t.Fatalf("update failed")
	}
	if m.saves == 0 {
		t.Fatalf("mutation did not persist")
	}
	if got := s.Day(ctx); got.Focus[0].Text != "write report" {
		t.Fatalf("read after write = %+v", got.Focus[0])
	}
}

func TestToggleAndClear(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	s.UpdateText(ctx, "Focus 2", "call dentist")
	if !s.Toggle(ctx, "Focus 2") {
		t.Fatalf("toggle failed")
	}
	if got := s.Day(ctx); !got.Focus[1].Done {
		t.Fatalf("toggle not visible")
	}

	if !s.Clear(ctx, "Focus 2") {
		t.Fatalf("clear failed")
	}
	got := s.Day(ctx)
	if got.Focus[1].Text != "" || got.Focus[1].Done {
		t.Fatalf("clear left residue: %+v", got.Focus[1])
	}
}

func TestPromoteReportsNoSlotFree(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	s.UpdateText(ctx, "Focus 1", "a")
	s.UpdateText(ctx, "Focus 2", "b")
	s.UpdateText(ctx, "Focus 3", "c")
	s.AddOverflow(ctx, "waiting")

	if out := s.PromoteOverflow(ctx, 0); out != day.NoSlotFree {
		t.Fatalf("outcome = %v, want NoSlotFree", out)
	}
	if got := s.Day(ctx); len(got.Overflow) != 1 {
		t.Fatalf("failed promotion mutated overflow: %+v", got.Overflow)
	}

	s.Clear(ctx, "Focus 2")
	if out := s.PromoteOverflow(ctx, 0); out != day.Moved {
		t.Fatalf("outcome = %v, want Moved", out)
	}
	got := s.Day(ctx)
	if got.Focus[1].Text != "waiting" || len(got.Overflow) != 0 {
		t.Fatalf("promotion wrong: %+v", got)
	}
}

func TestDemoteAndShuffle(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	s.UpdateText(ctx, "Focus 1", "too much today")
	if out := s.DemoteToInbox(ctx, "Focus 1", day.Nice); out != day.Moved {
		t.Fatalf("demote = %v", out)
	}
	got := s.Day(ctx)
	if got.Focus[0].Text != "" || got.Inbox[0].Priority != day.Nice {
		t.Fatalf("demote wrong: %+v", got)
	}

	if out := s.MoveInboxToOverflow(ctx, 0); out != day.Moved {
		t.Fatalf("shuffle = %v", out)
	}
	got = s.Day(ctx)
	if len(got.Inbox) != 0 || len(got.Overflow) != 1 {
		t.Fatalf("shuffle wrong: %+v", got)
	}
}

func TestMoveTaskNotifiesBothDays(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	s.UpdateText(ctx, "Focus 1", "finish slides")

	var notified []string
	cancel := s.Subscribe(func(date string) { notified = append(notified, date) })
	defer cancel()

	if !s.MoveTask(ctx, "2024-05-01", "2024-05-03", "Focus 1") {
		t.Fatalf("move failed")
	}
	if len(notified) != 2 || notified[0] != "2024-05-01" || notified[1] != "2024-05-03" {
		t.Fatalf("notifications = %v", notified)
	}
	if s.MoveTask(ctx, "2024-05-03", "2024-05-01", "Focus 1") {
		t.Fatalf("backwards move allowed")
	}
}

func TestSubscribeCancel(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	count := 0
	cancel := s.Subscribe(func(string) { count++ })
	s.UpdateText(ctx, "Focus 1", "one")
	cancel()
	s.UpdateText(ctx, "Focus 1", "two")

	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}

func TestWeekSummary(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	// 2024-05-01 is a Wednesday; its week is 04-29 .. 05-05.
	s.UpdateText(ctx, "Focus 1", "a")
	s.Toggle(ctx, "Focus 1")
	s.LogMood(ctx, 4)

	sum := s.Week(ctx)
	if len(sum.PerDay) != 7 {
		t.Fatalf("perDay = %d, want 7", len(sum.PerDay))
	}
	if sum.PerDay[0].Date != "2024-04-29" || sum.PerDay[6].Date != "2024-05-05" {
		t.Fatalf("week bounds wrong: %s .. %s", sum.PerDay[0].Date, sum.PerDay[6].Date)
	}
	if sum.Completed != 1 || sum.Total != 21 {
		t.Fatalf("counts = %d/%d, want 1/21", sum.Completed, sum.Total)
	}
	if sum.AverageMood == nil || *sum.AverageMood != 4 {
		t.Fatalf("averageMood = %v", sum.AverageMood)
	}
}

func TestWeekCacheInvalidatedByMutation(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	if got := s.Week(ctx); got.Completed != 0 {
		t.Fatalf("fresh week completed = %d", got.Completed)
	}
	s.UpdateText(ctx, "Focus 1", "a")
	s.Toggle(ctx, "Focus 1")
	if got := s.Week(ctx); got.Completed != 1 {
		t.Fatalf("week cache went stale: %+v", got)
	}
}

func TestUIStateFlags(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	s.SetOverflowCollapsed(ctx, true)
	s.SetInboxCollapsed(ctx, true)
	got := s.Day(ctx)
	if !got.UI.OverflowCollapsed || !got.UI.InboxCollapsed {
		t.Fatalf("flags not persisted: %+v", got.UI)
	}
}
