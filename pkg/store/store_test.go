package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"tableflip.dev/trio/pkg/day"
)

type testConfig struct {
	path  string
	order string
}

func (t testConfig) BasePath() string {
	return t.path
}

func (t testConfig) OverflowOrder() day.Order {
	return day.ParseOrder(t.order)
}

func newTestStore(t *testing.T) (*dayStore, string) {
	t.Helper()
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	ds := p.(*dayStore)
	ds.today = func() string { return "2024-05-01" }
	return ds, base
}

func dayFile(base, date string) string {
	return filepath.Join(base, daysDir, date+".json")
}

func TestSnapshotCreatesAndPersistsDefault(t *testing.T) {
	p, base := newTestStore(t)
	ctx := context.Background()

	s := p.Snapshot(ctx, "2024-05-01")
	if s.Date != "2024-05-01" {
		t.Fatalf("date = %q", s.Date)
	}
	labels := day.Labels()
	for i := range s.Focus {
		if s.Focus[i].Label != labels[i] || s.Focus[i].Text != "" {
			t.Fatalf("slot %d not default: %+v", i, s.Focus[i])
		}
	}

	if _, err := os.Stat(dayFile(base, "2024-05-01")); err != nil {
		t.Fatalf("day file not written: %v", err)
	}
	// The current day also mirrors to today.json.
	if _, err := os.Stat(filepath.Join(base, todayFile)); err != nil {
		t.Fatalf("today mirror not written: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p, _ := newTestStore(t)
	ctx := context.Background()

	s := day.New("2024-05-03")
	s.SetText("Focus 1", "write report")
	s.SetNote("Focus 1", "sections 1 and 2")
	s.Toggle("Focus 1")
	s.Overflow = []day.OverflowItem{{Text: "water plants"}}
	s.Inbox = []day.InboxItem{{Text: "renew passport", Priority: day.Must}}
	s.SetMood(4)
	s.UI.OverflowCollapsed = true

	if err := p.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	p.EvictAll()
	got, err := p.Load("2024-05-03")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, day.Sanitize(s)) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", day.Sanitize(s), got)
	}
}

func TestSnapshotAppliesCarryOverOnce(t *testing.T) {
	p, _ := newTestStore(t)
	ctx := context.Background()

	prev := day.New("2024-05-01")
	prev.SetText("Focus 1", "Write report")
	if err := p.Save(ctx, prev); err != nil {
		t.Fatalf("save: %v", err)
	}

	next := p.Snapshot(ctx, "2024-05-02")
	if next.Focus[0].Text != "Write report" || next.Focus[0].Done {
		t.Fatalf("carry-over missing: %+v", next.Focus[0])
	}

	// Creation persisted the carried day; completing the source task later
	// must not re-seed it.
	prev.Toggle("Focus 1")
	if err := p.Save(ctx, prev); err != nil {
		t.Fatalf("save: %v", err)
	}
	p.Evict("2024-05-02")
	again := p.Snapshot(ctx, "2024-05-02")
	if again.Focus[0].Text != "Write report" {
		t.Fatalf("materialized day changed on reload: %+v", again.Focus[0])
	}
}

func TestSnapshotNoCarryWithoutPreviousDay(t *testing.T) {
	p, _ := newTestStore(t)
	s := p.Snapshot(context.Background(), "2024-06-15")
	for _, slot := range s.Focus {
		if slot.Text != "" {
			t.Fatalf("fresh day not empty: %+v", slot)
		}
	}
}

func TestLoadMissingDay(t *testing.T) {
	p, _ := newTestStore(t)
	_, err := p.Load("2024-07-01")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	var se *StorageError
	if !errors.As(err, &se) || se.Op != "read" {
		t.Fatalf("err = %#v, want read StorageError", err)
	}
}

func TestCorruptFileDegradesToDefault(t *testing.T) {
	p, base := newTestStore(t)
	ctx := context.Background()

	path := dayFile(base, "2024-05-05")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := p.Load("2024-05-05")
	var se *StorageError
	if !errors.As(err, &se) || se.Op != "decode" {
		t.Fatalf("err = %v, want decode StorageError", err)
	}

	// The store treats the broken file as absence and heals it.
	s := p.Snapshot(ctx, "2024-05-05")
	if s.Date != "2024-05-05" || s.Focus[0].Label != "Focus 1" {
		t.Fatalf("healed snapshot wrong: %+v", s)
	}
	if _, err := p.Load("2024-05-05"); err != nil {
		t.Fatalf("file not healed: %v", err)
	}
}

func TestSanitizeOnLoad(t *testing.T) {
	p, base := newTestStore(t)

	// A hand-edited file with a mangled focus list and junk entries.
	doc := `{
  "date": "3024-01-01",
  "focus": [
    {"label": "Focus 2", "text": "` + strings.Repeat("y", 120) + `", "done": true},
    {"label": "garbage", "text": "zzz"}
  ],
  "overflow": [{"text": "   "}, {"text": "keep"}],
  "inbox": [{"text": "task", "priority": "someday"}],
  "mood": 42
}`
	path := dayFile(base, "2024-05-06")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := p.Load("2024-05-06")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Date != "2024-05-06" {
		t.Fatalf("file name must win over embedded date, got %q", got.Date)
	}
	if got.Focus[0].Text != "" || len([]rune(got.Focus[1].Text)) != day.MaxFocusText {
		t.Fatalf("focus not rebuilt: %+v", got.Focus)
	}
	if len(got.Overflow) != 1 || got.Overflow[0].Text != "keep" {
		t.Fatalf("overflow not cleaned: %+v", got.Overflow)
	}
	if got.Inbox[0].Priority != day.Medium {
		t.Fatalf("priority not normalized: %+v", got.Inbox)
	}
	if got.Mood != nil {
		t.Fatalf("mood not clamped")
	}
}

func TestFetchRangeAscendingInclusive(t *testing.T) {
	p, _ := newTestStore(t)
	days := p.FetchRange(context.Background(), "2024-05-01", "2024-05-03")
	if len(days) != 3 {
		t.Fatalf("len = %d, want 3", len(days))
	}
	want := []string{"2024-05-01", "2024-05-02", "2024-05-03"}
	for i, d := range days {
		if d.Date != want[i] {
			t.Fatalf("day %d = %q, want %q", i, d.Date, want[i])
		}
	}
}

func TestMoveTask(t *testing.T) {
	p, _ := newTestStore(t)
	ctx := context.Background()

	a := day.New("2024-05-01")
	a.SetText("Focus 1", "finish slides")
	a.SetNote("Focus 1", "deck v2")
	if err := p.Save(ctx, a); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Backwards and same-day moves are refused.
	if _, _, ok := p.MoveTask(ctx, "2024-05-01", "2024-05-01", "Focus 1"); ok {
		t.Fatalf("same-day move allowed")
	}
	if _, _, ok := p.MoveTask(ctx, "2024-05-02", "2024-05-01", "Focus 1"); ok {
		t.Fatalf("backwards move allowed")
	}

	from, to, ok := p.MoveTask(ctx, "2024-05-01", "2024-05-06", "Focus 1")
	if !ok {
		t.Fatalf("move failed")
	}
	if from.Focus[0].Text != "" || from.Focus[0].Note != "" {
		t.Fatalf("source slot not cleared: %+v", from.Focus[0])
	}
	if to.Focus[0].Text != "finish slides" || to.Focus[0].Note != "deck v2" || to.Focus[0].Done {
		t.Fatalf("destination wrong: %+v", to.Focus[0])
	}

	// Both days reload from disk in their moved state.
	p.EvictAll()
	gotFrom, err := p.Load("2024-05-01")
	if err != nil {
		t.Fatalf("load source: %v", err)
	}
	gotTo, err := p.Load("2024-05-06")
	if err != nil {
		t.Fatalf("load destination: %v", err)
	}
	if gotFrom.Focus[0].Text != "" || gotTo.Focus[0].Text != "finish slides" {
		t.Fatalf("move not persisted")
	}
}

func TestMoveTaskRejectsDoneAndBlankSource(t *testing.T) {
	p, _ := newTestStore(t)
	ctx := context.Background()

	if _, _, ok := p.MoveTask(ctx, "2024-05-01", "2024-05-02", "Focus 2"); ok {
		t.Fatalf("moved a blank slot")
	}

	a := p.Snapshot(ctx, "2024-05-01")
	a.SetText("Focus 1", "shipped")
	a.Toggle("Focus 1")
	if err := p.Save(ctx, a); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, _, ok := p.MoveTask(ctx, "2024-05-01", "2024-05-02", "Focus 1"); ok {
		t.Fatalf("moved a completed slot")
	}
}

func TestEvictForcesReload(t *testing.T) {
	p, base := newTestStore(t)
	ctx := context.Background()

	s := p.Snapshot(ctx, "2024-05-01")
	s.SetText("Focus 1", "cached")
	if err := p.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	// External edit behind the cache's back.
	doc := `{"date":"2024-05-01","focus":[{"label":"Focus 1","text":"edited","done":false,"note":""}],"overflow":[],"inbox":[]}`
	if err := os.WriteFile(dayFile(base, "2024-05-01"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := p.Snapshot(ctx, "2024-05-01"); got.Focus[0].Text != "cached" {
		t.Fatalf("cache should still win before evict, got %q", got.Focus[0].Text)
	}
	p.Evict("2024-05-01")
	if got := p.Snapshot(ctx, "2024-05-01"); got.Focus[0].Text != "edited" {
		t.Fatalf("evict did not force reload, got %q", got.Focus[0].Text)
	}
}

func TestInvalidDateNeverTouchesDisk(t *testing.T) {
	p, base := newTestStore(t)
	s := p.Snapshot(context.Background(), "not-a-date")
	if s.Date != "not-a-date" {
		t.Fatalf("date = %q", s.Date)
	}
	if _, err := os.Stat(dayFile(base, "not-a-date")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("invalid date hit disk: %v", err)
	}
}
