package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/trio/pkg/day"
	"tableflip.dev/trio/pkg/timeutil"
)

// DayStore owns the authoritative on-disk day files and the in-memory
// snapshot cache. It is the only component that touches storage; everything
// else works on snapshot values.
type DayStore interface {
	// Snapshot returns the snapshot for a date, loading it or synthesizing
	// it (with carry-over from the previous day) as needed. It never fails:
	// unreadable state degrades to a fresh default.
	Snapshot(ctx context.Context, date string) day.Snapshot

	// FetchRange materializes every day in [start, end] inclusive,
	// ascending, populating the cache along the way.
	FetchRange(ctx context.Context, start, end string) []day.Snapshot

	// Save sanitizes, caches, and persists a snapshot. Saving the current
	// calendar day also refreshes the today.json mirror.
	Save(ctx context.Context, s day.Snapshot) error

	// Load reads a day file without creating, caching, or self-healing.
	// Absence and corruption come back as a *StorageError so callers and
	// tests can see exactly what went wrong.
	Load(date string) (day.Snapshot, error)

	// MoveTask relocates one focus slot's content to a strictly later day
	// and persists both. The returned bool is false (and nothing is
	// mutated) when the dates are out of order or the source slot is
	// blank or done.
	MoveTask(ctx context.Context, fromDate, toDate, label string) (day.Snapshot, day.Snapshot, bool)

	// Evict drops a date from the cache; EvictAll clears it. The next
	// access reloads from disk.
	Evict(date string)
	EvictAll()

	// Order reports the configured overflow insertion policy.
	Order() day.Order

	// Watch streams day-change events until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

// ErrNotFound marks a read of a day that has no file yet.
var ErrNotFound = errors.New("day not found")

// StorageError describes a failed store operation. The store's public
// surface self-heals to defaults, but the typed error stays available
// through Load for callers that want to see failures.
type StorageError struct {
	Op   string
	Date string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Date, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

const (
	daysDir   = "days"
	todayFile = "today.json"
	tmpDir    = "tmp"
)

// Load creates a DayStore backed by diskv using the provided config.
func Load(cfg Config) (DayStore, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &dayStore{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: dateToPathTransform,
			InverseTransform:  pathToDateTransform,
			// Rename out of TempDir keeps day writes atomic.
			TempDir:      filepath.Join(basePath, tmpDir),
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
		order:    cfg.OverflowOrder(),
		cache:    make(map[string]day.Snapshot),
		today:    timeutil.Today,
	}, nil
}

type dayStore struct {
	mu       sync.Mutex
	d        *diskv.Diskv
	basePath string
	order    day.Order
	cache    map[string]day.Snapshot

	// today is injectable so tests can pin the current day.
	today func() string
}

func (p *dayStore) Order() day.Order {
	return p.order
}

func (p *dayStore) Snapshot(_ context.Context, date string) day.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked(date).Clone()
}

func (p *dayStore) FetchRange(_ context.Context, start, end string) []day.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	days := timeutil.Range(start, end)
	out := make([]day.Snapshot, 0, len(days))
	for _, date := range days {
		out = append(out, p.snapshotLocked(date).Clone())
	}
	return out
}

func (p *dayStore) Save(_ context.Context, s day.Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saveLocked(day.Sanitize(s))
}

func (p *dayStore) Load(date string) (day.Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadLocked(date)
}

func (p *dayStore) MoveTask(_ context.Context, fromDate, toDate, label string) (day.Snapshot, day.Snapshot, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Forward scheduling only.
	if !timeutil.Before(fromDate, toDate) {
		return day.Snapshot{}, day.Snapshot{}, false
	}

	from := p.snapshotLocked(fromDate).Clone()
	to := p.snapshotLocked(toDate).Clone()
	if !day.CrossMove(&from, label, &to) {
		return day.Snapshot{}, day.Snapshot{}, false
	}

	// Both days persist or the move is abandoned before any write. If the
	// second rename fails after the first landed there is a narrow
	// inconsistency window; the next load self-heals either side.
	from = day.Sanitize(from)
	to = day.Sanitize(to)
	if err := p.saveLocked(from); err != nil {
		return day.Snapshot{}, day.Snapshot{}, false
	}
	if err := p.saveLocked(to); err != nil {
		return day.Snapshot{}, day.Snapshot{}, false
	}
	return from.Clone(), to.Clone(), true
}

func (p *dayStore) Evict(date string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.cache, date)
}

func (p *dayStore) EvictAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache = make(map[string]day.Snapshot)
}

// snapshotLocked resolves a date to its snapshot: cache, then disk, then a
// fresh day seeded by carry-over. Callers hold p.mu.
func (p *dayStore) snapshotLocked(date string) day.Snapshot {
	if s, ok := p.cache[date]; ok {
		return s
	}
	if !timeutil.Valid(date) {
		// Invalid keys never touch disk.
		return day.New(date)
	}

	if s, err := p.loadLocked(date); err == nil {
		p.cache[date] = s
		return s
	}

	// First access for this date: seed from the previous day's unfinished
	// focus work. The previous day is read as-is, never created, so
	// materializing one day cannot recurse down the calendar.
	s := day.New(date)
	if prevDate, err := timeutil.PrevDay(date); err == nil {
		prev, ok := p.cache[prevDate]
		if !ok {
			var loadErr error
			prev, loadErr = p.loadLocked(prevDate)
			ok = loadErr == nil
		}
		if ok {
			s = day.Carry(prev, s)
		}
	}

	if err := p.saveLocked(s); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	return s
}

// loadLocked reads and sanitizes one day file. Callers hold p.mu.
func (p *dayStore) loadLocked(date string) (day.Snapshot, error) {
	if !timeutil.Valid(date) {
		return day.Snapshot{}, &StorageError{Op: "read", Date: date, Err: fmt.Errorf("invalid date: %w", ErrNotFound)}
	}
	val, err := p.d.Read(date)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = ErrNotFound
		}
		return day.Snapshot{}, &StorageError{Op: "read", Date: date, Err: err}
	}
	var s day.Snapshot
	if err := json.Unmarshal(val, &s); err != nil {
		return day.Snapshot{}, &StorageError{Op: "decode", Date: date, Err: err}
	}
	// The file name, not its contents, decides what day this is.
	s.Date = date
	return day.Sanitize(s), nil
}

// saveLocked persists an already-sanitized snapshot and refreshes the cache.
// Callers hold p.mu.
func (p *dayStore) saveLocked(s day.Snapshot) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return &StorageError{Op: "encode", Date: s.Date, Err: err}
	}
	if err := p.d.Write(s.Date, data); err != nil {
		return &StorageError{Op: "write", Date: s.Date, Err: err}
	}
	p.cache[s.Date] = s

	if s.Date == p.today() {
		if err := p.writeTodayMirror(data); err != nil {
			// The mirror is a convenience copy; the day file is the
			// record. Complain and move on.
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	}
	return nil
}

// writeTodayMirror copies the current day's document to a fixed location so
// external tooling can find "today" without knowing the date.
func (p *dayStore) writeTodayMirror(data []byte) error {
	if p.basePath == "" {
		return errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	path := filepath.Join(p.basePath, todayFile)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: write today mirror: %w", err)
	}
	return os.Rename(tmp, path)
}

func dateToPathTransform(date string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{daysDir},
		FileName: date + ".json",
	}
}

func pathToDateTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, ".json")
}
