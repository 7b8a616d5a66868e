package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventDayChanged indicates one day's snapshot file changed on disk
	// (written by this process or edited externally).
	EventDayChanged EventType = iota

	// EventStoreInvalidated signals a change that cannot be pinned to a
	// single day; subscribers should refresh their full view.
	EventStoreInvalidated
)

// Event is emitted by DayStore.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Date string
}

// Watch streams change events until ctx is cancelled. Callers should drain
// the returned channel to avoid losing events. The channel is closed once ctx
// is done or the watcher encounters an unrecoverable error.
func (p *dayStore) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: base path unknown")
	}

	daysPath := filepath.Join(p.basePath, daysDir)
	for _, dir := range []string{p.basePath, daysPath} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: ensure %s: %w", dir, err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	for _, dir := range []string{p.basePath, daysPath} {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events when the consumer lags; the next refresh
				// picks the change up and the watcher never stalls.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a full refresh so clients
				// stay in sync even when the change is unclassifiable.
				throttle.Enqueue(Event{Type: EventStoreInvalidated}, send)
				_ = err
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				// Writes land via rename out of the temp dir, so
				// creations and renames matter as much as writes.
				if strings.HasSuffix(evt.Name, ".tmp") {
					continue
				}
				date := p.dateForPath(evt.Name)
				if date == "" {
					throttle.Enqueue(Event{Type: EventStoreInvalidated}, send)
					continue
				}
				throttle.Enqueue(Event{Type: EventDayChanged, Date: date}, send)
			}
		}
	}()

	return events, nil
}

// dateForPath derives the day key from a file under days/, or "" when the
// path is not a day file.
func (p *dayStore) dateForPath(path string) string {
	rel, err := filepath.Rel(filepath.Join(p.basePath, daysDir), path)
	if err != nil || strings.Contains(rel, string(os.PathSeparator)) || rel == "." {
		return ""
	}
	if !strings.HasSuffix(rel, ".json") {
		return ""
	}
	return strings.TrimSuffix(rel, ".json")
}

// eventThrottle coalesces rapid change notifications so a subscriber redraws
// once per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	if t.pending[ev.Type] == nil {
		t.pending[ev.Type] = make(map[string]struct{})
	}
	t.pending[ev.Type][ev.Date] = struct{}{}

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for eventType, dates := range pending {
		if len(dates) == 0 {
			send(Event{Type: eventType})
			continue
		}
		for date := range dates {
			send(Event{Type: eventType, Date: date})
		}
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
