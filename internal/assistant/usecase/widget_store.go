package usecase

import (
	"sync"
	"time"

	"partner-dashboard-srv/internal/model"
)

// widgetStore keeps widget transcripts in process memory only.
type widgetStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*widgetEntry
}

type widgetEntry struct {
	messages []model.ChatMessage
	touched  time.Time
}

func newWidgetStore(ttl time.Duration, now func() time.Time) *widgetStore {
	return &widgetStore{ttl: ttl, now: now, entries: make(map[string]*widgetEntry)}
}

// get returns a copy of sid's transcript, or nil when there is none.
func (w *widgetStore) get(sid string) []model.ChatMessage {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.sweepLocked()
	e, ok := w.entries[sid]
	if !ok {
		return nil
	}
	e.touched = w.now()
	return append([]model.ChatMessage(nil), e.messages...)
}

func (w *widgetStore) set(sid string, messages []model.ChatMessage) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries[sid] = &widgetEntry{
		messages: append([]model.ChatMessage(nil), messages...),
		touched:  w.now(),
	}
}

func (w *widgetStore) len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}

// sweep drops transcripts idle for longer than the ttl and reports how many went.
func (w *widgetStore) sweep() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sweepLocked()
}

func (w *widgetStore) sweepLocked() int {
	cutoff := w.now().Add(-w.ttl)
	n := 0
	for sid, e := range w.entries {
		if e.touched.Before(cutoff) {
			delete(w.entries, sid)
			n++
		}
	}
	return n
}
