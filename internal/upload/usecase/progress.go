package usecase

import (
	"sync"
	"time"

	"partner-dashboard-srv/internal/upload"
)

type progressEntry struct {
	percent    int
	status     upload.ProgressStatus
	stop       chan struct{}
	finishedAt time.Time
}

// progressTracker simulates upload progress: it climbs by step every interval,
// holds at the ceiling, and jumps to 100 only when the upload succeeds.
type progressTracker struct {
	mu       sync.Mutex
	entries  map[string]*progressEntry
	interval time.Duration
	step     int
}

func newProgressTracker(interval time.Duration, step int) *progressTracker {
	return &progressTracker{
		entries:  make(map[string]*progressEntry),
		interval: interval,
		step:     step,
	}
}

// start begins ticking for id and returns the function that settles it.
func (t *progressTracker) start(id string) func(ok bool) {
	t.mu.Lock()
	t.sweepLocked(time.Now())
	if prev, exists := t.entries[id]; exists && prev.status == upload.ProgressUploading {
		// a reused id abandons the earlier attempt
		close(prev.stop)
		prev.status = upload.ProgressFailed
		prev.finishedAt = time.Now()
	}
	e := &progressEntry{status: upload.ProgressUploading, stop: make(chan struct{})}
	t.entries[id] = e
	t.mu.Unlock()

	go t.tick(e)

	var once sync.Once
	return func(ok bool) {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			if e.status != upload.ProgressUploading {
				return
			}
			close(e.stop)
			e.finishedAt = time.Now()
			if ok {
				e.percent = 100
				e.status = upload.ProgressCompleted
				return
			}
			e.status = upload.ProgressFailed
		})
	}
}

func (t *progressTracker) tick(e *progressEntry) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-e.stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			if e.status == upload.ProgressUploading && e.percent < progressCeiling {
				e.percent += t.step
				if e.percent > progressCeiling {
					e.percent = progressCeiling
				}
			}
			t.mu.Unlock()
		}
	}
}

func (t *progressTracker) get(id string) (upload.Progress, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[id]
	if !ok {
		return upload.Progress{}, false
	}
	return upload.Progress{UploadID: id, Percent: e.percent, Status: e.status}, true
}

func (t *progressTracker) sweepLocked(now time.Time) {
	for id, e := range t.entries {
		if e.status != upload.ProgressUploading && now.Sub(e.finishedAt) > progressRetention {
			delete(t.entries, id)
		}
	}
}
