package generation

import "context"

// ITracker hands out monotonically increasing generations per key. Starting a
// new generation cancels the context of the previous one for the same key.
// Only keys with work in flight are held. Implementations are safe for
// concurrent use.
type ITracker interface {
	Begin(ctx context.Context, key string) (context.Context, Ticket)
	Current(key string) uint64
	Forget(prefix string)
}

// New creates a new tracker. Returns the interface.
func New() ITracker {
	return &trackerImpl{entries: make(map[string]*entry)}
}
