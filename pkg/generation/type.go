package generation

import (
	"context"
	"sync"
)

// Ticket identifies one generation of a key.
type Ticket struct {
	t   *trackerImpl
	key string
	gen uint64
}

type entry struct {
	gen    uint64
	cancel context.CancelFunc
}

type trackerImpl struct {
	mu      sync.Mutex
	seq     uint64
	entries map[string]*entry
}
