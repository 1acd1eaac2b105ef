package memory

import (
	"sync"
	"time"

	"partner-dashboard-srv/internal/session/repository"
)

type entry struct {
	fields    map[string]string
	expiresAt time.Time
}

type implRepository struct {
	mu          sync.Mutex
	sessions    map[string]*entry
	subscribers map[string]map[chan []byte]struct{}
	now         func() time.Time
}

// New returns a process-local StateRepository. State is lost on restart.
func New() repository.StateRepository {
	return &implRepository{
		sessions:    make(map[string]*entry),
		subscribers: make(map[string]map[chan []byte]struct{}),
		now:         time.Now,
	}
}
