package usecase

import "sync"

// sessionLocks serializes transcript changes per session. Entries are
// reference counted and dropped when unused.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*refMutex)}
}

// lock blocks until sid is free and returns its unlock func.
func (s *sessionLocks) lock(sid string) func() {
	s.mu.Lock()
	m, ok := s.locks[sid]
	if !ok {
		m = &refMutex{}
		s.locks[sid] = m
	}
	m.refs++
	s.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		s.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(s.locks, sid)
		}
		s.mu.Unlock()
	}
}
