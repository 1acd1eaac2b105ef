package memory

import (
	"context"
	"maps"

	"partner-dashboard-srv/internal/session/repository"
)

func (r *implRepository) GetFields(_ context.Context, sessionID string) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[sessionID]
	if !ok {
		return map[string]string{}, nil
	}
	if !e.expiresAt.IsZero() && !r.now().Before(e.expiresAt) {
		delete(r.sessions, sessionID)
		return map[string]string{}, nil
	}
	return maps.Clone(e.fields), nil
}

func (r *implRepository) SetFields(_ context.Context, opt repository.SetFieldsOptions) error {
	if len(opt.Fields) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[opt.SessionID]
	if !ok || (!e.expiresAt.IsZero() && !r.now().Before(e.expiresAt)) {
		e = &entry{fields: make(map[string]string)}
		r.sessions[opt.SessionID] = e
	}
	maps.Copy(e.fields, opt.Fields)
	if opt.TTL > 0 {
		e.expiresAt = r.now().Add(opt.TTL)
	}
	return nil
}

// Sweep drops every expired session and reports how many went.
func (r *implRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	n := 0
	for sid, e := range r.sessions {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(r.sessions, sid)
			n++
		}
	}
	return n
}

func (r *implRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}
