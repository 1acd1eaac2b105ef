package generation

import (
	"context"
	"strings"
)

// Key joins parts into a tracker key.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

func (t *trackerImpl) Begin(ctx context.Context, key string) (context.Context, Ticket) {
	cctx, cancel := context.WithCancel(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	if prev, ok := t.entries[key]; ok {
		prev.cancel()
	}
	t.seq++
	gen := t.seq
	t.entries[key] = &entry{gen: gen, cancel: cancel}

	return cctx, Ticket{t: t, key: key, gen: gen}
}

func (t *trackerImpl) Current(key string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if e, ok := t.entries[key]; ok {
		return e.gen
	}
	return 0
}

// Gen returns the generation number of the ticket.
func (tk Ticket) Gen() uint64 {
	return tk.gen
}

// Valid reports whether no newer generation has started for the key.
func (tk Ticket) Valid() bool {
	if tk.t == nil {
		return false
	}
	tk.t.mu.Lock()
	defer tk.t.mu.Unlock()

	e, ok := tk.t.entries[tk.key]
	return ok && e.gen == tk.gen
}

// Check returns ErrSuperseded when the ticket is stale.
func (tk Ticket) Check() error {
	if !tk.Valid() {
		return ErrSuperseded
	}
	return nil
}

// Done releases the ticket's context and drops the key if the ticket is still
// current. Generations come from a tracker-wide counter, so a later Begin for
// the same key never reuses a number.
func (tk Ticket) Done() {
	if tk.t == nil {
		return
	}
	tk.t.mu.Lock()
	defer tk.t.mu.Unlock()

	e, ok := tk.t.entries[tk.key]
	if !ok || e.gen != tk.gen {
		return
	}
	e.cancel()
	delete(tk.t.entries, tk.key)
}

// Forget drops every key with the given prefix, cancelling in-flight work.
func (t *trackerImpl) Forget(prefix string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for k, e := range t.entries {
		if strings.HasPrefix(k, prefix) {
			e.cancel()
			delete(t.entries, k)
		}
	}
}
