package memory

import (
	"context"

	"partner-dashboard-srv/internal/session/repository"
)

const subscriberBuffer = 16

// Publish fans out to current subscribers. A subscriber whose buffer is full misses the event.
func (r *implRepository) Publish(_ context.Context, opt repository.PublishOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for ch := range r.subscribers[opt.SessionID] {
		select {
		case ch <- opt.Payload:
		default:
		}
	}
	return nil
}

func (r *implRepository) Subscribe(ctx context.Context, sessionID string) (<-chan []byte, error) {
	ch := make(chan []byte, subscriberBuffer)

	r.mu.Lock()
	subs, ok := r.subscribers[sessionID]
	if !ok {
		subs = make(map[chan []byte]struct{})
		r.subscribers[sessionID] = subs
	}
	subs[ch] = struct{}{}
	r.mu.Unlock()

	go func() {
		<-ctx.Done()
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subscribers[sessionID], ch)
		if len(r.subscribers[sessionID]) == 0 {
			delete(r.subscribers, sessionID)
		}
		close(ch)
	}()
	return ch, nil
}
