package redis

import (
	"context"
	"fmt"

	"partner-dashboard-srv/internal/session/repository"
)

func (r *implRepository) Publish(ctx context.Context, opt repository.PublishOptions) error {
	if err := r.redis.Publish(ctx, repository.EventsChannel(opt.SessionID), opt.Payload); err != nil {
		r.l.Errorf(ctx, "session.repository.redis.Publish: Publish failed: %v", err)
		return fmt.Errorf("Publish: %w: %v", repository.ErrFailedToPublish, err)
	}
	return nil
}

func (r *implRepository) Subscribe(ctx context.Context, sessionID string) (<-chan []byte, error) {
	sub, err := r.redis.Subscribe(ctx, repository.EventsChannel(sessionID))
	if err != nil {
		r.l.Errorf(ctx, "session.repository.redis.Subscribe: Subscribe failed: %v", err)
		return nil, fmt.Errorf("Subscribe: %w", err)
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		defer sub.Close()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
