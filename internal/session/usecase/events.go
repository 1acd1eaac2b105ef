package usecase

import (
	"context"
	"encoding/json"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/session"
	"partner-dashboard-srv/internal/session/repository"
)

// publish is best-effort: a lost event only delays another tab's refresh.
func (uc *implUseCase) publish(ctx context.Context, sc model.Scope, ev session.Event) {
	ev.At = uc.now().UnixMilli()
	payload, err := json.Marshal(ev)
	if err != nil {
		uc.l.Warnf(ctx, "session.usecase.publish: Marshal failed: %v", err)
		return
	}
	if err := uc.repo.Publish(ctx, repository.PublishOptions{SessionID: sc.SessionID, Payload: payload}); err != nil {
		uc.l.Warnf(ctx, "session.usecase.publish: Publish failed: %v", err)
	}
}

func (uc *implUseCase) Subscribe(ctx context.Context, sc model.Scope) (<-chan session.Event, error) {
	if sc.SessionID == "" {
		return nil, session.ErrSessionRequired
	}

	raw, err := uc.repo.Subscribe(ctx, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.Subscribe: Subscribe failed: %v", err)
		return nil, err
	}

	out := make(chan session.Event)
	go func() {
		defer close(out)
		for payload := range raw {
			var ev session.Event
			if err := json.Unmarshal(payload, &ev); err != nil {
				uc.l.Warnf(ctx, "session.usecase.Subscribe: Unmarshal failed: %v", err)
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
