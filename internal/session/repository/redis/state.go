package redis

import (
	"context"
	"fmt"

	"partner-dashboard-srv/internal/session/repository"
)

func (r *implRepository) GetFields(ctx context.Context, sessionID string) (map[string]string, error) {
	fields, err := r.redis.HGetAll(ctx, repository.StateKey(sessionID))
	if err != nil {
		r.l.Errorf(ctx, "session.repository.redis.GetFields: HGetAll failed: %v", err)
		return nil, fmt.Errorf("GetFields: %w: %v", repository.ErrFailedToGet, err)
	}
	return fields, nil
}

// SetFields writes all fields and the TTL atomically so a reader never sees half a commit.
func (r *implRepository) SetFields(ctx context.Context, opt repository.SetFieldsOptions) error {
	if err := r.redis.HSetWithTTL(ctx, repository.StateKey(opt.SessionID), opt.Fields, opt.TTL); err != nil {
		r.l.Errorf(ctx, "session.repository.redis.SetFields: HSetWithTTL failed: %v", err)
		return fmt.Errorf("SetFields: %w: %v", repository.ErrFailedToSet, err)
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.redis.Delete(ctx, repository.StateKey(sessionID)); err != nil {
		r.l.Errorf(ctx, "session.repository.redis.Delete: Del failed: %v", err)
		return fmt.Errorf("Delete: %w: %v", repository.ErrFailedToDelete, err)
	}
	return nil
}
