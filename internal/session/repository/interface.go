package repository

import (
	"context"
)

//go:generate mockery --name StateRepository
type StateRepository interface {
	// GetFields returns every stored field of the session; an unknown session yields an empty map.
	GetFields(ctx context.Context, sessionID string) (map[string]string, error)
	// SetFields writes all fields atomically and refreshes the TTL.
	SetFields(ctx context.Context, opt SetFieldsOptions) error
	Delete(ctx context.Context, sessionID string) error
	Publish(ctx context.Context, opt PublishOptions) error
	// Subscribe delivers published payloads until ctx is done, then closes the channel.
	Subscribe(ctx context.Context, sessionID string) (<-chan []byte, error)
}
