package session

import (
	"context"

	"partner-dashboard-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope) (model.SessionState, error)
	CommitUploads(ctx context.Context, sc model.Scope, input CommitUploadsInput) (model.SessionState, error)
	SelectFile(ctx context.Context, sc model.Scope, input SelectFileInput) (model.SessionState, error)
	SaveTranscript(ctx context.Context, sc model.Scope, messages []model.ChatMessage) error
	Clear(ctx context.Context, sc model.Scope) error
	Subscribe(ctx context.Context, sc model.Scope) (<-chan Event, error)
}
