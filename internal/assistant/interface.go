package assistant

import (
	"context"

	"partner-dashboard-srv/internal/model"
)

// UseCase drives both chat surfaces. Chat failures never come back as errors;
// they are appended to the transcript as bot messages.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, input GetInput) (AssistantOutput, error)
	Send(ctx context.Context, sc model.Scope, input SendInput) (TranscriptOutput, error)
	Clear(ctx context.Context, sc model.Scope) (TranscriptOutput, error)

	GetWidget(ctx context.Context, sc model.Scope) ([]model.ChatMessage, error)
	SendWidget(ctx context.Context, sc model.Scope, input SendInput) ([]model.ChatMessage, error)
}

// SessionService is the part of the session service the assistant needs.
type SessionService interface {
	Get(ctx context.Context, sc model.Scope) (model.SessionState, error)
	SaveTranscript(ctx context.Context, sc model.Scope, messages []model.ChatMessage) error
}
