package upload

import (
	"context"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/pkg/paginator"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Upload(ctx context.Context, sc model.Scope, input UploadInput) (UploadOutput, error)
	GetProgress(ctx context.Context, uploadID string) (Progress, error)
	ListStoredFiles(ctx context.Context) (StoredFiles, error)
	LoadStoredFile(ctx context.Context, sc model.Scope, input LoadStoredFileInput) (model.SessionState, error)
	ListHistory(ctx context.Context, input ListHistoryInput) ([]model.UploadRecord, paginator.Paginator, error)
	RecordUpload(ctx context.Context, input RecordUploadInput) error
}

// Publisher announces committed uploads to downstream consumers.
type Publisher interface {
	PublishUploadCompleted(ctx context.Context, event UploadCompletedEvent) error
}
