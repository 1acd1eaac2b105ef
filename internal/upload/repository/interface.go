package repository

import (
	"context"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/pkg/paginator"
)

//go:generate mockery --name HistoryRepository
type HistoryRepository interface {
	EnsureSchema(ctx context.Context) error
	InsertUpload(ctx context.Context, opt InsertUploadOptions) (bool, error)
	ListUploads(ctx context.Context, opt ListUploadsOptions) ([]model.UploadRecord, paginator.Paginator, error)
}
