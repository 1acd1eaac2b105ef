package usecase

import (
	"context"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/upload"
	"partner-dashboard-srv/internal/upload/repository"
	"partner-dashboard-srv/pkg/paginator"
)

func (uc *implUseCase) ListHistory(ctx context.Context, input upload.ListHistoryInput) ([]model.UploadRecord, paginator.Paginator, error) {
	if uc.history == nil {
		return nil, paginator.Paginator{}, upload.ErrHistoryDisabled
	}
	records, pag, err := uc.history.ListUploads(ctx, repository.ListUploadsOptions{
		Source:    input.Source,
		SessionID: input.SessionID,
		Paginate:  input.Paginate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "upload.usecase.ListHistory: ListUploads failed: %v", err)
		return nil, paginator.Paginator{}, err
	}
	return records, pag, nil
}

// RecordUpload appends one row to the ledger. Replayed events are accepted silently.
func (uc *implUseCase) RecordUpload(ctx context.Context, input upload.RecordUploadInput) error {
	if uc.history == nil {
		return upload.ErrHistoryDisabled
	}
	if input.FileID == "" || input.Filename == "" || !input.Source.IsUploadSource() {
		return upload.ErrInvalidRecord
	}
	uploadedAt := input.UploadedAt
	if uploadedAt.IsZero() {
		uploadedAt = uc.now()
	}

	inserted, err := uc.history.InsertUpload(ctx, repository.InsertUploadOptions{
		FileID:        input.FileID,
		Source:        input.Source,
		Filename:      input.Filename,
		SessionID:     input.SessionID,
		ArchiveObject: input.ArchiveObject,
		SizeBytes:     input.SizeBytes,
		UploadedAt:    uploadedAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "upload.usecase.RecordUpload: InsertUpload failed: %v", err)
		return err
	}
	if !inserted {
		uc.l.Infof(ctx, "upload.usecase.RecordUpload: %s already recorded", input.FileID)
	}
	return nil
}
