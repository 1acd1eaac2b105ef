package usecase

import (
	"bytes"
	"context"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/upload"
	"partner-dashboard-srv/pkg/minio"
)

// afterCommit archives the spreadsheets and announces them. Failures are logged only.
func (uc *implUseCase) afterCommit(ctx context.Context, sc model.Scope, files []upload.File, fileIDs []string) {
	uploadedAt := uc.now().UTC()
	for i, f := range files {
		object := uc.archive(ctx, sc, f, fileIDs[i])

		if uc.publisher == nil {
			continue
		}
		err := uc.publisher.PublishUploadCompleted(ctx, upload.UploadCompletedEvent{
			FileID:        fileIDs[i],
			Source:        f.Source,
			Filename:      f.Filename,
			SessionID:     sc.SessionID,
			ArchiveObject: object,
			SizeBytes:     int64(len(f.Content)),
			UploadedAt:    uploadedAt,
		})
		if err != nil {
			uc.l.Warnf(ctx, "upload.usecase.afterCommit: PublishUploadCompleted %s failed: %v", fileIDs[i], err)
		}
	}
}

// archive queues the spreadsheet for MinIO and returns its object key, or "" when not archived.
func (uc *implUseCase) archive(ctx context.Context, sc model.Scope, f upload.File, fileID string) string {
	if uc.storage == nil {
		return ""
	}
	object := archiveObjectName(f.Source, fileID, f.Filename)
	taskID, err := uc.storage.UploadAsync(ctx, &minio.UploadRequest{
		BucketName:   uc.bucket,
		ObjectName:   object,
		OriginalName: f.Filename,
		Reader:       bytes.NewReader(f.Content),
		Size:         int64(len(f.Content)),
		ContentType:  upload.XLSXContentType,
		Metadata: map[string]string{
			"session-id": sc.SessionID,
			"source":     f.Source.String(),
			"file-id":    fileID,
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "upload.usecase.archive: UploadAsync %s failed: %v", object, err)
		return ""
	}
	uc.l.Debugf(ctx, "upload.usecase.archive: queued %s as task %s", object, taskID)
	return object
}

func archiveObjectName(src model.DataSource, fileID, filename string) string {
	return minio.ObjectName(upload.ArchivePrefix, src.String(), fileID, filename)
}
