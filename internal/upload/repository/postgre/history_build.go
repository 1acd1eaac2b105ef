package postgre

import (
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/sqlboiler"
	"partner-dashboard-srv/internal/upload/repository"
)

func buildInsertUpload(opt repository.InsertUploadOptions) *sqlboiler.UploadHistory {
	return model.UploadRecord{
		FileID:        opt.FileID,
		Source:        opt.Source,
		Filename:      opt.Filename,
		SessionID:     opt.SessionID,
		ArchiveObject: opt.ArchiveObject,
		SizeBytes:     opt.SizeBytes,
		UploadedAt:    opt.UploadedAt,
	}.ToDBUploadHistory()
}
