package consumer

import (
	"fmt"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/upload"
	kafkaDelivery "partner-dashboard-srv/internal/upload/delivery/kafka"
)

func toRecordUploadInput(m kafkaDelivery.UploadCompletedMessage) (upload.RecordUploadInput, error) {
	if m.FileID == "" || m.Filename == "" {
		return upload.RecordUploadInput{}, fmt.Errorf("missing file_id or filename")
	}
	src, err := model.ParseDataSource(m.Source)
	if err != nil || !src.IsUploadSource() {
		return upload.RecordUploadInput{}, fmt.Errorf("invalid source %q", m.Source)
	}
	return upload.RecordUploadInput{
		FileID:        m.FileID,
		Source:        src,
		Filename:      m.Filename,
		SessionID:     m.SessionID,
		ArchiveObject: m.ArchiveObject,
		SizeBytes:     m.Size,
		UploadedAt:    m.UploadedAt,
	}, nil
}
