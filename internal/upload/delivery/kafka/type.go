package kafka

import "time"

const (
	TopicUploadCompleted   = "partner-dashboard.uploads"
	GroupIDUploadCompleted = "partner-dashboard-upload-history"
)

// UploadCompletedMessage - Kafka message for partner-dashboard.uploads
type UploadCompletedMessage struct {
	FileID        string    `json:"file_id"`
	Source        string    `json:"source"`
	Filename      string    `json:"filename"`
	SessionID     string    `json:"session_id"`
	ArchiveObject string    `json:"archive_object,omitempty"`
	Size          int64     `json:"size"`
	UploadedAt    time.Time `json:"uploaded_at"`
}
