package repository

import (
	"time"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/pkg/paginator"
)

// InsertUploadOptions is one ledger row. Replays of the same file id are ignored.
type InsertUploadOptions struct {
	FileID        string
	Source        model.DataSource
	Filename      string
	SessionID     string
	ArchiveObject string
	SizeBytes     int64
	UploadedAt    time.Time
}

type ListUploadsOptions struct {
	Source    model.DataSource
	SessionID string
	Paginate  paginator.PaginateQuery
}
