package upload

import (
	"time"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/pkg/paginator"
)

const (
	// RedirectDashboard is where the shell navigates after a successful upload.
	RedirectDashboard = "/dashboard"

	// ArchivePrefix is the object key prefix for archived spreadsheets.
	ArchivePrefix = "uploads"

	XLSXExtension   = ".xlsx"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// File is one spreadsheet picked for upload.
type File struct {
	Source   model.DataSource
	Filename string
	Content  []byte
}

type UploadInput struct {
	// UploadID lets the client poll progress. A new one is generated when empty.
	UploadID string
	Files    []File
}

type UploadOutput struct {
	UploadID       string
	MyAffiliateID  string
	DynamicWorksID string
	Redirect       string
	State          model.SessionState
}

type ProgressStatus string

const (
	ProgressUploading ProgressStatus = "uploading"
	ProgressCompleted ProgressStatus = "completed"
	ProgressFailed    ProgressStatus = "failed"
)

type Progress struct {
	UploadID string
	Percent  int
	Status   ProgressStatus
}

// StoredFiles groups the files the analysis service keeps, newest first.
type StoredFiles struct {
	MyAffiliate  []model.UploadedFile
	DynamicWorks []model.UploadedFile
}

type LoadStoredFileInput struct {
	Source model.DataSource
	FileID string
}

type ListHistoryInput struct {
	Source    model.DataSource
	SessionID string
	Paginate  paginator.PaginateQuery
}

// RecordUploadInput is one ledger row as delivered by an upload event.
type RecordUploadInput struct {
	FileID        string
	Source        model.DataSource
	Filename      string
	SessionID     string
	ArchiveObject string
	SizeBytes     int64
	UploadedAt    time.Time
}

// UploadCompletedEvent is published once per committed file.
type UploadCompletedEvent struct {
	FileID        string
	Source        model.DataSource
	Filename      string
	SessionID     string
	ArchiveObject string
	SizeBytes     int64
	UploadedAt    time.Time
}
