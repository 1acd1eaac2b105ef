package model

import (
	"time"

	"github.com/aarondl/null/v8"

	"partner-dashboard-srv/internal/sqlboiler"
)

// UploadedFile is a spreadsheet the analysis backend has processed.
type UploadedFile struct {
	FileID     string     `json:"fileId"`
	Source     DataSource `json:"source"`
	Filename   string     `json:"filename"`
	UploadDate time.Time  `json:"uploadDate"`
}

// UploadRecord is a row of the upload history ledger.
type UploadRecord struct {
	FileID        string
	Source        DataSource
	Filename      string
	SessionID     string
	ArchiveObject string
	SizeBytes     int64
	UploadedAt    time.Time
	RecordedAt    time.Time
}

// NewUploadRecordFromDB converts a SQLBoiler UploadHistory row. It returns nil
// when the row's source is not one this service knows.
func NewUploadRecordFromDB(db *sqlboiler.UploadHistory) *UploadRecord {
	if db == nil {
		return nil
	}
	src, err := ParseDataSource(db.Source)
	if err != nil {
		return nil
	}

	return &UploadRecord{
		FileID:        db.FileID,
		Source:        src,
		Filename:      db.Filename,
		SessionID:     db.SessionID.String,
		ArchiveObject: db.ArchiveObject.String,
		SizeBytes:     db.SizeBytes,
		UploadedAt:    db.UploadedAt,
		RecordedAt:    db.RecordedAt,
	}
}

// ToDBUploadHistory converts r to a SQLBoiler row. Empty optional columns are stored as NULL.
func (r UploadRecord) ToDBUploadHistory() *sqlboiler.UploadHistory {
	return &sqlboiler.UploadHistory{
		FileID:        r.FileID,
		Source:        r.Source.String(),
		Filename:      r.Filename,
		SessionID:     null.NewString(r.SessionID, r.SessionID != ""),
		ArchiveObject: null.NewString(r.ArchiveObject, r.ArchiveObject != ""),
		SizeBytes:     r.SizeBytes,
		UploadedAt:    r.UploadedAt.UTC(),
	}
}
