package sqlboiler

import (
	"context"
	"fmt"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

// UploadHistory is an object representing the database table.
type UploadHistory struct {
	FileID        string      `boil:"file_id" json:"file_id"`
	Source        string      `boil:"source" json:"source"`
	Filename      string      `boil:"filename" json:"filename"`
	SessionID     null.String `boil:"session_id" json:"session_id,omitempty"`
	ArchiveObject null.String `boil:"archive_object" json:"archive_object,omitempty"`
	SizeBytes     int64       `boil:"size_bytes" json:"size_bytes"`
	UploadedAt    time.Time   `boil:"uploaded_at" json:"uploaded_at"`
	RecordedAt    time.Time   `boil:"recorded_at" json:"recorded_at"`
}

var UploadHistoryColumns = struct {
	FileID        string
	Source        string
	Filename      string
	SessionID     string
	ArchiveObject string
	SizeBytes     string
	UploadedAt    string
	RecordedAt    string
}{
	FileID:        "file_id",
	Source:        "source",
	Filename:      "filename",
	SessionID:     "session_id",
	ArchiveObject: "archive_object",
	SizeBytes:     "size_bytes",
	UploadedAt:    "uploaded_at",
	RecordedAt:    "recorded_at",
}

var uploadHistoryAllColumns = []string{"file_id", "source", "filename", "session_id", "archive_object", "size_bytes", "uploaded_at", "recorded_at"}

// recorded_at is left to its database default.
const uploadHistoryInsertIgnore = `INSERT INTO %s ("file_id","source","filename","session_id","archive_object","size_bytes","uploaded_at")
VALUES ($1,$2,$3,$4,$5,$6,$7)
ON CONFLICT ("file_id") DO NOTHING`

// UploadHistorySlice is an alias for a slice of pointers to UploadHistory.
type UploadHistorySlice []*UploadHistory

type uploadHistoryQuery struct {
	*queries.Query
}

// UploadHistories retrieves all the records of the table. The table name is
// passed in because its schema is configurable.
func UploadHistories(table string, mods ...qm.QueryMod) uploadHistoryQuery {
	mods = append(mods, qm.From(table))
	q := NewQuery(mods...)
	if len(queries.GetSelect(q)) == 0 {
		queries.SetSelect(q, uploadHistoryAllColumns)
	}
	return uploadHistoryQuery{q}
}

// All returns all UploadHistory records from the query.
func (q uploadHistoryQuery) All(ctx context.Context, exec boil.ContextExecutor) (UploadHistorySlice, error) {
	var o []*UploadHistory

	if err := q.Bind(ctx, exec, &o); err != nil {
		return nil, fmt.Errorf("sqlboiler: failed to assign all query results to UploadHistory slice: %w", err)
	}
	return o, nil
}

// Count returns the count of all UploadHistory records in the query.
func (q uploadHistoryQuery) Count(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	var count int64

	queries.SetSelect(q.Query, nil)
	queries.SetCount(q.Query)

	if err := q.Query.QueryRowContext(ctx, exec).Scan(&count); err != nil {
		return 0, fmt.Errorf("sqlboiler: failed to count upload_history rows: %w", err)
	}
	return count, nil
}

// InsertIgnore inserts o unless a row with the same file_id exists. It
// reports whether a row was written.
func (o *UploadHistory) InsertIgnore(ctx context.Context, exec boil.ContextExecutor, table string) (bool, error) {
	if o == nil {
		return false, fmt.Errorf("sqlboiler: no upload_history provided for insertion")
	}

	res, err := queries.Raw(fmt.Sprintf(uploadHistoryInsertIgnore, table),
		o.FileID, o.Source, o.Filename, o.SessionID, o.ArchiveObject, o.SizeBytes, o.UploadedAt,
	).ExecContext(ctx, exec)
	if err != nil {
		return false, fmt.Errorf("sqlboiler: unable to insert into upload_history: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("sqlboiler: failed to get rows affected by insert for upload_history: %w", err)
	}
	return n > 0, nil
}
