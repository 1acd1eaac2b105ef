package postgre

import (
	"context"
	"fmt"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/sqlboiler"
	"partner-dashboard-srv/internal/upload/repository"
	"partner-dashboard-srv/pkg/paginator"
)

// InsertUpload stores one ledger row. It reports false when the file id was already recorded.
func (r *implRepository) InsertUpload(ctx context.Context, opt repository.InsertUploadOptions) (bool, error) {
	inserted, err := buildInsertUpload(opt).InsertIgnore(ctx, r.db, r.table)
	if err != nil {
		r.l.Errorf(ctx, "upload.repository.postgre.InsertUpload: insert failed: %v", err)
		return false, fmt.Errorf("InsertUpload: %w: %v", repository.ErrFailedToInsert, err)
	}
	return inserted, nil
}

func (r *implRepository) ListUploads(ctx context.Context, opt repository.ListUploadsOptions) ([]model.UploadRecord, paginator.Paginator, error) {
	opt.Paginate.Adjust()

	// 1. Count total
	total, err := sqlboiler.UploadHistories(r.table, r.buildListCountQuery(opt)...).Count(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "upload.repository.postgre.ListUploads: count failed: %v", err)
		return nil, paginator.Paginator{}, fmt.Errorf("ListUploads: %w: %v", repository.ErrFailedToCount, err)
	}

	// 2. Get page
	rows, err := sqlboiler.UploadHistories(r.table, r.buildListQuery(opt)...).All(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "upload.repository.postgre.ListUploads: query failed: %v", err)
		return nil, paginator.Paginator{}, fmt.Errorf("ListUploads: %w: %v", repository.ErrFailedToList, err)
	}

	records := make([]model.UploadRecord, 0, len(rows))
	for _, row := range rows {
		rec := model.NewUploadRecordFromDB(row)
		if rec == nil {
			r.l.Warnf(ctx, "upload.repository.postgre.ListUploads: skipping %s with unknown source %q", row.FileID, row.Source)
			continue
		}
		records = append(records, *rec)
	}

	return records, paginator.New(opt.Paginate, total, int64(len(records))), nil
}
