package postgre

import (
	"github.com/aarondl/sqlboiler/v4/queries/qm"

	"partner-dashboard-srv/internal/upload/repository"
)

// buildListCountQuery - filters shared by the count and the page
func (r *implRepository) buildListCountQuery(opt repository.ListUploadsOptions) []qm.QueryMod {
	mods := []qm.QueryMod{}

	// combined is not a stored source, so it does not filter
	if opt.Source.IsUploadSource() {
		mods = append(mods, qm.Where("source = ?", opt.Source.String()))
	}
	if opt.SessionID != "" {
		mods = append(mods, qm.Where("session_id = ?", opt.SessionID))
	}

	return mods
}

// buildListQuery - filters plus ordering and the requested page
func (r *implRepository) buildListQuery(opt repository.ListUploadsOptions) []qm.QueryMod {
	mods := r.buildListCountQuery(opt)

	mods = append(mods, qm.OrderBy("uploaded_at DESC, file_id ASC"))

	if opt.Paginate.Limit > 0 {
		mods = append(mods, qm.Limit(int(opt.Paginate.Limit)))
	}
	if offset := opt.Paginate.Offset(); offset > 0 {
		mods = append(mods, qm.Offset(int(offset)))
	}

	return mods
}
