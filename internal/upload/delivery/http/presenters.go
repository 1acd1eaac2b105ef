package http

import (
	"time"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/upload"
	"partner-dashboard-srv/pkg/paginator"
	"partner-dashboard-srv/pkg/response"
	"partner-dashboard-srv/pkg/util"
)

const (
	fieldMyAffiliateFile  = "myAffiliateFile"
	fieldDynamicWorksFile = "dynamicWorksFile"
	fieldUploadID         = "upload_id"
)

type uploadResp struct {
	UploadID       string `json:"uploadId"`
	MyAffiliateID  string `json:"myAffiliateId,omitempty"`
	DynamicWorksID string `json:"dynamicWorksId,omitempty"`
	CurrentFileID  string `json:"currentFileId"`
	Redirect       string `json:"redirect"`
}

func (h *handler) newUploadResp(o upload.UploadOutput) uploadResp {
	return uploadResp{
		UploadID:       o.UploadID,
		MyAffiliateID:  o.MyAffiliateID,
		DynamicWorksID: o.DynamicWorksID,
		CurrentFileID:  o.State.CurrentFileID,
		Redirect:       o.Redirect,
	}
}

type progressResp struct {
	UploadID string `json:"uploadId"`
	Percent  int    `json:"percent"`
	Status   string `json:"status"`
}

func (h *handler) newProgressResp(p upload.Progress) progressResp {
	return progressResp{UploadID: p.UploadID, Percent: p.Percent, Status: string(p.Status)}
}

type storedFileResp struct {
	FileID     string        `json:"fileId"`
	Filename   string        `json:"filename"`
	UploadDate response.Date `json:"uploadDate"`
}

type storedFilesResp struct {
	MyAffiliate  []storedFileResp `json:"myAffiliate"`
	DynamicWorks []storedFileResp `json:"dynamicWorks"`
}

func toStoredFileResp(f model.UploadedFile) storedFileResp {
	return storedFileResp{FileID: f.FileID, Filename: f.Filename, UploadDate: response.Date(f.UploadDate)}
}

func (h *handler) newStoredFilesResp(s upload.StoredFiles) storedFilesResp {
	return storedFilesResp{
		MyAffiliate:  util.MapSlice(s.MyAffiliate, toStoredFileResp),
		DynamicWorks: util.MapSlice(s.DynamicWorks, toStoredFileResp),
	}
}

type selectStoredReq struct {
	Source string `json:"source" binding:"required"`
	FileID string `json:"fileId" binding:"required"`
}

func (r selectStoredReq) toInput() (upload.LoadStoredFileInput, error) {
	src, err := model.ParseDataSource(r.Source)
	if err != nil || !src.IsUploadSource() {
		return upload.LoadStoredFileInput{}, upload.ErrInvalidSource
	}
	return upload.LoadStoredFileInput{Source: src, FileID: r.FileID}, nil
}

type selectStoredResp struct {
	MyAffiliateID  string `json:"myAffiliateId,omitempty"`
	DynamicWorksID string `json:"dynamicWorksId,omitempty"`
	CurrentFileID  string `json:"currentFileId,omitempty"`
	Redirect       string `json:"redirect"`
}

func (h *handler) newSelectStoredResp(s model.SessionState) selectStoredResp {
	return selectStoredResp{
		MyAffiliateID:  s.MyAffiliateID,
		DynamicWorksID: s.DynamicWorksID,
		CurrentFileID:  s.CurrentFileID,
		Redirect:       upload.RedirectDashboard,
	}
}

type historyReq struct {
	paginator.PaginateQuery
	Source string `form:"source"`
	Mine   bool   `form:"mine"`
}

type historyItemResp struct {
	FileID        string            `json:"fileId"`
	Source        model.DataSource  `json:"source"`
	Filename      string            `json:"filename"`
	ArchiveObject string            `json:"archiveObject,omitempty"`
	SizeBytes     int64             `json:"sizeBytes"`
	UploadedAt    response.DateTime `json:"uploadedAt"`
}

type historyResp struct {
	Items     []historyItemResp           `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newHistoryResp(records []model.UploadRecord, pag paginator.Paginator) historyResp {
	return historyResp{
		Items: util.MapSlice(records, func(r model.UploadRecord) historyItemResp {
			return historyItemResp{
				FileID:        r.FileID,
				Source:        r.Source,
				Filename:      r.Filename,
				ArchiveObject: r.ArchiveObject,
				SizeBytes:     r.SizeBytes,
				UploadedAt:    response.DateTime(r.UploadedAt.In(time.UTC)),
			}
		}),
		Paginator: pag.ToResponse(),
	}
}
