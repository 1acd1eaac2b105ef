package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/upload"
	pkgErrors "partner-dashboard-srv/pkg/errors"
	"partner-dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

var errUnreadablePart = errors.New("upload.delivery.http: unreadable multipart file")

var fileFields = []struct {
	field  string
	source model.DataSource
}{
	{fieldMyAffiliateFile, model.SourceMyAffiliate},
	{fieldDynamicWorksFile, model.SourceDynamicWorks},
}

func (h *handler) processUploadRequest(c *gin.Context) (upload.UploadInput, model.Scope, error) {
	input := upload.UploadInput{UploadID: c.PostForm(fieldUploadID)}

	for _, ff := range fileFields {
		fh, err := c.FormFile(ff.field)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			return input, model.Scope{}, fmt.Errorf("%w: %v", errUnreadablePart, err)
		}
		content, err := h.readPart(fh)
		if err != nil {
			return input, model.Scope{}, err
		}
		input.Files = append(input.Files, upload.File{
			Source:   ff.source,
			Filename: fh.Filename,
			Content:  content,
		})
	}

	return input, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) readPart(fh *multipart.FileHeader) ([]byte, error) {
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return nil, upload.ErrFileTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnreadablePart, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnreadablePart, err)
	}
	return content, nil
}

func (h *handler) processSelectStoredRequest(c *gin.Context) (upload.LoadStoredFileInput, model.Scope, error) {
	var req selectStoredReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return upload.LoadStoredFileInput{}, model.Scope{}, pkgErrors.NewValidationError("source", "fileId")
	}
	input, err := req.toInput()
	if err != nil {
		return upload.LoadStoredFileInput{}, model.Scope{}, err
	}
	return input, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processHistoryRequest(c *gin.Context) (upload.ListHistoryInput, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return upload.ListHistoryInput{}, pkgErrors.NewValidationError("page", "limit", "source", "mine")
	}
	src, err := model.ParseDataSource(req.Source)
	if err != nil {
		return upload.ListHistoryInput{}, upload.ErrInvalidSource
	}

	input := upload.ListHistoryInput{Source: src, Paginate: req.PaginateQuery}
	input.Paginate.Adjust()
	if req.Mine {
		input.SessionID = scope.GetScopeFromContext(c.Request.Context()).SessionID
	}
	return input, nil
}
