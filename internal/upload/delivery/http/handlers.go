package http

import (
	"partner-dashboard-srv/pkg/response"
	"partner-dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Upload - Upload one or both partner spreadsheets
// @Summary Upload spreadsheets
// @Description Uploads myAffiliateFile and/or dynamicWorksFile to the analysis service. Session ids change only when every file succeeds.
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param myAffiliateFile formData file false "MyAffiliate export (.xlsx)"
// @Param dynamicWorksFile formData file false "DynamicWorks export (.xlsx)"
// @Param upload_id formData string false "Client id for progress polling"
// @Success 200 {object} uploadResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/uploads [post]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processUploadRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "upload.delivery.http.Upload: processUploadRequest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	output, err := h.uc.Upload(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "upload.delivery.http.Upload: usecase Upload failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newUploadResp(output))
}

// GetProgress - Simulated progress of an upload
// @Summary Upload progress
// @Tags Upload
// @Produce json
// @Param upload_id path string true "Upload id"
// @Success 200 {object} progressResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/uploads/{upload_id}/progress [get]
func (h *handler) GetProgress(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.uc.GetProgress(ctx, c.Param("upload_id"))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newProgressResp(p))
}

// ListStoredFiles - Files the analysis service already holds, per source
// @Summary List stored files
// @Tags Upload
// @Produce json
// @Success 200 {object} storedFilesResp
// @Failure 502 {object} response.Resp
// @Router /api/v1/uploads/stored [get]
func (h *handler) ListStoredFiles(c *gin.Context) {
	ctx := c.Request.Context()

	files, err := h.uc.ListStoredFiles(ctx)
	if err != nil {
		h.l.Errorf(ctx, "upload.delivery.http.ListStoredFiles: usecase ListStoredFiles failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newStoredFilesResp(files))
}

// LoadStoredFile - Make a stored file the session's file for its source
// @Summary Select stored file
// @Tags Upload
// @Accept json
// @Produce json
// @Param body body selectStoredReq true "Source and file id"
// @Success 200 {object} selectStoredResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/uploads/stored/select [post]
func (h *handler) LoadStoredFile(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processSelectStoredRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "upload.delivery.http.LoadStoredFile: processSelectStoredRequest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	state, err := h.uc.LoadStoredFile(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "upload.delivery.http.LoadStoredFile: usecase LoadStoredFile failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSelectStoredResp(state))
}

// ListHistory - Upload ledger, newest first
// @Summary Upload history
// @Tags Upload
// @Produce json
// @Param page query int false "Page (1-indexed)"
// @Param limit query int false "Page size"
// @Param source query string false "myAffiliate or dynamicWorks"
// @Param mine query bool false "Only uploads from this session"
// @Success 200 {object} historyResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/uploads/history [get]
func (h *handler) ListHistory(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processHistoryRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	records, pag, err := h.uc.ListHistory(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "upload.delivery.http.ListHistory: usecase ListHistory failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	h.l.Debugf(ctx, "upload.delivery.http.ListHistory: session %s read %d records", scope.GetScopeFromContext(ctx).SessionID, len(records))
	response.OK(c, h.newHistoryResp(records, pag))
}
