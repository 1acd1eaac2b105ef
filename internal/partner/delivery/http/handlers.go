package http

import (
	"partner-dashboard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// List - One tab of partner performance for a date range
// @Summary Partner performance
// @Tags Partner
// @Produce json
// @Param source query string false "Data source" Enums(myAffiliate, dynamicWorks, combined)
// @Param tab query string false "Partner list" Enums(positive, top, underperforming)
// @Param preset query string false "all or a month such as oct-2024"
// @Param startDate query string false "YYYY-MM-DD; overrides preset"
// @Param endDate query string false "YYYY-MM-DD; overrides preset"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/partners [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "partner.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}
