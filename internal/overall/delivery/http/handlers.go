package http

import (
	"partner-dashboard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetOverview - Stacked dual-source overview, or one source's metrics
// @Summary Overall performance
// @Description With both sources uploaded and no single source requested, active clients and users are stacked per source. Otherwise one source is charted alone.
// @Tags Overall
// @Produce json
// @Param source query string false "Data source" Enums(myAffiliate, dynamicWorks, combined)
// @Success 200 {object} overviewResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/overall [get]
func (h *handler) GetOverview(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processOverviewRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	o, err := h.uc.GetOverview(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "overall.delivery.http.GetOverview: usecase GetOverview failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newOverviewResp(o))
}

// Compare - Grouped bars comparing both sources per metric
// @Summary Compare data sources
// @Tags Overall
// @Accept json
// @Produce json
// @Param body body compareReq false "Metrics and timeframe; defaults apply when omitted"
// @Success 200 {object} compareResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/overall/comparison [post]
func (h *handler) Compare(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processCompareRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "overall.delivery.http.Compare: processCompareRequest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	o, err := h.uc.Compare(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "overall.delivery.http.Compare: usecase Compare failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newCompareResp(o))
}
