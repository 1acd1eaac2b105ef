package http

import (
	"partner-dashboard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Analyze - Countries ranked by in-window revenue, with one country charted
// @Summary Country analysis
// @Tags Country
// @Produce json
// @Param source query string false "Data source" Enums(myAffiliate, dynamicWorks, combined)
// @Param search query string false "Case-insensitive filter over the country list"
// @Param country query string false "Country to chart; defaults to the first country by name"
// @Success 200 {object} analyzeResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/countries [get]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processAnalyzeRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	o, err := h.uc.Analyze(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "country.delivery.http.Analyze: usecase Analyze failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newAnalyzeResp(o))
}
