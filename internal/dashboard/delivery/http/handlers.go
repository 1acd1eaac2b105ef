package http

import (
	"partner-dashboard-srv/internal/dashboard"
	"partner-dashboard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetDashboard - KPI cards, monthly table and charts for the resolved source
// @Summary Get dashboard
// @Tags Dashboard
// @Produce json
// @Param source query string false "Data source" Enums(myAffiliate, dynamicWorks, combined)
// @Success 200 {object} dashboardResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/dashboard [get]
func (h *handler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	src, sc, err := h.processSourceRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	o, err := h.uc.GetDashboard(ctx, sc, dashboard.GetDashboardInput{Source: src})
	if err != nil {
		h.l.Warnf(ctx, "dashboard.delivery.http.GetDashboard: usecase GetDashboard failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDashboardResp(o))
}

// GetTopPartner - Best partner for a metric in one month
// @Summary Get top partner
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param body body topPartnerReq true "Metric, year and month; zero values use the defaults"
// @Success 200 {object} topPartnerResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/dashboard/top-partner [post]
func (h *handler) GetTopPartner(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processTopPartnerRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "dashboard.delivery.http.GetTopPartner: processTopPartnerRequest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	tp, err := h.uc.GetTopPartner(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "dashboard.delivery.http.GetTopPartner: usecase GetTopPartner failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTopPartnerResp(tp))
}

// GetTeamRegions - Regions present in the resolved file
// @Summary Get team regions
// @Tags Dashboard
// @Produce json
// @Param source query string false "Data source" Enums(myAffiliate, dynamicWorks, combined)
// @Success 200 {object} teamRegionsResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/dashboard/team-regions [get]
func (h *handler) GetTeamRegions(c *gin.Context) {
	ctx := c.Request.Context()

	src, sc, err := h.processSourceRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	regions, err := h.uc.GetTeamRegions(ctx, sc, dashboard.TeamRegionsInput{Source: src})
	if err != nil {
		h.l.Warnf(ctx, "dashboard.delivery.http.GetTeamRegions: usecase GetTeamRegions failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	if regions == nil {
		regions = []string{}
	}
	response.OK(c, teamRegionsResp{Regions: regions})
}
