package http

import (
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/overall"
	pkgErrors "partner-dashboard-srv/pkg/errors"
	"partner-dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processOverviewRequest(c *gin.Context) (overall.OverviewInput, model.Scope, error) {
	var req overviewReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return overall.OverviewInput{}, model.Scope{}, pkgErrors.NewValidationError("source")
	}
	src, err := model.ParseDataSource(req.Source)
	if err != nil {
		return overall.OverviewInput{}, model.Scope{}, err
	}
	return overall.OverviewInput{Source: src}, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processCompareRequest(c *gin.Context) (overall.CompareInput, model.Scope, error) {
	var req compareReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return overall.CompareInput{}, model.Scope{}, pkgErrors.NewValidationError("metricsToCompare", "timeframe")
		}
	}
	return req.toInput(), scope.GetScopeFromContext(c.Request.Context()), nil
}
