package http

import (
	"partner-dashboard-srv/internal/dashboard"
	"partner-dashboard-srv/internal/model"
	pkgErrors "partner-dashboard-srv/pkg/errors"
	"partner-dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSourceRequest(c *gin.Context) (model.DataSource, model.Scope, error) {
	var req sourceReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return model.SourceNone, model.Scope{}, pkgErrors.NewValidationError("source")
	}
	src, err := model.ParseDataSource(req.Source)
	if err != nil {
		return model.SourceNone, model.Scope{}, err
	}
	return src, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processTopPartnerRequest(c *gin.Context) (dashboard.TopPartnerInput, model.Scope, error) {
	var req topPartnerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return dashboard.TopPartnerInput{}, model.Scope{}, pkgErrors.NewValidationError("metric", "year", "month")
	}
	src, err := model.ParseDataSource(req.Source)
	if err != nil {
		return dashboard.TopPartnerInput{}, model.Scope{}, err
	}
	return dashboard.TopPartnerInput{
		Source: src,
		Metric: req.Metric,
		Year:   req.Year,
		Month:  req.Month,
	}, scope.GetScopeFromContext(c.Request.Context()), nil
}
