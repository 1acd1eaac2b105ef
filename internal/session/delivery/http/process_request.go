package http

import (
	"errors"

	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

var errUnknownPage = errors.New("session.delivery.http: unknown page")

var knownPages = map[datasource.Page]struct{}{
	datasource.PageDashboard: {},
	datasource.PageCountry:   {},
	datasource.PagePartner:   {},
	datasource.PageOverall:   {},
	datasource.PageAssistant: {},
	datasource.PageWidget:    {},
}

func (h *handler) processGetRequest(c *gin.Context) (getReq, model.Scope, error) {
	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, err
	}
	if req.Page == "" {
		req.Page = string(datasource.PageDashboard)
	}
	if _, ok := knownPages[datasource.Page(req.Page)]; !ok {
		return req, model.Scope{}, errUnknownPage
	}
	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}
