package http

import (
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/partner"
	pkgErrors "partner-dashboard-srv/pkg/errors"
	"partner-dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (partner.ListInput, model.Scope, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return partner.ListInput{}, model.Scope{}, pkgErrors.NewValidationError("source", "tab", "preset", "startDate", "endDate")
	}
	input, err := req.toInput()
	if err != nil {
		return partner.ListInput{}, model.Scope{}, err
	}
	return input, scope.GetScopeFromContext(c.Request.Context()), nil
}
