package http

import (
	"partner-dashboard-srv/internal/country"
	"partner-dashboard-srv/internal/model"
	pkgErrors "partner-dashboard-srv/pkg/errors"
	"partner-dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processAnalyzeRequest(c *gin.Context) (country.AnalyzeInput, model.Scope, error) {
	var req analyzeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return country.AnalyzeInput{}, model.Scope{}, pkgErrors.NewValidationError("source", "search", "country")
	}
	input, err := req.toInput()
	if err != nil {
		return country.AnalyzeInput{}, model.Scope{}, err
	}
	return input, scope.GetScopeFromContext(c.Request.Context()), nil
}
