package http

import (
	"partner-dashboard-srv/internal/assistant"
	"partner-dashboard-srv/internal/model"
	pkgErrors "partner-dashboard-srv/pkg/errors"
	"partner-dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGetRequest(c *gin.Context) (assistant.GetInput, model.Scope, error) {
	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return assistant.GetInput{}, model.Scope{}, pkgErrors.NewValidationError("source")
	}
	src, err := model.ParseDataSource(req.Source)
	if err != nil {
		return assistant.GetInput{}, model.Scope{}, err
	}
	return assistant.GetInput{Source: src}, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processSendRequest(c *gin.Context) (assistant.SendInput, model.Scope, error) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return assistant.SendInput{}, model.Scope{}, pkgErrors.NewValidationError("text")
	}
	src, err := model.ParseDataSource(req.Source)
	if err != nil {
		return assistant.SendInput{}, model.Scope{}, err
	}
	return assistant.SendInput{Source: src, Query: req.Text}, scope.GetScopeFromContext(c.Request.Context()), nil
}
