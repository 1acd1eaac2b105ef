package http

import (
	"partner-dashboard-srv/internal/middleware"
	"partner-dashboard-srv/internal/partner"
	"partner-dashboard-srv/pkg/discord"
	"partner-dashboard-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - partner performance HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      partner.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc partner.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
