package http

import (
	"time"

	"partner-dashboard-srv/internal/middleware"
	"partner-dashboard-srv/internal/session"
	"partner-dashboard-srv/pkg/discord"
	"partner-dashboard-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler serves the session state and its change stream.
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l         log.Logger
	uc        session.UseCase
	discord   discord.IDiscord
	keepAlive time.Duration
}

func New(l log.Logger, uc session.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord, keepAlive: defaultKeepAlive}
}
