package http

import (
	"partner-dashboard-srv/internal/middleware"
	"partner-dashboard-srv/internal/upload"
	"partner-dashboard-srv/pkg/discord"
	"partner-dashboard-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - upload HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l        log.Logger
	uc       upload.UseCase
	discord  discord.IDiscord
	maxBytes int64
}

// New - Factory. maxBytes caps each uploaded file; 0 disables the check here.
func New(l log.Logger, uc upload.UseCase, discord discord.IDiscord, maxBytes int64) Handler {
	return &handler{l: l, uc: uc, discord: discord, maxBytes: maxBytes}
}
