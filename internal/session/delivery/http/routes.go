package http

import (
	"partner-dashboard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Session())
	{
		api.GET("/session", h.Get)
		api.DELETE("/session", h.Clear)
		api.GET("/session/events", h.Events)
	}
}
