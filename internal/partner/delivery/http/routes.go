package http

import (
	"partner-dashboard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/partners")
	api.Use(mw.Session())
	{
		api.GET("", h.List)
	}
}
