package http

import (
	"partner-dashboard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Session())
	{
		api.GET("/assistant", h.Get)
		api.POST("/assistant/messages", h.Send)
		api.DELETE("/assistant/messages", h.Clear)

		api.GET("/widget/messages", h.GetWidget)
		api.POST("/widget/messages", h.SendWidget)
	}
}
