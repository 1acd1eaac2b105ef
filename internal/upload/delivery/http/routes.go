package http

import (
	"partner-dashboard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/uploads")
	api.Use(mw.Session())
	{
		api.POST("", h.Upload)
		api.GET("/:upload_id/progress", h.GetProgress)
		api.GET("/stored", h.ListStoredFiles)
		api.POST("/stored/select", h.LoadStoredFile)
		api.GET("/history", h.ListHistory)
	}
}
