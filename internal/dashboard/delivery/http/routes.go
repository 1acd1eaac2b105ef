package http

import (
	"partner-dashboard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/dashboard")
	api.Use(mw.Session())
	{
		api.GET("", h.GetDashboard)
		api.POST("/top-partner", h.GetTopPartner)
		api.GET("/team-regions", h.GetTeamRegions)
	}
}
