package httpserver

import (
	"context"
	"time"

	assistantHTTP "partner-dashboard-srv/internal/assistant/delivery/http"
	assistantUsecase "partner-dashboard-srv/internal/assistant/usecase"
	"partner-dashboard-srv/internal/middleware"
	"partner-dashboard-srv/internal/session"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupAssistantDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware, sessionUC session.UseCase) {
	widgetTTL := time.Duration(srv.config.Session.TTL) * time.Second
	uc := assistantUsecase.New(srv.l, sessionUC, srv.analysis, widgetTTL)
	srv.addSweeper("widget transcript", uc)

	handler := assistantHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Assistant domain registered")
}
