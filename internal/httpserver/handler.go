package httpserver

import (
	"context"

	"partner-dashboard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.jwtManager, srv.config.Session, srv.config.CORS)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	r := srv.gin.Group("")

	sessionUC, err := srv.setupSessionDomain(ctx, r, mw)
	if err != nil {
		return err
	}
	if err := srv.setupUploadDomain(ctx, r, mw, sessionUC); err != nil {
		return err
	}
	srv.setupPageDomains(ctx, r, mw, sessionUC)
	srv.setupAssistantDomain(ctx, r, mw, sessionUC)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Logger())
	srv.gin.Use(mw.Recovery(srv.discord))
	srv.gin.Use(mw.CORS())
	srv.gin.Use(srv.closeStreamsOnShutdown())

	ctx := context.Background()
	if len(srv.config.CORS.AllowedOrigins) == 0 {
		srv.l.Infof(ctx, "CORS mode: %s (any origin, no credentials)", srv.environment)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (%d allowed origins)", srv.environment, len(srv.config.CORS.AllowedOrigins))
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"), // Use relative path
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// closeStreamsOnShutdown ends event-stream requests once shutdown starts, so Shutdown does not wait on them.
func (srv *HTTPServer) closeStreamsOnShutdown() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Accept") != "text/event-stream" {
			c.Next()
			return
		}
		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()
		stop := context.AfterFunc(srv.shuttingDown, cancel)
		defer stop()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
