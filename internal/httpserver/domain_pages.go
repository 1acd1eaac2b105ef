package httpserver

import (
	"context"

	countryHTTP "partner-dashboard-srv/internal/country/delivery/http"
	countryUsecase "partner-dashboard-srv/internal/country/usecase"
	dashboardHTTP "partner-dashboard-srv/internal/dashboard/delivery/http"
	dashboardUsecase "partner-dashboard-srv/internal/dashboard/usecase"
	"partner-dashboard-srv/internal/middleware"
	overallHTTP "partner-dashboard-srv/internal/overall/delivery/http"
	overallUsecase "partner-dashboard-srv/internal/overall/usecase"
	partnerHTTP "partner-dashboard-srv/internal/partner/delivery/http"
	partnerUsecase "partner-dashboard-srv/internal/partner/usecase"
	"partner-dashboard-srv/internal/session"

	"github.com/gin-gonic/gin"
)

// setupPageDomains registers the read-only reporting pages. They share the
// session service, the analysis client and the generation tracker.
func (srv *HTTPServer) setupPageDomains(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware, sessionUC session.UseCase) {
	dashboardUC := dashboardUsecase.New(srv.l, sessionUC, srv.analysis, srv.tracker, srv.window, srv.config.Reporting.DefaultTopPartnerMonth)
	dashboardHTTP.New(srv.l, dashboardUC, srv.discord).RegisterRoutes(r, mw)

	countryUC := countryUsecase.New(srv.l, sessionUC, srv.analysis, srv.tracker, srv.window)
	countryHTTP.New(srv.l, countryUC, srv.discord).RegisterRoutes(r, mw)

	partnerUC := partnerUsecase.New(srv.l, sessionUC, srv.analysis, srv.tracker)
	partnerHTTP.New(srv.l, partnerUC, srv.discord).RegisterRoutes(r, mw)

	overallUC := overallUsecase.New(srv.l, sessionUC, srv.analysis, srv.tracker, srv.window)
	overallHTTP.New(srv.l, overallUC, srv.discord).RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Page domains registered (window %s..%s)", srv.window.Start, srv.window.End)
}
