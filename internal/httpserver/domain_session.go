package httpserver

import (
	"context"
	"time"

	"partner-dashboard-srv/config"
	"partner-dashboard-srv/internal/middleware"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/session"
	sessionHTTP "partner-dashboard-srv/internal/session/delivery/http"
	"partner-dashboard-srv/internal/session/repository"
	sessionMemory "partner-dashboard-srv/internal/session/repository/memory"
	sessionRedis "partner-dashboard-srv/internal/session/repository/redis"
	sessionUsecase "partner-dashboard-srv/internal/session/usecase"
	"partner-dashboard-srv/pkg/generation"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupSessionDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) (session.UseCase, error) {
	var repo repository.StateRepository
	switch srv.config.Session.Backend {
	case config.SessionBackendMemory:
		repo = sessionMemory.New()
		srv.addSweeper("session", repo)
	default:
		repo = sessionRedis.New(srv.redisClient, srv.l)
	}

	ttl := time.Duration(srv.config.Session.TTL) * time.Second
	uc := &forgetOnClear{
		UseCase: sessionUsecase.New(repo, srv.encrypter, ttl, srv.l),
		tracker: srv.tracker,
	}

	handler := sessionHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Session domain registered (backend: %s)", srv.config.Session.Backend)
	return uc, nil
}

// forgetOnClear drops the session's in-flight page generations when its state is cleared.
type forgetOnClear struct {
	session.UseCase
	tracker generation.ITracker
}

func (f *forgetOnClear) Clear(ctx context.Context, sc model.Scope) error {
	if err := f.UseCase.Clear(ctx, sc); err != nil {
		return err
	}
	f.tracker.Forget(generation.Key(sc.SessionID, ""))
	return nil
}
