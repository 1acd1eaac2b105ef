package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 2 * time.Minute
	// shutdownTimeout leaves room for an in-flight assistant answer to be saved.
	shutdownTimeout = 30 * time.Second
)

// Run serves until ctx is done, then drains open requests.
// Write timeouts stay unset because the session event stream is long-lived.
func (srv *HTTPServer) Run(ctx context.Context) error {
	if err := srv.mapHandlers(); err != nil {
		return fmt.Errorf("failed to map handlers: %w", err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
	server.RegisterOnShutdown(srv.beginShutdown)

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go srv.sweepLoop(sweepCtx, sweepInterval)

	serveErr := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "%s listening on %s (%s)", ServiceName, server.Addr, srv.environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", server.Addr, err)
		}
		return nil
	case <-ctx.Done():
		srv.l.Infof(ctx, "Shutting down %s", ServiceName)
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	srv.l.Info(shutdownCtx, "API server stopped")
	return nil
}
