package httpserver

import (
	"context"
	"time"
)

const sweepInterval = 5 * time.Minute

// sweeper is implemented by process-local stores that expire entries.
type sweeper interface {
	Sweep() int
}

type namedSweeper struct {
	name string
	s    sweeper
}

// addSweeper registers v when it holds expiring in-memory state.
func (srv *HTTPServer) addSweeper(name string, v any) {
	if s, ok := v.(sweeper); ok {
		srv.sweepers = append(srv.sweepers, namedSweeper{name: name, s: s})
	}
}

func (srv *HTTPServer) sweepLoop(ctx context.Context, interval time.Duration) {
	if len(srv.sweepers) == 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			srv.sweepOnce(ctx)
		}
	}
}

func (srv *HTTPServer) sweepOnce(ctx context.Context) {
	for _, ns := range srv.sweepers {
		if n := ns.s.Sweep(); n > 0 {
			srv.l.Debugf(ctx, "httpserver.sweep: dropped %d expired %s entries", n, ns.name)
		}
	}
}
