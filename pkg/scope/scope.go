package scope

import (
	"context"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/pkg/log"
)

type scopeCtxKey struct{}

// SetScopeToContext stores the session scope and tags the logger's session_id.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	ctx = context.WithValue(ctx, scopeCtxKey{}, sc)
	return context.WithValue(ctx, log.SessionIDKey, sc.SessionID)
}

// GetScopeFromContext returns the scope set by the session middleware, or the zero scope.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, _ := ctx.Value(scopeCtxKey{}).(model.Scope)
	return sc
}
