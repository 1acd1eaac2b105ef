package datasource

import (
	"context"

	"partner-dashboard-srv/internal/model"
)

// StateReader is the part of the session service a page needs.
type StateReader interface {
	Get(ctx context.Context, sc model.Scope) (model.SessionState, error)
}

// Load reads the session and resolves the source for page. It returns
// ErrNoFile when nothing can be queried, so callers never reach the backend
// without a file id.
func Load(ctx context.Context, sessions StateReader, sc model.Scope, requested model.DataSource, page Page) (model.SessionState, Resolution, error) {
	state, err := sessions.Get(ctx, sc)
	if err != nil {
		return model.SessionState{}, Resolution{}, err
	}

	res, err := Select(state, requested, page)
	if err != nil {
		return state, Resolution{}, err
	}
	if !res.HasFile() {
		return state, res, ErrNoFile
	}
	return state, res, nil
}
