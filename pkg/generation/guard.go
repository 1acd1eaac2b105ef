package generation

import "context"

// Guard runs fn under a new generation of key. If a newer generation for the
// same key starts before fn returns, fn's context is cancelled and Guard
// returns ErrSuperseded whatever fn produced.
func Guard[T any](ctx context.Context, t ITracker, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	gctx, tk := t.Begin(ctx, key)
	defer tk.Done()

	v, err := fn(gctx)
	if cerr := tk.Check(); cerr != nil {
		var zero T
		return zero, cerr
	}
	return v, err
}
