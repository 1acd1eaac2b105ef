package generation

import "errors"

// ErrSuperseded is returned when a newer generation replaced the caller's.
var ErrSuperseded = errors.New("generation: superseded by a newer request")
