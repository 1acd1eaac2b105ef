package dashboard

import "errors"

var (
	ErrInvalidMetric = errors.New("dashboard: unknown metric")
	ErrInvalidMonth  = errors.New("dashboard: month must be between 1 and 12")
	ErrInvalidYear   = errors.New("dashboard: invalid year")
)
