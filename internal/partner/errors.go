package partner

import "errors"

var (
	ErrInvalidTab       = errors.New("partner: tab must be positive, top or underperforming")
	ErrInvalidPreset    = errors.New("partner: unknown date preset")
	ErrInvalidDate      = errors.New("partner: dates must be YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("partner: start date is after end date")
)
