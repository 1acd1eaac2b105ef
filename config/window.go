package config

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// validateWindow only checks shape and order; the chart package owns month arithmetic.
func validateWindow(start, end string) error {
	s, err := time.Parse(monthLayout, start)
	if err != nil {
		return fmt.Errorf("reporting.window_start must be YYYY-MM: %w", err)
	}
	e, err := time.Parse(monthLayout, end)
	if err != nil {
		return fmt.Errorf("reporting.window_end must be YYYY-MM: %w", err)
	}
	if s.After(e) {
		return fmt.Errorf("reporting.window_start must not be after reporting.window_end")
	}
	return nil
}
