package usecase

import (
	"time"

	"partner-dashboard-srv/internal/chart"
	"partner-dashboard-srv/internal/dashboard"
	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/generation"
	"partner-dashboard-srv/pkg/log"
)

const defaultTopPartnerMonth = 4

type implUseCase struct {
	l            log.Logger
	sessions     datasource.StateReader
	api          analysisapi.IAnalysis
	tracker      generation.ITracker
	window       chart.Window
	defaultMonth int
	now          func() time.Time
}

// New - Factory function. defaultMonth is the top-partner month used when none is given.
func New(
	l log.Logger,
	sessions datasource.StateReader,
	api analysisapi.IAnalysis,
	tracker generation.ITracker,
	window chart.Window,
	defaultMonth int,
) dashboard.UseCase {
	if defaultMonth < 1 || defaultMonth > 12 {
		defaultMonth = defaultTopPartnerMonth
	}
	return &implUseCase{
		l:            l,
		sessions:     sessions,
		api:          api,
		tracker:      tracker,
		window:       window,
		defaultMonth: defaultMonth,
		now:          time.Now,
	}
}
