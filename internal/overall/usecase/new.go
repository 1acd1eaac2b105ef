package usecase

import (
	"partner-dashboard-srv/internal/chart"
	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/overall"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/generation"
	"partner-dashboard-srv/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	sessions datasource.StateReader
	api      analysisapi.IAnalysis
	tracker  generation.ITracker
	window   chart.Window
}

// New - Factory function
func New(
	l log.Logger,
	sessions datasource.StateReader,
	api analysisapi.IAnalysis,
	tracker generation.ITracker,
	window chart.Window,
) overall.UseCase {
	return &implUseCase{
		l:        l,
		sessions: sessions,
		api:      api,
		tracker:  tracker,
		window:   window,
	}
}
