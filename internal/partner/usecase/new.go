package usecase

import (
	"time"

	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/partner"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/generation"
	"partner-dashboard-srv/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	sessions datasource.StateReader
	api      analysisapi.IAnalysis
	tracker  generation.ITracker
	now      func() time.Time
}

// New - Factory function
func New(
	l log.Logger,
	sessions datasource.StateReader,
	api analysisapi.IAnalysis,
	tracker generation.ITracker,
) partner.UseCase {
	return &implUseCase{
		l:        l,
		sessions: sessions,
		api:      api,
		tracker:  tracker,
		now:      time.Now,
	}
}
