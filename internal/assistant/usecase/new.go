package usecase

import (
	"time"

	"partner-dashboard-srv/internal/assistant"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/log"
)

const defaultWidgetTTL = 8 * time.Hour

type implUseCase struct {
	l        log.Logger
	sessions assistant.SessionService
	api      analysisapi.IAnalysis
	locks    *sessionLocks
	widget   *widgetStore
	now      func() time.Time
}

// New - Factory function. widgetTTL bounds how long an idle widget transcript is kept in memory.
func New(
	l log.Logger,
	sessions assistant.SessionService,
	api analysisapi.IAnalysis,
	widgetTTL time.Duration,
) assistant.UseCase {
	if widgetTTL <= 0 {
		widgetTTL = defaultWidgetTTL
	}
	uc := &implUseCase{
		l:        l,
		sessions: sessions,
		api:      api,
		locks:    newSessionLocks(),
		now:      time.Now,
	}
	uc.widget = newWidgetStore(widgetTTL, func() time.Time { return uc.now() })
	return uc
}
