package usecase

import (
	"time"

	"partner-dashboard-srv/internal/session"
	"partner-dashboard-srv/internal/session/repository"
	"partner-dashboard-srv/pkg/encrypter"
	"partner-dashboard-srv/pkg/log"
)

type implUseCase struct {
	repo repository.StateRepository
	enc  encrypter.Encrypter
	ttl  time.Duration
	l    log.Logger
	now  func() time.Time
}

// New - Factory function. enc may be nil, in which case the transcript is stored as plain JSON.
func New(
	repo repository.StateRepository,
	enc encrypter.Encrypter,
	ttl time.Duration,
	l log.Logger,
) session.UseCase {
	return &implUseCase{
		repo: repo,
		enc:  enc,
		ttl:  ttl,
		l:    l,
		now:  time.Now,
	}
}
