package redis

import (
	"partner-dashboard-srv/internal/session/repository"
	"partner-dashboard-srv/pkg/log"
	pkgRedis "partner-dashboard-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory function
func New(redis pkgRedis.IRedis, l log.Logger) repository.StateRepository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
