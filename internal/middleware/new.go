package middleware

import (
	"partner-dashboard-srv/config"
	"partner-dashboard-srv/pkg/jwt"
	"partner-dashboard-srv/pkg/log"
)

type Middleware struct {
	l          log.Logger
	jwtManager jwt.IManager
	sessionCfg config.SessionConfig
	corsCfg    config.CORSConfig
	newID      func() string
}

func New(l log.Logger, jwtManager jwt.IManager, sessionCfg config.SessionConfig, corsCfg config.CORSConfig) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		sessionCfg: sessionCfg,
		corsCfg:    corsCfg,
		newID:      newSessionID,
	}
}
