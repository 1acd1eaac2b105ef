package jwt

import (
	"errors"
	"time"
)

const (
	// MinSecretKeyLen is the minimum length for HS256 secret key.
	MinSecretKeyLen = 32
	// DefaultIssuer is stamped on session tokens.
	DefaultIssuer = "partner-dashboard-srv"
	defaultTTL    = 8 * time.Hour
	clockSkew     = 30 * time.Second
)

var (
	ErrSecretTooShort = errors.New("jwt: secret key must be at least 32 characters long")
	ErrInvalidToken   = errors.New("jwt: invalid token")
	ErrMissingSubject = errors.New("jwt: token has no subject")
)
