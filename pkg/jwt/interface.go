package jwt

import "time"

// Config configures the session token signer. Issuer and TTL have defaults.
type Config struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

// IManager signs and verifies session tokens.
// Implementations are safe for concurrent use.
type IManager interface {
	CreateSessionToken(sessionID string) (string, error)
	VerifySessionToken(token string) (string, error)
}

// New creates a new JWT manager. Returns the interface.
func New(cfg Config) (IManager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, ErrSecretTooShort
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultIssuer
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		ttl:       cfg.TTL,
		now:       time.Now,
	}, nil
}
