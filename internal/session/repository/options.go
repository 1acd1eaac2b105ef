package repository

import "time"

type SetFieldsOptions struct {
	SessionID string
	Fields    map[string]string
	TTL       time.Duration
}

type PublishOptions struct {
	SessionID string
	Payload   []byte
}
