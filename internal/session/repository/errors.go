package repository

import "errors"

var (
	ErrFailedToGet     = errors.New("failed to get")
	ErrFailedToSet     = errors.New("failed to set")
	ErrFailedToDelete  = errors.New("failed to delete")
	ErrFailedToPublish = errors.New("failed to publish")
)
