package repository

import "errors"

var (
	ErrFailedToMigrate = errors.New("failed to migrate upload history schema")
	ErrFailedToInsert  = errors.New("failed to insert upload record")
	ErrFailedToList    = errors.New("failed to list upload records")
	ErrFailedToCount   = errors.New("failed to count upload records")
)
