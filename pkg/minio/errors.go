package minio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("minio: invalid input")
	ErrQueueFull    = errors.New("minio: archive queue is full")
	ErrClosed       = errors.New("minio: archive queue is closed")
	ErrTaskNotFound = errors.New("minio: archive task not found")
	ErrWaitTimeout  = errors.New("minio: timeout waiting for archive task")
	ErrNotConnected = errors.New("minio: not connected")
	ErrAccessDenied = errors.New("minio: access denied")
	ErrNoSuchBucket = errors.New("minio: bucket not found")
)

// StorageError wraps a failed call to the object store with the operation name.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("minio %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
