package minio

import (
	"context"
	"io"
	"sync"
	"time"

	"partner-dashboard-srv/config"

	"github.com/minio/minio-go/v7"
)

// implMinIO implements MinIO.
type implMinIO struct {
	client    *minio.Client
	config    *config.MinIOConfig
	mu        sync.RWMutex
	connected bool
	queue     *archiveQueue
}

// UploadRequest describes one object to store.
type UploadRequest struct {
	BucketName   string
	ObjectName   string
	OriginalName string
	Reader       io.Reader
	Size         int64
	ContentType  string
	Metadata     map[string]string
}

// FileInfo describes a stored object.
type FileInfo struct {
	BucketName string
	ObjectName string
	Size       int64
	ETag       string
}

// TaskStatus is the lifecycle of a queued archive task.
type TaskStatus string

const (
	TaskQueued  TaskStatus = "queued"
	TaskRunning TaskStatus = "running"
	TaskDone    TaskStatus = "done"
	TaskFailed  TaskStatus = "failed"
)

func (s TaskStatus) Finished() bool {
	return s == TaskDone || s == TaskFailed
}

// TaskState is a snapshot of an archive task.
type TaskState struct {
	TaskID    string
	Object    string
	Status    TaskStatus
	Info      *FileInfo
	Err       error
	UpdatedAt time.Time
}

type putFunc func(ctx context.Context, req *UploadRequest) (*FileInfo, error)

type archiveTask struct {
	id  string
	ctx context.Context
	req *UploadRequest
}
