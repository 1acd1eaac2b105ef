package minio

import (
	"context"
	"net/http"
	"time"

	"partner-dashboard-srv/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO archives uploaded spreadsheets in an S3 compatible bucket.
type MinIO interface {
	Connect(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Close() error

	EnsureBucket(ctx context.Context, bucketName string) error
	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)

	// UploadAsync queues req and returns a task id. Reader must stay readable until the task finishes.
	UploadAsync(ctx context.Context, req *UploadRequest) (string, error)
	GetUploadStatus(taskID string) (TaskState, error)
	WaitForUpload(taskID string, timeout time.Duration) (TaskState, error)
}

// NewMinIO builds the client and starts the archive workers. It does not dial the server.
func NewMinIO(cfg *config.MinIOConfig) (MinIO, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
		Transport: &http.Transport{
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: maxIdleConnsPerHost,
			IdleConnTimeout:     idleConnTimeout,
		},
	})
	if err != nil {
		return nil, &StorageError{Op: "new client", Err: err}
	}

	impl := &implMinIO{client: client, config: cfg}
	impl.queue = newArchiveQueue(impl.UploadFile, cfg.AsyncUploadWorkers, cfg.AsyncUploadQueueSize)
	return impl, nil
}
