package minio

import (
	"context"
	"errors"
	"time"

	"github.com/minio/minio-go/v7"
)

func (m *implMinIO) Connect(ctx context.Context) error {
	if _, err := m.client.ListBuckets(ctx); err != nil {
		return mapErr("connect", err)
	}
	m.mu.Lock()
	m.connected = true
	m.mu.Unlock()
	return nil
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	connected := m.connected
	m.mu.RUnlock()
	if !connected {
		return ErrNotConnected
	}
	if _, err := m.client.BucketExists(ctx, m.config.Bucket); err != nil {
		return mapErr("health check", err)
	}
	return nil
}

// Close drains queued archive tasks before returning.
func (m *implMinIO) Close() error {
	m.queue.close()
	m.mu.Lock()
	m.connected = false
	m.mu.Unlock()
	return nil
}

func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	if err := validateBucketName(bucketName); err != nil {
		return err
	}
	exists, err := m.client.BucketExists(ctx, bucketName)
	if err != nil {
		return mapErr("bucket exists", err)
	}
	if exists {
		return nil
	}
	err = m.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region})
	if err != nil && !isCode(err, "BucketAlreadyOwnedByYou") {
		return mapErr("make bucket", err)
	}
	return nil
}

func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if err := validateUploadRequest(req); err != nil {
		return nil, err
	}

	meta := make(map[string]string, len(req.Metadata)+1)
	for k, v := range req.Metadata {
		meta[k] = v
	}
	if req.OriginalName != "" {
		meta[MetaOriginalName] = req.OriginalName
	}

	info, err := m.client.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, minio.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: meta,
	})
	if err != nil {
		return nil, mapErr("put object", err)
	}
	return &FileInfo{
		BucketName: info.Bucket,
		ObjectName: info.Key,
		Size:       info.Size,
		ETag:       info.ETag,
	}, nil
}

func (m *implMinIO) UploadAsync(ctx context.Context, req *UploadRequest) (string, error) {
	if err := validateUploadRequest(req); err != nil {
		return "", err
	}
	return m.queue.enqueue(ctx, req)
}

func (m *implMinIO) GetUploadStatus(taskID string) (TaskState, error) {
	return m.queue.state(taskID)
}

func (m *implMinIO) WaitForUpload(taskID string, timeout time.Duration) (TaskState, error) {
	return m.queue.wait(taskID, timeout)
}

func mapErr(op string, err error) error {
	switch {
	case isCode(err, "AccessDenied"):
		err = errors.Join(ErrAccessDenied, err)
	case isCode(err, "NoSuchBucket"):
		err = errors.Join(ErrNoSuchBucket, err)
	}
	return &StorageError{Op: op, Err: err}
}

func isCode(err error, code string) bool {
	return minio.ToErrorResponse(err).Code == code
}
