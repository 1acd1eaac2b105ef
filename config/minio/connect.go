package minio

import (
	"context"
	"fmt"
	"time"

	"partner-dashboard-srv/config"
	"partner-dashboard-srv/pkg/minio"
)

const connectTimeout = 10 * time.Second

// Connect builds the archive client, verifies the credentials and makes sure the bucket exists.
func Connect(ctx context.Context, cfg *config.MinIOConfig) (minio.MinIO, error) {
	client, err := minio.NewMinIO(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Connect(connectCtx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	if err := client.EnsureBucket(connectCtx, cfg.Bucket); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ensure bucket %s: %w", cfg.Bucket, err)
	}
	return client, nil
}
