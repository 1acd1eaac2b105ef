package minio

import "time"

// HTTP transport for the MinIO client
const (
	maxIdleConns        = 32
	maxIdleConnsPerHost = 32
	idleConnTimeout     = 90 * time.Second
)

const (
	DefaultArchiveWorkers   = 2
	DefaultArchiveQueueSize = 50
	DefaultEndpointPort     = ":9000"

	// MaxObjectSize caps a single archived object.
	MaxObjectSize = 512 << 20

	taskRetention     = time.Hour
	taskSweepInterval = 5 * time.Minute
	waitPollInterval  = 50 * time.Millisecond
)

// MetaOriginalName is the user metadata key holding the uploaded file name.
const MetaOriginalName = "original-name"
