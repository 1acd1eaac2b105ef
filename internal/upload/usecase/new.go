package usecase

import (
	"time"

	"partner-dashboard-srv/internal/session"
	"partner-dashboard-srv/internal/upload"
	"partner-dashboard-srv/internal/upload/repository"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/log"
	"partner-dashboard-srv/pkg/minio"
)

const (
	defaultProgressInterval = 500 * time.Millisecond
	defaultProgressStep     = 10
	progressCeiling         = 90
	progressRetention       = 10 * time.Minute
)

// Config wires the upload usecase. History, Storage and Publisher are optional;
// when nil the matching side effect is skipped.
type Config struct {
	Logger       log.Logger
	Analysis     analysisapi.IAnalysis
	Session      session.UseCase
	History      repository.HistoryRepository
	Storage      minio.MinIO
	Bucket       string
	Publisher    upload.Publisher
	MaxSizeBytes int64

	ProgressInterval time.Duration
	ProgressStep     int
}

type implUseCase struct {
	l         log.Logger
	api       analysisapi.IAnalysis
	session   session.UseCase
	history   repository.HistoryRepository
	storage   minio.MinIO
	bucket    string
	publisher upload.Publisher
	maxSize   int64
	progress  *progressTracker
	now       func() time.Time
}

func New(cfg Config) upload.UseCase {
	interval := cfg.ProgressInterval
	if interval <= 0 {
		interval = defaultProgressInterval
	}
	step := cfg.ProgressStep
	if step <= 0 {
		step = defaultProgressStep
	}
	return &implUseCase{
		l:         cfg.Logger,
		api:       cfg.Analysis,
		session:   cfg.Session,
		history:   cfg.History,
		storage:   cfg.Storage,
		bucket:    cfg.Bucket,
		publisher: cfg.Publisher,
		maxSize:   cfg.MaxSizeBytes,
		progress:  newProgressTracker(interval, step),
		now:       time.Now,
	}
}
