package httpserver

import (
	"context"
	"fmt"

	"partner-dashboard-srv/internal/middleware"
	"partner-dashboard-srv/internal/session"
	"partner-dashboard-srv/internal/upload"
	uploadHTTP "partner-dashboard-srv/internal/upload/delivery/http"
	uploadProducer "partner-dashboard-srv/internal/upload/delivery/kafka/producer"
	"partner-dashboard-srv/internal/upload/repository"
	uploadPostgre "partner-dashboard-srv/internal/upload/repository/postgre"
	uploadUsecase "partner-dashboard-srv/internal/upload/usecase"

	"github.com/gin-gonic/gin"
)

const bytesPerMB = 1 << 20

func (srv *HTTPServer) setupUploadDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware, sessionUC session.UseCase) error {
	var history repository.HistoryRepository
	if srv.postgresDB != nil {
		repo := uploadPostgre.New(srv.postgresDB, srv.config.Postgres.Schema, srv.l)
		if err := repo.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to prepare upload history schema: %w", err)
		}
		history = repo
	}

	var publisher upload.Publisher
	if srv.kafkaProducer != nil {
		publisher = uploadProducer.New(srv.l, srv.kafkaProducer)
	}

	maxBytes := srv.config.Upload.MaxSizeMB * bytesPerMB
	uc := uploadUsecase.New(uploadUsecase.Config{
		Logger:       srv.l,
		Analysis:     srv.analysis,
		Session:      sessionUC,
		History:      history,
		Storage:      srv.minio,
		Bucket:       srv.config.MinIO.Bucket,
		Publisher:    publisher,
		MaxSizeBytes: maxBytes,
	})

	handler := uploadHTTP.New(srv.l, uc, srv.discord, maxBytes)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Upload domain registered (history: %t, archive: %t, events: %t)",
		history != nil, srv.minio != nil, publisher != nil)
	return nil
}
