package consumer

import (
	"context"
	"fmt"

	uploadConsumer "partner-dashboard-srv/internal/upload/delivery/kafka/consumer"
	uploadPostgre "partner-dashboard-srv/internal/upload/repository/postgre"
	uploadUsecase "partner-dashboard-srv/internal/upload/usecase"
)

// Run consumes until ctx is done, then leaves the consumer group.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	history := uploadPostgre.New(srv.db, srv.dbSchema, srv.l)
	if err := history.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to prepare upload history schema: %w", err)
	}

	// RecordUpload is the only operation used here, so no analysis client or session is wired.
	uc := uploadUsecase.New(uploadUsecase.Config{Logger: srv.l, History: history})
	cons, err := uploadConsumer.New(uploadConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafka,
		UseCase:     uc,
	})
	if err != nil {
		return fmt.Errorf("failed to create upload consumer: %w", err)
	}
	if err := cons.ConsumeUploadCompleted(ctx); err != nil {
		return fmt.Errorf("failed to start upload consumer: %w", err)
	}

	<-ctx.Done()
	srv.l.Info(ctx, "Stopping upload history consumer")

	if err := cons.Close(); err != nil {
		ctx := context.WithoutCancel(ctx)
		srv.l.Errorf(ctx, "consumer.Run: Close failed: %v", err)
		if srv.discord != nil {
			_ = srv.discord.ReportBug(ctx, fmt.Sprintf("upload history consumer close failed: %v", err))
		}
		return err
	}
	return nil
}
