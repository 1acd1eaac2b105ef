package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"partner-dashboard-srv/internal/upload"
	kafkaDelivery "partner-dashboard-srv/internal/upload/delivery/kafka"
)

// PublishUploadCompleted publishes one event keyed by file id.
func (p *implProducer) PublishUploadCompleted(ctx context.Context, event upload.UploadCompletedEvent) error {
	body, err := json.Marshal(toMessage(event))
	if err != nil {
		return fmt.Errorf("failed to marshal upload event: %w", err)
	}

	if err := p.producer.Publish([]byte(event.FileID), body); err != nil {
		return fmt.Errorf("failed to publish upload event: %w", err)
	}

	p.l.Infof(ctx, "upload.delivery.kafka.producer.PublishUploadCompleted: published %s (%s)", event.FileID, event.Source)
	return nil
}

func toMessage(e upload.UploadCompletedEvent) kafkaDelivery.UploadCompletedMessage {
	return kafkaDelivery.UploadCompletedMessage{
		FileID:        e.FileID,
		Source:        e.Source.String(),
		Filename:      e.Filename,
		SessionID:     e.SessionID,
		ArchiveObject: e.ArchiveObject,
		Size:          e.SizeBytes,
		UploadedAt:    e.UploadedAt,
	}
}
