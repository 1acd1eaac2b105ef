package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	kafkaDelivery "partner-dashboard-srv/internal/upload/delivery/kafka"

	"github.com/IBM/sarama"
)

// handleUploadCompletedMessage decodes one event and hands it to the usecase.
// Malformed messages are logged and skipped so they do not block the partition.
func (c *consumer) handleUploadCompletedMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	c.l.Debugf(ctx, "upload.delivery.kafka.consumer.handleUploadCompletedMessage: partition %d, offset %d",
		msg.Partition, msg.Offset)

	var message kafkaDelivery.UploadCompletedMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "upload.delivery.kafka.consumer.handleUploadCompletedMessage: invalid message format (skipping): %v", err)
		return nil
	}

	input, err := toRecordUploadInput(message)
	if err != nil {
		c.l.Warnf(ctx, "upload.delivery.kafka.consumer.handleUploadCompletedMessage: %v (skipping)", err)
		return nil
	}

	if err := c.uc.RecordUpload(ctx, input); err != nil {
		return fmt.Errorf("usecase RecordUpload %s: %w", message.FileID, err)
	}
	return nil
}
