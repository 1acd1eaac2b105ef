package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type uploadCompletedHandler struct {
	consumer *consumer
}

func (h *uploadCompletedHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *uploadCompletedHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *uploadCompletedHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()
	for msg := range claim.Messages() {
		if err := h.consumer.handleUploadCompletedMessage(ctx, msg); err != nil {
			h.consumer.l.Errorf(context.WithoutCancel(ctx), "upload.delivery.kafka.consumer.ConsumeClaim: failed to process message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
