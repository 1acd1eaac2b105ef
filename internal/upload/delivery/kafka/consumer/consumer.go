package consumer

import (
	"context"
	"errors"

	pkgKafka "partner-dashboard-srv/pkg/kafka"
)

// ConsumeUploadCompleted joins the history consumer group and consumes in the background until ctx is done.
func (c *consumer) ConsumeUploadCompleted(ctx context.Context) error {
	group, err := c.createConsumerGroup(c.groupID())
	if err != nil {
		return err
	}
	c.uploadCompletedGroup = group

	handler := &uploadCompletedHandler{consumer: c}
	topic := c.topic()

	go func() {
		if err := group.Run(ctx, []string{topic}, handler); err != nil && !errors.Is(err, pkgKafka.ErrClosed) {
			c.l.Errorf(ctx, "upload.delivery.kafka.consumer.ConsumeUploadCompleted: consume error: %v", err)
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "upload.delivery.kafka.consumer.ConsumeUploadCompleted: group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s as %s", topic, c.groupID())
	return nil
}
