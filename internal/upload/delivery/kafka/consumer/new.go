package consumer

import (
	"context"
	"fmt"

	"partner-dashboard-srv/config"
	"partner-dashboard-srv/internal/upload"
	kafkaDelivery "partner-dashboard-srv/internal/upload/delivery/kafka"
	pkgKafka "partner-dashboard-srv/pkg/kafka"
	"partner-dashboard-srv/pkg/log"
)

// Consumer records upload events into the history ledger.
type Consumer interface {
	ConsumeUploadCompleted(ctx context.Context) error
	Close() error
}

// Config holds the configuration for the upload consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     upload.UseCase
}

type consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          upload.UseCase

	uploadCompletedGroup pkgKafka.IConsumer
}

func New(cfg Config) (Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

func (c *consumer) topic() string {
	if c.kafkaConfig.Topic != "" {
		return c.kafkaConfig.Topic
	}
	return kafkaDelivery.TopicUploadCompleted
}

func (c *consumer) groupID() string {
	if c.kafkaConfig.GroupID != "" {
		return c.kafkaConfig.GroupID
	}
	return kafkaDelivery.GroupIDUploadCompleted
}

func (c *consumer) Close() error {
	if c.uploadCompletedGroup != nil {
		if err := c.uploadCompletedGroup.Close(); err != nil {
			return fmt.Errorf("failed to close upload completed group: %w", err)
		}
	}
	return nil
}

func (c *consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCreateConsumerGroupFailed, groupID, err)
	}
	return group, nil
}
