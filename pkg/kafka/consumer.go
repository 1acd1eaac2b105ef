package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

type consumerImpl struct {
	group sarama.ConsumerGroup
}

// NewConsumer joins nothing yet; Run starts the membership.
func NewConsumer(cfg ConsumerConfig) (IConsumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrBrokersRequired
	}
	if cfg.GroupID == "" {
		return nil, ErrGroupIDRequired
	}

	sc := baseConfig(cfg.ClientID)
	sc.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	sc.Consumer.Offsets.Initial = sarama.OffsetOldest
	if cfg.FromNewest {
		sc.Consumer.Offsets.Initial = sarama.OffsetNewest
	}
	sc.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, sc)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", cfg.GroupID, err)
	}
	return &consumerImpl{group: group}, nil
}

// Run returns nil when ctx ends and ErrClosed when the group was closed underneath it.
func (c *consumerImpl) Run(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	for {
		err := c.group.Consume(ctx, topics, handler)
		switch {
		case errors.Is(err, sarama.ErrClosedConsumerGroup):
			return ErrClosed
		case ctx.Err() != nil:
			return nil
		case err != nil:
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(rejoinBackoff):
			}
		}
	}
}

func (c *consumerImpl) Errors() <-chan error {
	return c.group.Errors()
}

func (c *consumerImpl) Close() error {
	return c.group.Close()
}
