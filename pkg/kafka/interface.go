package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

// IProducer publishes to one topic. Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	// HealthCheck reports whether the producer still has a live broker.
	HealthCheck() error
	Close() error
}

// IConsumer is one consumer group membership.
type IConsumer interface {
	// Run consumes topics until ctx is done, rejoining the group after every rebalance.
	Run(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error
	Errors() <-chan error
	Close() error
}

// Config configures a producer.
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// ConsumerConfig configures a consumer group member.
type ConsumerConfig struct {
	Brokers  []string
	GroupID  string
	ClientID string
	// FromNewest starts a group without committed offsets at the end of the topic.
	FromNewest bool
}

func baseConfig(clientID string) *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Version = protocolVersion
	cfg.ClientID = clientID
	if cfg.ClientID == "" {
		cfg.ClientID = defaultClientID
	}
	return cfg
}
