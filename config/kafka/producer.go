package kafka

import (
	"fmt"

	"partner-dashboard-srv/config"
	"partner-dashboard-srv/pkg/kafka"
)

const producerClientID = "partner-dashboard-srv"

// ConnectProducer builds the producer for upload-completed events.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	p, err := kafka.NewProducer(kafka.Config{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		ClientID: producerClientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer for %s: %w", cfg.Topic, err)
	}
	return p, nil
}
