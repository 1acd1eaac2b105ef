package kafka

import (
	"fmt"

	"github.com/IBM/sarama"
)

type producerImpl struct {
	client   sarama.Client
	producer sarama.SyncProducer
	topic    string
}

// NewProducer connects a synchronous producer that waits for the leader ack.
func NewProducer(cfg Config) (IProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrBrokersRequired
	}
	if cfg.Topic == "" {
		return nil, ErrTopicRequired
	}

	sc := baseConfig(cfg.ClientID)
	sc.Producer.RequiredAcks = sarama.WaitForLocal
	sc.Producer.Compression = sarama.CompressionSnappy
	sc.Producer.Return.Successes = true
	sc.Producer.Retry.Max = producerRetryMax
	sc.Producer.Timeout = producerTimeout

	client, err := sarama.NewClient(cfg.Brokers, sc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka client: %w", err)
	}
	producer, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return &producerImpl{client: client, producer: producer, topic: cfg.Topic}, nil
}

func (p *producerImpl) Publish(key, value []byte) error {
	_, _, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.topic, err)
	}
	return nil
}

func (p *producerImpl) HealthCheck() error {
	if p.client.Closed() {
		return ErrClosed
	}
	for _, b := range p.client.Brokers() {
		if ok, _ := b.Connected(); ok {
			return nil
		}
	}
	return ErrNoBrokers
}

// Close closes the producer, which also closes its client.
func (p *producerImpl) Close() error {
	if err := p.producer.Close(); err != nil {
		return err
	}
	if !p.client.Closed() {
		return p.client.Close()
	}
	return nil
}
