package kafka

import (
	"errors"
	"time"

	"github.com/IBM/sarama"
)

const (
	producerTimeout  = 10 * time.Second
	producerRetryMax = 3
	defaultClientID  = "partner-dashboard-srv"

	// rejoinBackoff spaces out group rejoins after a failed session.
	rejoinBackoff = 2 * time.Second
)

var protocolVersion = sarama.V2_6_0_0

var (
	ErrBrokersRequired = errors.New("kafka: at least one broker is required")
	ErrTopicRequired   = errors.New("kafka: topic is required")
	ErrGroupIDRequired = errors.New("kafka: group ID is required")
	ErrClosed          = errors.New("kafka: client is closed")
	ErrNoBrokers       = errors.New("kafka: no reachable brokers")
)
