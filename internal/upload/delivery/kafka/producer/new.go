package producer

import (
	"partner-dashboard-srv/internal/upload"
	pkgKafka "partner-dashboard-srv/pkg/kafka"
	"partner-dashboard-srv/pkg/log"
)

// Producer publishes upload events.
type Producer interface {
	upload.Publisher
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
