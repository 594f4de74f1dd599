package producer

import (
	"usernotes-srv/internal/job"
	"usernotes-srv/pkg/kafka"
	"usernotes-srv/pkg/log"
)

type implProducer struct {
	producer kafka.IProducer
	l        log.Logger
}

// New creates a new job event producer.
func New(kafkaProducer kafka.IProducer, l log.Logger) job.EventPublisher {
	return &implProducer{
		producer: kafkaProducer,
		l:        l,
	}
}
