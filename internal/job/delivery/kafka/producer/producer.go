package producer

import (
	"context"
	"encoding/json"
	"time"

	"usernotes-srv/internal/model"

	kafkaDelivery "usernotes-srv/internal/job/delivery/kafka"
)

// PublishJobEvent publishes a run lifecycle event. Failures are logged
// and swallowed: eventing must never break a batch.
func (p *implProducer) PublishJobEvent(ctx context.Context, eventType string, run model.JobRun) {
	msg := kafkaDelivery.JobEventMessage{
		EventType:     eventType,
		RunID:         run.ID,
		SetID:         run.SetID,
		Action:        run.Action,
		TotalUsers:    run.TotalUsers,
		Processed:     run.Processed,
		ModifiedUsers: run.ModifiedUsers,
		FailedUsers:   run.FailedUsers,
		ErrorMessage:  run.ErrorMessage,
		OccurredAt:    time.Now().Unix(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		p.l.Errorf(ctx, "job.delivery.kafka.PublishJobEvent: failed to marshal event: %v", err)
		return
	}

	if err := p.producer.Publish([]byte(run.ID), body); err != nil {
		p.l.Errorf(ctx, "job.delivery.kafka.PublishJobEvent: failed to publish %s for run %s: %v", eventType, run.ID, err)
		return
	}

	p.l.Infof(ctx, "job.delivery.kafka.PublishJobEvent: published %s for run %s", eventType, run.ID)
}
