package streams

import (
	"context"

	"lre-analytics/internal/events"
)

// ReportJobProducer publishes ReportRequestedEvents to a partitioned queue.
//
// The partition key is the run ID. Reports of the same run are built one after
// another by a single worker, so one run database is never scanned twice at once,
// while reports of different runs are built in parallel.
//
//go:generate mockgen -source=report_job_producer.go -destination=./mocks/report_job_producer_mock.go -package=mocks
type ReportJobProducer interface {
	Produce(ctx context.Context, event *events.ReportRequestedEvent) error
}

type reportJobProducer struct {
	queue *PartitionedQueue[events.ReportRequestedEvent]
}

func NewReportJobProducer(queue *PartitionedQueue[events.ReportRequestedEvent]) ReportJobProducer {
	return &reportJobProducer{
		queue: queue,
	}
}

func (producer *reportJobProducer) Produce(ctx context.Context, event *events.ReportRequestedEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := producer.queue.Publish(ctx, event.RunID, *event); err != nil {
		return err
	}
	metricReportJobProducedTotal.WithLabelValues(streamReportJob).Inc()
	return nil
}
