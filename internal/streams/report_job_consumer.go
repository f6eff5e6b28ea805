package streams

import (
	"context"
	"runtime/debug"
	"strconv"
	"sync"

	"lre-analytics/internal/builders"
	"lre-analytics/internal/events"
	"lre-analytics/internal/shared/loggers"
	"lre-analytics/internal/shared/metrics"
	"lre-analytics/internal/shared/svcerrors"
	"lre-analytics/internal/shared/ulid"
)

//go:generate mockgen -source=report_job_consumer.go -destination=./mocks/report_job_consumer_mock.go -package=mocks
type ReportJobConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type reportJobConsumer struct {
	queue         *PartitionedQueue[events.ReportRequestedEvent]
	reportBuilder builders.ReportBuilder

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewReportJobConsumer(queue *PartitionedQueue[events.ReportRequestedEvent], reportBuilder builders.ReportBuilder, logger loggers.Logger) ReportJobConsumer {
	return &reportJobConsumer{
		queue:         queue,
		reportBuilder: reportBuilder,
		stopCh:        make(chan struct{}),
		logger:        logger,
	}
}

// Start spawns 1 worker goroutine per partition.
func (consumer *reportJobConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.partition(partitionIndex)
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()
			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop signals the workers and waits for the report in flight on each partition.
// Jobs still buffered stay pending.
func (consumer *reportJobConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *reportJobConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.ReportRequestedEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metricQueueDepth.WithLabelValues(streamReportJob).Dec()
			consumer.handle(ctx, partitionIndex, &event)
		}
	}
}

func (consumer *reportJobConsumer) handle(ctx context.Context, partitionIndex int, event *events.ReportRequestedEvent) {
	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, strconv.Itoa(partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Str(loggers.FieldRunID, event.RunID).
		Str(loggers.FieldReportID, event.ReportID).
		Logger().WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			svcErr := svcerrors.NewInternalErrorFromPanic(r)
			metricReportJobConsumedTotal.WithLabelValues(streamReportJob, svcErr.Code).Inc()
		}
	}()

	svcError := consumer.reportBuilder.Build(ctx, event)
	if svcError != nil {
		metricReportJobConsumedTotal.WithLabelValues(streamReportJob, svcError.Code).Inc()
		return
	}
	metricReportJobConsumedTotal.WithLabelValues(streamReportJob, metrics.ValueNoError).Inc()
}
