package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"bot-analytics/internal/events"
	"bot-analytics/internal/shared/loggers"
	"bot-analytics/internal/shared/metrics"
	"bot-analytics/internal/shared/svcerrors"
)

// RawLineHandler processes the lines of one partition. Both methods are only ever called
// from that partition's worker, so a handler may keep per-partition state without locking.
type RawLineHandler interface {
	HandleRawLine(ctx context.Context, partitionIndex int, event *events.RawLineEvent)
	// HandleRawLineFailure is called with the recovered panic when HandleRawLine panicked on event.
	HandleRawLineFailure(ctx context.Context, partitionIndex int, event *events.RawLineEvent, err error)
}

type RawLineConsumer interface {
	Start(ctx context.Context)
	// Wait blocks until every worker has drained its closed partition or ctx is done.
	Wait()
}

type rawLineConsumer struct {
	queue   *PartitionedQueue[events.RawLineEvent]
	handler RawLineHandler

	wg sync.WaitGroup

	logger loggers.Logger
}

func NewRawLineConsumer(queue *PartitionedQueue[events.RawLineEvent], handler RawLineHandler, logger loggers.Logger) RawLineConsumer {
	return &rawLineConsumer{
		queue:   queue,
		handler: handler,
		logger:  logger,
	}
}

// Start spawns 1 worker goroutine per partition.
func (consumer *rawLineConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

func (consumer *rawLineConsumer) Wait() {
	consumer.wg.Wait()
}

func (consumer *rawLineConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.RawLineEvent) {
	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Logger().WithContext(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(ctx, partitionIndex, &event)
		}
	}
}

func (consumer *rawLineConsumer) handle(ctx context.Context, partitionIndex int, event *events.RawLineEvent) {
	// A panicking line must not take the shard worker down with it
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Int(loggers.FieldLineNumber, event.LineNumber).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricRawLineConsumedTotal.WithLabelValues(streamRawLine, svcErr.Code).Inc()
			consumer.handler.HandleRawLineFailure(ctx, partitionIndex, event, svcErr)
		}
	}()

	consumer.handler.HandleRawLine(ctx, partitionIndex, event)
	metricRawLineConsumedTotal.WithLabelValues(streamRawLine, metrics.ValueNoError).Inc()
}
