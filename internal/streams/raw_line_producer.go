package streams

import (
	"context"
	"strings"

	"bot-analytics/internal/events"
)

// RawLineProducer publishes raw access-log lines onto a partitioned queue.
//
// Partition Strategy:
//
// The partition key is the line's first whitespace-delimited token, which for a well-formed
// line is the client IP:
//
//	10.0.0.1 - US - [01/01/2024:00:00:00] "GET / HTTP/1.1" 200 512 "-" "UA" 15
//	^^^^^^^^ partitionKey
//
// Every line of one IP therefore reaches the same partition, and a partition is consumed
// by exactly one worker. Each worker owns its shard of the activity index, so:
//   - an IP's timestamps and user agents keep their arrival order inside its shard
//   - no two workers ever write the same IP's entry
//   - merging shards only needs to sum country counts
//
// Malformed lines are routed by whatever their first token is; they only produce
// diagnostics.
type RawLineProducer interface {
	Produce(ctx context.Context, event events.RawLineEvent) error
}

type rawLineProducer struct {
	queue *PartitionedQueue[events.RawLineEvent]
}

func NewRawLineProducer(queue *PartitionedQueue[events.RawLineEvent]) RawLineProducer {
	return &rawLineProducer{
		queue: queue,
	}
}

func (producer *rawLineProducer) Produce(ctx context.Context, event events.RawLineEvent) error {
	if err := producer.queue.Publish(ctx, partitionKey(event.Line), event); err != nil {
		return err
	}
	metricRawLineProducedTotal.WithLabelValues(streamRawLine).Inc()
	return nil
}

// keySeparators matches \s in the access-log grammar, so the IP alone is the key.
const keySeparators = " \t\n\f\r"

func partitionKey(line string) string {
	if i := strings.IndexAny(line, keySeparators); i >= 0 {
		return line[:i]
	}
	return line
}
