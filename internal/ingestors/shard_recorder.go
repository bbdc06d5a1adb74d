package ingestors

import (
	"context"
	"errors"

	"bot-analytics/internal/aggregators"
	"bot-analytics/internal/events"
	"bot-analytics/internal/models"
	"bot-analytics/internal/parsers"
	"bot-analytics/internal/shared/loggers"
)

// shard is the state owned by one partition worker.
type shard struct {
	index         *aggregators.ActivityIndex
	parseFailures []models.ParseFailure
	parsed        int
	err           error
}

// shardRecorder parses raw lines and records them into the shard of the partition they
// arrived on. Each shard is touched by exactly one worker until the consumer is drained.
type shardRecorder struct {
	parser parsers.LineParser
	shards []*shard
}

func newShardRecorder(parser parsers.LineParser, numShards int) *shardRecorder {
	shards := make([]*shard, numShards)
	for i := range shards {
		shards[i] = &shard{index: aggregators.NewActivityIndex()}
	}
	return &shardRecorder{
		parser: parser,
		shards: shards,
	}
}

func (r *shardRecorder) HandleRawLine(ctx context.Context, partitionIndex int, event *events.RawLineEvent) {
	s := r.shards[partitionIndex]

	record, err := r.parser.Parse(event.Line)
	if err != nil {
		if !errors.Is(err, parsers.ErrLineMismatch) {
			loggers.Ctx(ctx).Error().Err(err).Int(loggers.FieldLineNumber, event.LineNumber).Msg("unexpected parser error")
		}
		s.parseFailures = append(s.parseFailures, models.ParseFailure{
			LineNumber: event.LineNumber,
			Line:       event.Line,
		})
		metricLinesTotal.WithLabelValues(outcomeMismatch).Inc()
		return
	}

	if err := s.index.Record(record); err != nil {
		if s.err == nil {
			s.err = err
		}
		return
	}
	s.parsed++
	metricLinesTotal.WithLabelValues(outcomeParsed).Inc()
}

// HandleRawLineFailure reports a line whose handling panicked as a failure, so every line is
// still either a parsed record or a ParseFailure.
func (r *shardRecorder) HandleRawLineFailure(ctx context.Context, partitionIndex int, event *events.RawLineEvent, err error) {
	s := r.shards[partitionIndex]
	s.parseFailures = append(s.parseFailures, models.ParseFailure{
		LineNumber: event.LineNumber,
		Line:       event.Line,
	})
	metricLinesTotal.WithLabelValues(outcomeFailed).Inc()
}

// merge folds every shard into a fresh index. Lines are partitioned by IP, so shards hold
// disjoint IPs and only the country counts overlap.
func (r *shardRecorder) merge() (*aggregators.ActivityIndex, error) {
	merged := aggregators.NewActivityIndex()
	for _, s := range r.shards {
		if s.err != nil {
			return nil, s.err
		}
		if err := merged.Merge(s.index); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

func (r *shardRecorder) parsedRecords() int {
	total := 0
	for _, s := range r.shards {
		total += s.parsed
	}
	return total
}

func (r *shardRecorder) parseFailures() []models.ParseFailure {
	failures := []models.ParseFailure{}
	for _, s := range r.shards {
		failures = append(failures, s.parseFailures...)
	}
	return failures
}
