package ingestors

import (
	"bufio"
	"context"
	"errors"
	"io"
	"sort"
	"time"

	"bot-analytics/internal/classifiers"
	"bot-analytics/internal/events"
	"bot-analytics/internal/models"
	"bot-analytics/internal/parsers"
	"bot-analytics/internal/shared/loggers"
	"bot-analytics/internal/shared/metrics"
	"bot-analytics/internal/shared/svcerrors"
	"bot-analytics/internal/shared/ulid"
	"bot-analytics/internal/streams"
)

// MaxLineBytes is the longest single line Analyze accepts.
const MaxLineBytes = 1024 * 1024

//go:generate mockgen -source=analysis_service.go -destination=./mocks/analysis_service_mock.go -package=mocks
type AnalysisService interface {
	// Analyze runs one ingestion over every line of r and classifies the result.
	// Lines that do not match the grammar are reported, never fatal.
	Analyze(ctx context.Context, r io.Reader) (*models.AnalysisReport, error)
}

type analysisService struct {
	parser      parsers.LineParser
	classifier  classifiers.BotClassifier
	shards      int
	shardBuffer int
}

func NewAnalysisService(parser parsers.LineParser, classifier classifiers.BotClassifier, shards int, shardBuffer int) AnalysisService {
	if shards < 1 {
		shards = streams.DefaultNumPartitions
	}
	if shardBuffer < 1 {
		shardBuffer = streams.DefaultBuffer
	}
	return &analysisService{
		parser:      parser,
		classifier:  classifier,
		shards:      shards,
		shardBuffer: shardBuffer,
	}
}

func (s *analysisService) Analyze(ctx context.Context, r io.Reader) (*models.AnalysisReport, error) {
	start := time.Now()
	report, err := s.analyze(ctx, r)
	metricRunDurationSeconds.Observe(time.Since(start).Seconds())

	if err != nil {
		code := svcerrors.NewInternalErrorUndefined(err).Code
		if svcErr, ok := svcerrors.As(err); ok {
			code = svcErr.Code
		}
		metricRunsTotal.WithLabelValues(code).Inc()
		return nil, err
	}
	metricRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return report, nil
}

func (s *analysisService) analyze(ctx context.Context, r io.Reader) (*models.AnalysisReport, error) {
	if r == nil {
		return nil, errValidationFailed("empty log source", nil)
	}

	runID := ulid.NewULID()
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldRunID, runID).Logger()
	ctx = logger.WithContext(ctx)
	logger.Debug().Int("shards", s.shards).Msg("started analysis run")

	// Workers stop early when reading fails half way
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := streams.NewPartitionedQueue[events.RawLineEvent](s.shards, s.shardBuffer)
	recorder := newShardRecorder(s.parser, queue.PartitionCount())
	consumer := streams.NewRawLineConsumer(queue, recorder, logger)
	producer := streams.NewRawLineProducer(queue)
	consumer.Start(runCtx)

	totalLines, readErr := s.publishLines(runCtx, r, producer)
	if readErr != nil {
		cancel()
	}
	queue.Close()
	consumer.Wait()

	if readErr != nil {
		return nil, readErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged, err := recorder.merge()
	if err != nil {
		return nil, errInternalAggregateFailed(err)
	}
	snapshot := merged.Finalize()
	verdicts := s.classifier.Classify(snapshot)

	parseFailures := recorder.parseFailures()
	sort.Slice(parseFailures, func(i, j int) bool {
		return parseFailures[i].LineNumber < parseFailures[j].LineNumber
	})
	for _, failure := range parseFailures {
		logger.Warn().Int(loggers.FieldLineNumber, failure.LineNumber).Msg("line does not match access log grammar, skipped")
	}
	timestampFailures := snapshot.TimestampFailures()
	for _, failure := range timestampFailures {
		logger.Warn().Str(loggers.FieldIP, failure.IP).Str("timestamp", failure.Timestamp).Msg("unparsable timestamp, ip left unsorted")
	}
	if timestampFailures == nil {
		timestampFailures = []models.TimestampFailure{}
	}

	report := &models.AnalysisReport{
		RunID:             runID,
		TotalLines:        totalLines,
		ParsedRecords:     recorder.parsedRecords(),
		UniqueIPs:         len(snapshot.IPs()),
		RequestsByCountry: snapshot.RequestsByCountry(),
		Verdicts:          verdicts,
		ParseFailures:     parseFailures,
		TimestampFailures: timestampFailures,
	}

	logger.Info().
		Int("total_lines", report.TotalLines).
		Int("parsed_records", report.ParsedRecords).
		Int("unique_ips", report.UniqueIPs).
		Int("bot_ips", len(verdicts.BotIPs)).
		Int("bot_countries", len(verdicts.BotCountries)).
		Msg("completed analysis run")
	return report, nil
}

// publishLines numbers lines from 1 and publishes them in read order.
func (s *analysisService) publishLines(ctx context.Context, r io.Reader, producer streams.RawLineProducer) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		event := events.RawLineEvent{LineNumber: lineNumber, Line: scanner.Text()}
		if err := producer.Produce(ctx, event); err != nil {
			return lineNumber, err
		}
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return lineNumber, errLineTooLong(lineNumber+1, err)
		}
		return lineNumber, errInternalReadFailed(err)
	}
	return lineNumber, nil
}
