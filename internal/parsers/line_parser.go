package parsers

import (
	"errors"
	"regexp"
	"strconv"

	"bot-analytics/internal/models"
)

var (
	ErrLineMismatch = errors.New("line does not match access log grammar")
)

// accessLogLine is anchored on both ends; partial matches are rejected.
// Groups: ip, country code, timestamp, user agent, response time.
var accessLogLine = regexp.MustCompile(
	`^(\d+\.\d+\.\d+\.\d+)\s-\s(\w+)\s-\s\[(\d{2}/\d{2}/\d{4}:\d{2}:\d{2}:\d{2})\]\s"\w+\s\S+\sHTTP/\d+\.\d+"\s\d{3}\s\d+\s"-"\s"([^"]+)"\s(\d+)$`,
)

const (
	groupIP = iota + 1
	groupCountryCode
	groupTimestamp
	groupUserAgent
	groupResponseTime
)

//go:generate mockgen -source=line_parser.go -destination=./mocks/line_parser_mock.go -package=mocks
type LineParser interface {
	// Parse returns ErrLineMismatch when the line does not match the grammar in full.
	Parse(line string) (*models.LogRecord, error)
}

type lineParser struct{}

func NewLineParser() LineParser {
	return &lineParser{}
}

func (p *lineParser) Parse(line string) (*models.LogRecord, error) {
	matches := accessLogLine.FindStringSubmatch(line)
	if matches == nil {
		return nil, ErrLineMismatch
	}

	return &models.LogRecord{
		IP:             matches[groupIP],
		CountryCode:    matches[groupCountryCode],
		Timestamp:      matches[groupTimestamp],
		UserAgent:      matches[groupUserAgent],
		ResponseTimeMs: parseResponseTime(matches[groupResponseTime]),
	}, nil
}

// parseResponseTime returns models.NoResponseTime for values outside the 32-bit range.
func parseResponseTime(value string) int {
	v, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		metricResponseTimeInvalidTotal.Inc()
		return models.NoResponseTime
	}
	return int(v)
}
