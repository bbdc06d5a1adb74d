package models

import "time"

// TimestampLayout is the access-log timestamp format dd/mm/yyyy:HH:mm:ss. It carries no zone;
// parsed values are only compared with each other.
const TimestampLayout = "02/01/2006:15:04:05"

// NoResponseTime marks a response time field that could not be parsed.
const NoResponseTime = -1

// LogRecord is one parsed access-log line. Method, path, status and byte count are consumed
// by the grammar but not kept.
type LogRecord struct {
	IP             string `json:"ip"`
	CountryCode    string `json:"countryCode"`
	Timestamp      string `json:"timestamp"`
	UserAgent      string `json:"userAgent"`
	ResponseTimeMs int    `json:"responseTimeMs"`
}

// HasResponseTime reports whether the trailing response time field was parsed.
func (r *LogRecord) HasResponseTime() bool {
	return r.ResponseTimeMs != NoResponseTime
}

// ParseTimestamp parses a log timestamp into a comparable instant.
func ParseTimestamp(value string) (time.Time, error) {
	return time.Parse(TimestampLayout, value)
}
