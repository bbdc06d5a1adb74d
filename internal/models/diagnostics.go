package models

// ParseFailure is reported for a line that does not match the access-log grammar.
// The line is skipped; ingestion of the remaining lines continues.
type ParseFailure struct {
	LineNumber int    `json:"lineNumber"`
	Line       string `json:"line"`
}

// TimestampFailure is reported for a stored timestamp that could not be parsed while
// finalizing an activity index. The owning IP keeps its arrival order.
type TimestampFailure struct {
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
	Reason    string `json:"reason"`
}
