package events

// RawLineEvent carries one unparsed access-log line from the line source to a shard worker.
// LineNumber is 1-based and lets diagnostics from different shards be put back in input order.
type RawLineEvent struct {
	LineNumber int
	Line       string
}
