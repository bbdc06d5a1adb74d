package aggregators

import (
	"sort"
	"time"

	"bot-analytics/internal/models"
)

// ipActivity keeps everything observed for one IP together so the count and the
// sequence lengths cannot drift apart.
type ipActivity struct {
	count      int
	timestamps []string
	userAgents []string
}

// ActivityIndex accumulates parsed records for a single ingestion run.
//
// The index has two phases. While open, records and other indexes can be added.
// Finalize sorts every IP's timestamps and seals the index; the returned snapshot is the
// only input classification accepts, so verdicts can never observe arrival order by mistake.
// Reset reopens the index with empty state.
//
// An ActivityIndex is not safe for concurrent use. Parallel ingestion gives every worker
// its own index and merges them before finalizing.
type ActivityIndex struct {
	byIP      map[string]*ipActivity
	byCountry map[string]int
	snapshot  *ActivitySnapshot
}

func NewActivityIndex() *ActivityIndex {
	return &ActivityIndex{
		byIP:      make(map[string]*ipActivity),
		byCountry: make(map[string]int),
	}
}

// Record adds one record. It fails with ErrIndexFinalized once the index is sealed.
func (idx *ActivityIndex) Record(record *models.LogRecord) error {
	if idx.snapshot != nil {
		return ErrIndexFinalized
	}
	activity, exists := idx.byIP[record.IP]
	if !exists {
		activity = &ipActivity{}
		idx.byIP[record.IP] = activity
	}
	activity.count++
	activity.timestamps = append(activity.timestamps, record.Timestamp)
	activity.userAgents = append(activity.userAgents, record.UserAgent)

	idx.byCountry[record.CountryCode]++
	return nil
}

// RecordAll adds records in input order.
func (idx *ActivityIndex) RecordAll(records []*models.LogRecord) error {
	for _, record := range records {
		if err := idx.Record(record); err != nil {
			return err
		}
	}
	return nil
}

// Merge folds other into idx by summing counts and appending other's sequences after
// idx's for every key. Both indexes must still be open.
func (idx *ActivityIndex) Merge(other *ActivityIndex) error {
	if idx == other {
		return ErrSelfMerge
	}
	if idx.snapshot != nil || other.snapshot != nil {
		return ErrIndexFinalized
	}
	for ip, src := range other.byIP {
		dst, exists := idx.byIP[ip]
		if !exists {
			dst = &ipActivity{}
			idx.byIP[ip] = dst
		}
		dst.count += src.count
		dst.timestamps = append(dst.timestamps, src.timestamps...)
		dst.userAgents = append(dst.userAgents, src.userAgents...)
	}
	for country, count := range other.byCountry {
		idx.byCountry[country] += count
	}
	return nil
}

// CountForIP returns the number of records seen for ip, or 0.
func (idx *ActivityIndex) CountForIP(ip string) int {
	if activity, ok := idx.byIP[ip]; ok {
		return activity.count
	}
	return 0
}

// CountForCountry returns the number of records seen for country, or 0.
func (idx *ActivityIndex) CountForCountry(country string) int {
	return idx.byCountry[country]
}

// IsFinalized reports whether Finalize has sealed the index.
func (idx *ActivityIndex) IsFinalized() bool {
	return idx.snapshot != nil
}

// Reset drops all accumulated state. Snapshots taken before the reset stay valid.
func (idx *ActivityIndex) Reset() {
	idx.byIP = make(map[string]*ipActivity)
	idx.byCountry = make(map[string]int)
	idx.snapshot = nil
}

// Finalize parses every stored timestamp and stable-sorts each IP's sequence ascending.
// An IP with an unparsable timestamp keeps its arrival order and contributes one
// TimestampFailure per bad value; the other IPs are sorted regardless.
//
// Finalize seals the index and is idempotent: later calls return the same snapshot.
func (idx *ActivityIndex) Finalize() *ActivitySnapshot {
	if idx.snapshot != nil {
		return idx.snapshot
	}

	snapshot := &ActivitySnapshot{
		byIP:      idx.byIP,
		byCountry: idx.byCountry,
		instants:  make(map[string][]time.Time, len(idx.byIP)),
	}

	ips := make([]string, 0, len(idx.byIP))
	for ip := range idx.byIP {
		ips = append(ips, ip)
	}
	sort.Strings(ips)

	for _, ip := range ips {
		activity := idx.byIP[ip]
		snapshot.totalRequests += activity.count

		instants, failures := parseTimestamps(ip, activity.timestamps)
		if len(failures) > 0 {
			snapshot.timestampFailures = append(snapshot.timestampFailures, failures...)
			metricTimestampFailuresTotal.Add(float64(len(failures)))
			continue
		}
		sortByInstant(activity.timestamps, instants)
		snapshot.instants[ip] = instants
	}

	idx.snapshot = snapshot
	return snapshot
}

func parseTimestamps(ip string, timestamps []string) ([]time.Time, []models.TimestampFailure) {
	instants := make([]time.Time, len(timestamps))
	var failures []models.TimestampFailure
	for i, ts := range timestamps {
		instant, err := models.ParseTimestamp(ts)
		if err != nil {
			failures = append(failures, models.TimestampFailure{IP: ip, Timestamp: ts, Reason: err.Error()})
			continue
		}
		instants[i] = instant
	}
	return instants, failures
}

// sortByInstant reorders timestamps and instants together; ties keep arrival order.
func sortByInstant(timestamps []string, instants []time.Time) {
	order := make([]int, len(instants))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return instants[order[a]].Before(instants[order[b]])
	})

	sortedTimestamps := make([]string, len(timestamps))
	sortedInstants := make([]time.Time, len(instants))
	for i, from := range order {
		sortedTimestamps[i] = timestamps[from]
		sortedInstants[i] = instants[from]
	}
	copy(timestamps, sortedTimestamps)
	copy(instants, sortedInstants)
}
