package classifiers

import (
	"fmt"
	"testing"
	"time"

	"bot-analytics/internal/aggregators"
	"bot-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// recordSeries builds count records for ip spaced by gap, starting at baseTime.
func recordSeries(ip, country string, count int, gap time.Duration) []*models.LogRecord {
	records := make([]*models.LogRecord, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, &models.LogRecord{
			IP:             ip,
			CountryCode:    country,
			Timestamp:      baseTime.Add(time.Duration(i) * gap).Format(models.TimestampLayout),
			UserAgent:      fmt.Sprintf("agent-%d", i%2),
			ResponseTimeMs: 5,
		})
	}
	return records
}

func snapshotOf(t *testing.T, batches ...[]*models.LogRecord) *aggregators.ActivitySnapshot {
	t.Helper()

	idx := aggregators.NewActivityIndex()
	for _, records := range batches {
		require.NoError(t, idx.RecordAll(records))
	}
	return idx.Finalize()
}

func TestBotClassifier_VolumeThresholdBoundary(t *testing.T) {
	t.Parallel()

	classifier := NewDefaultBotClassifier()
	snapshot := snapshotOf(t,
		recordSeries("10.0.0.100", "AA", 100, time.Minute),
		recordSeries("10.0.0.101", "BB", 101, time.Minute),
	)

	assert.False(t, classifier.IsVolumeBotIP(snapshot, "10.0.0.100"), "exactly 100 requests is not a volume bot")
	assert.True(t, classifier.IsVolumeBotIP(snapshot, "10.0.0.101"), "101 requests is a volume bot")
	assert.False(t, classifier.IsVolumeBotCountry(snapshot, "AA"))
	assert.True(t, classifier.IsVolumeBotCountry(snapshot, "BB"))
}

func TestBotClassifier_BurstBoundary(t *testing.T) {
	t.Parallel()

	classifier := NewDefaultBotClassifier()

	tests := []struct {
		name     string
		gap      time.Duration
		count    int
		expected bool
	}{
		{name: "exactly 60 seconds apart", gap: 60 * time.Second, count: 2, expected: false},
		{name: "59 seconds apart", gap: 59 * time.Second, count: 2, expected: true},
		{name: "same second", gap: 0, count: 2, expected: true},
		{name: "hourly", gap: time.Hour, count: 10, expected: false},
		{name: "single request", gap: 0, count: 1, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snapshot := snapshotOf(t, recordSeries("10.0.0.1", "US", tt.count, tt.gap))
			assert.Equal(t, tt.expected, classifier.IsBurstBot(snapshot, "10.0.0.1"))
		})
	}
}

func TestBotClassifier_BurstUsesSortedOrder(t *testing.T) {
	t.Parallel()

	classifier := NewDefaultBotClassifier()

	// Arrival order has 2 minute gaps between neighbours, sorted order has a 30s gap.
	records := []*models.LogRecord{
		{IP: "10.0.0.1", CountryCode: "US", Timestamp: "01/01/2024:00:00:00", UserAgent: "UA"},
		{IP: "10.0.0.1", CountryCode: "US", Timestamp: "01/01/2024:00:02:30", UserAgent: "UA"},
		{IP: "10.0.0.1", CountryCode: "US", Timestamp: "01/01/2024:00:00:30", UserAgent: "UA"},
	}
	snapshot := snapshotOf(t, records)

	assert.True(t, classifier.IsBurstBot(snapshot, "10.0.0.1"))
}

func TestBotClassifier_UnsortableIPIsNeverBurstBot(t *testing.T) {
	t.Parallel()

	classifier := NewDefaultBotClassifier()

	records := recordSeries("10.0.0.1", "US", 150, time.Second)
	records = append(records, &models.LogRecord{IP: "10.0.0.1", CountryCode: "US", Timestamp: "31/02/2024:00:00:00", UserAgent: "UA"})
	snapshot := snapshotOf(t, records)

	assert.True(t, classifier.IsVolumeBotIP(snapshot, "10.0.0.1"))
	assert.False(t, classifier.IsBurstBot(snapshot, "10.0.0.1"))
	assert.False(t, classifier.IsBot(snapshot, "10.0.0.1"))
}

func TestBotClassifier_CombinedVerdict(t *testing.T) {
	t.Parallel()

	classifier := NewDefaultBotClassifier()
	snapshot := snapshotOf(t,
		recordSeries("10.0.0.1", "US", 101, 30*time.Second), // volume + burst
		recordSeries("10.0.0.2", "US", 101, 2*time.Minute),  // volume only
		recordSeries("10.0.0.3", "US", 10, time.Second),     // burst only
	)

	assert.True(t, classifier.IsBot(snapshot, "10.0.0.1"))
	assert.False(t, classifier.IsBot(snapshot, "10.0.0.2"))
	assert.False(t, classifier.IsBot(snapshot, "10.0.0.3"))
	assert.True(t, classifier.IsBurstBot(snapshot, "10.0.0.3"))

	// Missing keys are not bots
	assert.False(t, classifier.IsBot(snapshot, "172.16.0.1"))
	assert.False(t, classifier.IsVolumeBotCountry(snapshot, "ZZ"))
}

func TestBotClassifier_Classify(t *testing.T) {
	t.Parallel()

	classifier := NewDefaultBotClassifier()
	snapshot := snapshotOf(t,
		recordSeries("10.0.0.2", "FR", 101, 30*time.Second),
		recordSeries("10.0.0.9", "US", 120, 5*time.Minute),
		recordSeries("10.0.0.5", "DE", 3, time.Second),
	)

	verdicts := classifier.Classify(snapshot)

	require.Len(t, verdicts.BotIPs, 1)
	bot := verdicts.BotIPs[0]
	assert.Equal(t, "10.0.0.2", bot.IP)
	assert.Equal(t, 101, bot.RequestCount)
	assert.True(t, bot.IsBot())
	assert.Len(t, bot.Timestamps, 101)
	assert.Equal(t, "01/01/2024:00:00:00", bot.Timestamps[0])
	assert.Len(t, bot.UserAgents, 101)

	assert.Equal(t, []string{"10.0.0.2", "10.0.0.9"}, verdicts.VolumeBotIPs)
	assert.Equal(t, []models.CountryVerdict{
		{CountryCode: "FR", RequestCount: 101},
		{CountryCode: "US", RequestCount: 120},
	}, verdicts.BotCountries)
}

func TestBotClassifier_Classify_IsIdempotent(t *testing.T) {
	t.Parallel()

	classifier := NewDefaultBotClassifier()
	snapshot := snapshotOf(t, recordSeries("10.0.0.2", "FR", 101, 30*time.Second))

	assert.Equal(t, classifier.IsBot(snapshot, "10.0.0.2"), classifier.IsBot(snapshot, "10.0.0.2"))
	assert.Equal(t, classifier.Classify(snapshot), classifier.Classify(snapshot))
}

func TestBotClassifier_Classify_EmptySnapshot(t *testing.T) {
	t.Parallel()

	verdicts := NewDefaultBotClassifier().Classify(aggregators.NewActivityIndex().Finalize())

	assert.NotNil(t, verdicts.BotIPs)
	assert.Empty(t, verdicts.BotIPs)
	assert.Empty(t, verdicts.VolumeBotIPs)
	assert.Empty(t, verdicts.BotCountries)
}

func TestBotClassifier_CustomThresholds(t *testing.T) {
	t.Parallel()

	classifier := NewBotClassifier(5, 10*time.Second)
	snapshot := snapshotOf(t, recordSeries("10.0.0.1", "US", 6, 9*time.Second))

	assert.True(t, classifier.IsVolumeBotIP(snapshot, "10.0.0.1"))
	assert.True(t, classifier.IsBurstBot(snapshot, "10.0.0.1"))
	assert.True(t, classifier.IsBot(snapshot, "10.0.0.1"))
}

func TestHasBurst(t *testing.T) {
	t.Parallel()

	assert.False(t, HasBurst(nil, time.Minute))
	assert.False(t, HasBurst([]time.Time{baseTime}, time.Minute))
	assert.False(t, HasBurst([]time.Time{baseTime, baseTime.Add(time.Minute)}, time.Minute))
	assert.True(t, HasBurst([]time.Time{baseTime, baseTime.Add(59 * time.Second)}, time.Minute))
	assert.True(t, HasBurst([]time.Time{baseTime, baseTime.Add(time.Hour), baseTime.Add(time.Hour + time.Second)}, time.Minute))
}
