package classifiers

import (
	"time"

	"bot-analytics/internal/aggregators"
	"bot-analytics/internal/models"
)

const (
	// DefaultMaxRequests is the volume threshold; a key is a volume bot only above it.
	DefaultMaxRequests = 100
	// DefaultBurstWindow is the burst threshold; a gap must be strictly shorter to count.
	DefaultBurstWindow = 60 * time.Second
)

// BotClassifier derives verdicts from a finalized activity snapshot. Verdicts are never
// cached: every call reads the snapshot again. Unknown keys are never bots.
//
//go:generate mockgen -source=bot_classifier.go -destination=./mocks/bot_classifier_mock.go -package=mocks
type BotClassifier interface {
	IsVolumeBotIP(snapshot *aggregators.ActivitySnapshot, ip string) bool
	IsVolumeBotCountry(snapshot *aggregators.ActivitySnapshot, country string) bool
	IsBurstBot(snapshot *aggregators.ActivitySnapshot, ip string) bool
	// IsBot is the combined verdict: volume bot and burst bot.
	IsBot(snapshot *aggregators.ActivitySnapshot, ip string) bool
	Classify(snapshot *aggregators.ActivitySnapshot) *models.Verdicts
}

type botClassifier struct {
	maxRequests int
	burstWindow time.Duration
}

func NewBotClassifier(maxRequests int, burstWindow time.Duration) BotClassifier {
	return &botClassifier{
		maxRequests: maxRequests,
		burstWindow: burstWindow,
	}
}

func NewDefaultBotClassifier() BotClassifier {
	return NewBotClassifier(DefaultMaxRequests, DefaultBurstWindow)
}

func (c *botClassifier) IsVolumeBotIP(snapshot *aggregators.ActivitySnapshot, ip string) bool {
	return snapshot.CountForIP(ip) > c.maxRequests
}

func (c *botClassifier) IsVolumeBotCountry(snapshot *aggregators.ActivitySnapshot, country string) bool {
	return snapshot.CountForCountry(country) > c.maxRequests
}

// IsBurstBot is false for IPs whose timestamps could not be sorted.
func (c *botClassifier) IsBurstBot(snapshot *aggregators.ActivitySnapshot, ip string) bool {
	instants, ok := snapshot.InstantsForIP(ip)
	if !ok {
		return false
	}
	return HasBurst(instants, c.burstWindow)
}

func (c *botClassifier) IsBot(snapshot *aggregators.ActivitySnapshot, ip string) bool {
	return c.IsVolumeBotIP(snapshot, ip) && c.IsBurstBot(snapshot, ip)
}

func (c *botClassifier) Classify(snapshot *aggregators.ActivitySnapshot) *models.Verdicts {
	verdicts := &models.Verdicts{
		BotIPs:       []models.IPVerdict{},
		VolumeBotIPs: []string{},
		BotCountries: []models.CountryVerdict{},
	}

	for _, ip := range snapshot.IPs() {
		if !c.IsVolumeBotIP(snapshot, ip) {
			continue
		}
		verdicts.VolumeBotIPs = append(verdicts.VolumeBotIPs, ip)

		if !c.IsBurstBot(snapshot, ip) {
			continue
		}
		verdicts.BotIPs = append(verdicts.BotIPs, models.IPVerdict{
			IP:           ip,
			RequestCount: snapshot.CountForIP(ip),
			VolumeBot:    true,
			BurstBot:     true,
			Timestamps:   snapshot.TimestampsForIP(ip),
			UserAgents:   snapshot.UserAgentsForIP(ip),
		})
	}

	for _, country := range snapshot.Countries() {
		if c.IsVolumeBotCountry(snapshot, country) {
			verdicts.BotCountries = append(verdicts.BotCountries, models.CountryVerdict{
				CountryCode:  country,
				RequestCount: snapshot.CountForCountry(country),
			})
		}
	}

	metricBotsDetectedTotal.WithLabelValues(kindIP).Add(float64(len(verdicts.BotIPs)))
	metricBotsDetectedTotal.WithLabelValues(kindCountry).Add(float64(len(verdicts.BotCountries)))

	return verdicts
}

// HasBurst reports whether any two consecutive instants are closer than window.
// instants must be ascending. Fewer than two instants is never a burst.
func HasBurst(instants []time.Time, window time.Duration) bool {
	for i := 1; i < len(instants); i++ {
		if instants[i].Sub(instants[i-1]) < window {
			return true
		}
	}
	return false
}
