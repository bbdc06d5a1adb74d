package aggregators

import (
	"sort"
	"time"

	"bot-analytics/internal/models"
)

// ActivitySnapshot is the read-only view of a finalized ActivityIndex. Accessors return
// copies, so callers cannot mutate the snapshot.
type ActivitySnapshot struct {
	byIP              map[string]*ipActivity
	byCountry         map[string]int
	instants          map[string][]time.Time // only IPs whose timestamps all parsed
	timestampFailures []models.TimestampFailure
	totalRequests     int
}

func (s *ActivitySnapshot) CountForIP(ip string) int {
	if activity, ok := s.byIP[ip]; ok {
		return activity.count
	}
	return 0
}

func (s *ActivitySnapshot) CountForCountry(country string) int {
	return s.byCountry[country]
}

// TimestampsForIP returns the IP's timestamps, ascending unless IsSorted is false.
func (s *ActivitySnapshot) TimestampsForIP(ip string) []string {
	activity, ok := s.byIP[ip]
	if !ok {
		return nil
	}
	return append([]string(nil), activity.timestamps...)
}

// UserAgentsForIP returns the IP's user agents in arrival order, duplicates included.
func (s *ActivitySnapshot) UserAgentsForIP(ip string) []string {
	activity, ok := s.byIP[ip]
	if !ok {
		return nil
	}
	return append([]string(nil), activity.userAgents...)
}

// InstantsForIP returns the parsed, ascending instants for ip. ok is false when the IP is
// unknown or one of its timestamps failed to parse.
func (s *ActivitySnapshot) InstantsForIP(ip string) (instants []time.Time, ok bool) {
	instants, ok = s.instants[ip]
	if !ok {
		return nil, false
	}
	return append([]time.Time(nil), instants...), true
}

// IsSorted reports whether the IP's timestamps were parsed and sorted.
func (s *ActivitySnapshot) IsSorted(ip string) bool {
	_, ok := s.instants[ip]
	return ok
}

// IPs returns every IP in ascending order.
func (s *ActivitySnapshot) IPs() []string {
	ips := make([]string, 0, len(s.byIP))
	for ip := range s.byIP {
		ips = append(ips, ip)
	}
	sort.Strings(ips)
	return ips
}

// Countries returns every country code in ascending order.
func (s *ActivitySnapshot) Countries() []string {
	countries := make([]string, 0, len(s.byCountry))
	for country := range s.byCountry {
		countries = append(countries, country)
	}
	sort.Strings(countries)
	return countries
}

func (s *ActivitySnapshot) RequestsByCountry() map[string]int {
	counts := make(map[string]int, len(s.byCountry))
	for country, count := range s.byCountry {
		counts[country] = count
	}
	return counts
}

// TotalRequests is the sum of all per-IP counts.
func (s *ActivitySnapshot) TotalRequests() int {
	return s.totalRequests
}

func (s *ActivitySnapshot) TimestampFailures() []models.TimestampFailure {
	return append([]models.TimestampFailure(nil), s.timestampFailures...)
}
