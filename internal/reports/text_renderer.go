package reports

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"bot-analytics/internal/models"
	"bot-analytics/internal/shared/ulid"

	"github.com/mileusna/useragent"
)

type TextRenderer interface {
	// Render writes a human readable report. Bot countries come first, then one block per bot IP.
	Render(w io.Writer, report *models.AnalysisReport) error
}

type textRenderer struct {
	showFailures bool
}

func NewTextRenderer(showFailures bool) TextRenderer {
	return &textRenderer{showFailures: showFailures}
}

func (r *textRenderer) Render(w io.Writer, report *models.AnalysisReport) error {
	p := &printer{w: w}

	p.printf("Run %s: %d lines, %d records, %d unique IPs\n",
		report.RunID, report.TotalLines, report.ParsedRecords, report.UniqueIPs)
	if startedAt, err := ulid.Time(report.RunID); err == nil {
		p.printf("Started at: %s\n", startedAt.UTC().Format(time.RFC3339))
	}

	verdicts := report.Verdicts
	if verdicts == nil {
		verdicts = &models.Verdicts{}
	}

	if len(verdicts.BotCountries) == 0 {
		p.printf("No bot locations found.\n")
	} else {
		countries := make([]string, 0, len(verdicts.BotCountries))
		for _, country := range verdicts.BotCountries {
			countries = append(countries, country.CountryCode)
		}
		p.printf("Bot Locations: %s\n", bracketList(countries))
	}

	if len(verdicts.BotIPs) == 0 {
		p.printf("No bot IPs found.\n")
	}
	for _, bot := range verdicts.BotIPs {
		p.printf("Bot's IP Address: %s\n", bot.IP)
		p.printf("Bot's Timestamps: %s\n", bracketList(bot.Timestamps))
		p.printf("Bot's user agent: %s\n", bracketList(bot.UserAgents))
		p.printf("Bot's user agent families: %s\n", familySummary(bot.UserAgents))
	}

	if r.showFailures {
		for _, failure := range report.ParseFailures {
			p.printf("Skipped line %d: %s\n", failure.LineNumber, failure.Line)
		}
		for _, failure := range report.TimestampFailures {
			p.printf("Unsortable timestamp for %s: %s\n", failure.IP, failure.Timestamp)
		}
	} else if n := len(report.ParseFailures) + len(report.TimestampFailures); n > 0 {
		p.printf("%d lines skipped or left unsorted\n", n)
	}

	return p.err
}

// printer remembers the first write error so Render can report it once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func bracketList(values []string) string {
	return "[" + strings.Join(values, ", ") + "]"
}

// familySummary counts user agents per browser or bot family, e.g. "Googlebot(3), curl(2)".
func familySummary(userAgents []string) string {
	counts := make(map[string]int)
	for _, ua := range userAgents {
		counts[normalizeUserAgent(ua)]++
	}

	families := make([]string, 0, len(counts))
	for family := range counts {
		families = append(families, family)
	}
	sort.Strings(families)

	parts := make([]string, 0, len(families))
	for _, family := range families {
		parts = append(parts, fmt.Sprintf("%s(%d)", family, counts[family]))
	}
	return strings.Join(parts, ", ")
}

// normalizeUserAgent parses user agent to extract family, or returns original if parsing fails.
func normalizeUserAgent(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}
