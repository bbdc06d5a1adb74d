package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"reflect"
	"strings"
	"sync"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	logName       = "e2e-001-volume-and-burst.log"
	requestsOfBot = 150
	garbageLines  = 7
	shuffleSeed   = 20240101
)

var (
	baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// ip, country, request count, gap between requests
	clients = []client{
		{ip: "10.0.0.1", country: "US", requests: requestsOfBot, gap: 20 * time.Second}, // volume + burst
		{ip: "10.0.0.2", country: "FR", requests: requestsOfBot, gap: 90 * time.Second}, // volume only
		{ip: "10.0.0.3", country: "US", requests: 60, gap: time.Second},                // burst only
		{ip: "10.0.0.4", country: "DE", requests: 100, gap: time.Second},               // exactly at threshold
		{ip: "10.0.0.5", country: "DE", requests: 1, gap: 0},
	}
	userAgents = []string{
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
		"curl/7.88.1",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
	}
)

// ### End - fixed configs

type client struct {
	ip       string
	country  string
	requests int
	gap      time.Duration
}

type report struct {
	TotalLines        int            `json:"totalLines"`
	ParsedRecords     int            `json:"parsedRecords"`
	UniqueIPs         int            `json:"uniqueIps"`
	RequestsByCountry map[string]int `json:"requestsByCountry"`
	Verdicts          struct {
		BotIPs []struct {
			IP         string   `json:"ip"`
			Timestamps []string `json:"timestamps"`
		} `json:"botIps"`
		VolumeBotIPs []string `json:"volumeBotIps"`
		BotCountries []struct {
			CountryCode  string `json:"countryCode"`
			RequestCount int    `json:"requestCount"`
		} `json:"botCountries"`
	} `json:"verdicts"`
	ParseFailures []struct {
		LineNumber int `json:"lineNumber"`
	} `json:"parseFailures"`
}

// main runs the e2e scenario: 001_volume_and_burst_bots
//
// This scenario generates a deterministic, shuffled access log mixing a bot, a volume-only
// client, a burst-only client, a client exactly at the threshold and garbage lines. It then
// drives every analysis route of a running server.
//
// What it tests:
//   - Upload via PUT /logs/{name}?overwrite=true
//   - Stored log analysis via GET /logs/{name}/report
//   - Ad-hoc analysis via POST /analyses, sent in parallel
//   - Arrival order does not matter: timestamps are shuffled before upload
//
// Expected results:
//   - Bot IPs: [10.0.0.1]
//   - Volume bot IPs: [10.0.0.1, 10.0.0.2]
//   - Bot countries: DE(101), FR(150), US(210)
//   - Every parallel POST /analyses report agrees with the stored-log report
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the bot analytics API server
	parallel := 4                      // Number of concurrent POST /analyses requests

	fmt.Println("Starting e2e scenario: 001_volume_and_burst_bots")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Println()

	body := generateLog()
	fmt.Printf("Generated %d lines\n", strings.Count(body, "\n"))

	status, _, err := do(http.MethodPut, baseURL+"/logs/"+logName+"?overwrite=true", body)
	if err != nil || status != http.StatusCreated {
		fail("upload failed: status %d: %v", status, err)
	}
	fmt.Println("Uploaded", logName)

	status, data, err := do(http.MethodGet, baseURL+"/logs/"+logName+"/report", "")
	if err != nil || status != http.StatusOK {
		fail("stored log report failed: status %d: %v", status, err)
	}
	var stored report
	if err := json.Unmarshal(data, &stored); err != nil {
		fail("invalid report: %v", err)
	}
	verify(stored)
	fmt.Println("Stored log report verified")

	var wg sync.WaitGroup
	errs := make(chan error, parallel)
	for i := 0; i < parallel; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, data, err := do(http.MethodPost, baseURL+"/analyses", body)
			if err != nil || status != http.StatusOK {
				errs <- fmt.Errorf("POST /analyses: status %d: %v", status, err)
				return
			}
			var adhoc report
			if err := json.Unmarshal(data, &adhoc); err != nil {
				errs <- err
				return
			}
			if !reflect.DeepEqual(adhoc, stored) {
				errs <- fmt.Errorf("POST /analyses report differs from stored log report")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		fail("%v", err)
	}

	fmt.Println()
	fmt.Println("=== Statistics ===")
	fmt.Printf("Total lines: %d\n", stored.TotalLines)
	fmt.Printf("Parsed records: %d\n", stored.ParsedRecords)
	fmt.Printf("Unique IPs: %d\n", stored.UniqueIPs)
	fmt.Printf("Bot IPs: %d\n", len(stored.Verdicts.BotIPs))
	fmt.Printf("Parallel analyses: %d\n", parallel)
	fmt.Println("Scenario completed successfully")
}

func verify(r report) {
	expectedRecords := 0
	for _, c := range clients {
		expectedRecords += c.requests
	}
	check(r.ParsedRecords == expectedRecords, "parsed records: got %d, want %d", r.ParsedRecords, expectedRecords)
	check(r.TotalLines == expectedRecords+garbageLines, "total lines: got %d", r.TotalLines)
	check(len(r.ParseFailures) == garbageLines, "parse failures: got %d, want %d", len(r.ParseFailures), garbageLines)
	check(r.UniqueIPs == len(clients), "unique ips: got %d", r.UniqueIPs)

	check(len(r.Verdicts.BotIPs) == 1 && r.Verdicts.BotIPs[0].IP == "10.0.0.1", "bot ips: got %+v", r.Verdicts.BotIPs)
	if len(r.Verdicts.BotIPs) == 1 {
		ts := r.Verdicts.BotIPs[0].Timestamps
		check(len(ts) == requestsOfBot && ts[0] == baseTime.Format("02/01/2006:15:04:05"), "bot timestamps not sorted")
	}
	check(reflect.DeepEqual(r.Verdicts.VolumeBotIPs, []string{"10.0.0.1", "10.0.0.2"}), "volume bot ips: got %v", r.Verdicts.VolumeBotIPs)

	countries := make(map[string]int)
	for _, c := range r.Verdicts.BotCountries {
		countries[c.CountryCode] = c.RequestCount
	}
	check(reflect.DeepEqual(countries, map[string]int{"US": 210, "FR": 150, "DE": 101}), "bot countries: got %v", countries)
}

// generateLog writes every client's lines and the garbage, then shuffles them deterministically.
func generateLog() string {
	var lines []string
	for _, c := range clients {
		for i := 0; i < c.requests; i++ {
			at := baseTime.Add(time.Duration(i) * c.gap)
			lines = append(lines, fmt.Sprintf(`%s - %s - [%s] "GET /page/%d HTTP/1.1" 200 %d "-" "%s" %d`,
				c.ip, c.country, at.Format("02/01/2006:15:04:05"), i%9, 256+i, userAgents[i%len(userAgents)], 5+i%40))
		}
	}
	for i := 0; i < garbageLines; i++ {
		lines = append(lines, fmt.Sprintf("corrupted entry %d", i))
	}

	// Linear congruential shuffle keeps the order stable across runs
	state := uint64(shuffleSeed)
	for i := len(lines) - 1; i > 0; i-- {
		state = state*6364136223846793005 + 1442695040888963407
		j := int(state>>33) % (i + 1)
		lines[i], lines[j] = lines[j], lines[i]
	}
	return strings.Join(lines, "\n") + "\n"
}

func do(method, url, body string) (int, []byte, error) {
	req, err := http.NewRequest(method, url, bytes.NewReader([]byte(body)))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	client := &http.Client{
		Timeout: 30 * time.Second,
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	return resp.StatusCode, data, err
}

func check(ok bool, format string, args ...any) {
	if !ok {
		fail(format, args...)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}
