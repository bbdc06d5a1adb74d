package models

// IPVerdict is the classification of a single client IP.
type IPVerdict struct {
	IP           string   `json:"ip"`
	RequestCount int      `json:"requestCount"`
	VolumeBot    bool     `json:"volumeBot"`
	BurstBot     bool     `json:"burstBot"`
	Timestamps   []string `json:"timestamps"`
	UserAgents   []string `json:"userAgents"`
}

// IsBot is the combined verdict: both heuristics must agree.
func (v IPVerdict) IsBot() bool {
	return v.VolumeBot && v.BurstBot
}

// CountryVerdict is the volume-only classification of a country code.
type CountryVerdict struct {
	CountryCode  string `json:"countryCode"`
	RequestCount int    `json:"requestCount"`
}

// Verdicts holds everything the classifier flags for one activity snapshot. It is derived
// data and is recomputed on every classification.
type Verdicts struct {
	BotIPs       []IPVerdict      `json:"botIps"`
	VolumeBotIPs []string         `json:"volumeBotIps"`
	BotCountries []CountryVerdict `json:"botCountries"`
}

// AnalysisReport is the outcome of one ingestion run over a sequence of access-log lines.
//
// Example JSON:
//
//	{
//	  "runId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "totalLines": 203,
//	  "parsedRecords": 202,
//	  "uniqueIps": 2,
//	  "requestsByCountry": {"FR": 101, "US": 101},
//	  "verdicts": {
//	    "botIps": [{
//	      "ip": "10.0.0.2",
//	      "requestCount": 101,
//	      "volumeBot": true,
//	      "burstBot": true,
//	      "timestamps": ["01/01/2024:00:00:00", "01/01/2024:00:00:30"],
//	      "userAgents": ["curl/7.88.1", "curl/7.88.1"]
//	    }],
//	    "volumeBotIps": ["10.0.0.1", "10.0.0.2"],
//	    "botCountries": [{"countryCode": "FR", "requestCount": 101}]
//	  },
//	  "parseFailures": [{"lineNumber": 7, "line": "garbage"}],
//	  "timestampFailures": []
//	}
//
// Timestamps and user agents are truncated in the example.
type AnalysisReport struct {
	RunID             string             `json:"runId"`
	TotalLines        int                `json:"totalLines"`
	ParsedRecords     int                `json:"parsedRecords"`
	UniqueIPs         int                `json:"uniqueIps"`
	RequestsByCountry map[string]int     `json:"requestsByCountry"`
	Verdicts          *Verdicts          `json:"verdicts"`
	ParseFailures     []ParseFailure     `json:"parseFailures"`
	TimestampFailures []TimestampFailure `json:"timestampFailures"`
}
