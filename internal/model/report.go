package model

import "time"

// TickerResult is the per-symbol outcome of a watchlist scan. A fetch or
// computation failure marks the entry failed without affecting other symbols.
type TickerResult struct {
	Symbol    string       `json:"symbol"`
	Status    BreachStatus `json:"status"`
	LastClose *float64     `json:"last_close,omitempty"`
	MA200     *float64     `json:"ma200,omitempty"`
	Failed    bool         `json:"failed"`
	Error     string       `json:"error,omitempty"`
}

// ScanReport collects the results of one full watchlist scan.
type ScanReport struct {
	ID         string         `json:"id"`
	StartedAt  time.Time      `json:"started_at"`
	DurationMS int64          `json:"duration_ms"`
	Results    []TickerResult `json:"results"`
}
