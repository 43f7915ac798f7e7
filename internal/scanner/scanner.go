package scanner

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"quantpulse/internal/calculator"
	"quantpulse/internal/collector"
	"quantpulse/internal/metrics"
	"quantpulse/internal/model"
)

// Scanner evaluates every watchlist symbol against its 200-day moving average.
type Scanner struct {
	Fetcher      collector.Fetcher
	Metrics      *metrics.Metrics
	LookbackDays int
}

// NewScanner creates a Scanner. lookbackDays is the per-symbol fetch window;
// 250 trading days covers one year plus the MA200 warm-up tail.
func NewScanner(fetcher collector.Fetcher, m *metrics.Metrics, lookbackDays int) *Scanner {
	if lookbackDays <= 0 {
		lookbackDays = 250
	}
	return &Scanner{Fetcher: fetcher, Metrics: m, LookbackDays: lookbackDays}
}

// Scan fetches and classifies each symbol in order. A failure for one symbol
// marks only that entry failed; the scan always covers the whole list.
func (s *Scanner) Scan(ctx context.Context, symbols []string) *model.ScanReport {
	start := time.Now()
	report := &model.ScanReport{
		ID:        uuid.NewString(),
		StartedAt: start,
		Results:   make([]model.TickerResult, 0, len(symbols)),
	}
	for _, sym := range symbols {
		report.Results = append(report.Results, s.scanOne(ctx, sym))
	}
	report.DurationMS = time.Since(start).Milliseconds()

	s.Metrics.ScansTotal.Inc()
	s.Metrics.ScanDuration.Observe(time.Since(start).Seconds())
	log.Printf("[INFO] scan %s: %d symbols in %dms", report.ID, len(symbols), report.DurationMS)
	return report
}

func (s *Scanner) scanOne(ctx context.Context, symbol string) model.TickerResult {
	fetchStart := time.Now()
	series, err := s.Fetcher.FetchDailyBars(ctx, symbol, s.LookbackDays)
	s.Metrics.FetchDuration.Observe(time.Since(fetchStart).Seconds())
	if err == nil && len(series.Bars) == 0 {
		err = fmt.Errorf("provider returned empty series")
	}
	if err != nil {
		log.Printf("[WARN] scan %s: %v", symbol, err)
		s.Metrics.FetchFailures.WithLabelValues(symbol).Inc()
		return model.TickerResult{
			Symbol: symbol,
			Status: model.BreachUnknown,
			Failed: true,
			Error:  err.Error(),
		}
	}

	ma, err := calculator.RollingMean(series.Closes(), calculator.MAWindow)
	if err != nil {
		log.Printf("[WARN] scan %s: rolling mean: %v", symbol, err)
		return model.TickerResult{
			Symbol: symbol,
			Status: model.BreachUnknown,
			Failed: true,
			Error:  err.Error(),
		}
	}

	result := model.TickerResult{
		Symbol: symbol,
		Status: calculator.ClassifyBreach(series, ma),
	}
	if lastClose, ok := series.LastClose(); ok {
		result.LastClose = &lastClose
	}
	if result.Status != model.BreachUnknown {
		lastMA := ma[len(ma)-1]
		result.MA200 = &lastMA
	}
	return result
}
