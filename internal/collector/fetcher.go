package collector

import (
	"context"

	"quantpulse/internal/model"
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchDailyBars(ctx context.Context, symbol string, days int) (*model.PriceSeries, error)
	Name() string
}
