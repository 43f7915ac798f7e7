package collector

import (
	"context"
	"time"

	"quantpulse/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Series and Errors are keyed by symbol; symbols absent from both get
// generated bars around BasePrice.
type MockFetcher struct {
	BasePrice float64
	Series    map[string][]model.OHLCV
	Errors    map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ context.Context, symbol string, days int) (*model.PriceSeries, error) {
	if err, ok := m.Errors[symbol]; ok {
		return nil, err
	}
	bars, ok := m.Series[symbol]
	if !ok {
		bars = GenerateMockBars(m.BasePrice, days)
	}
	return &model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}, nil
}

// GenerateMockBars builds a gently trending series of daily bars.
func GenerateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
