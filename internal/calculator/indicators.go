package calculator

import (
	"fmt"
	"math"

	"quantpulse/internal/model"
)

// ComputeIndicators derives the MA200 and RSI14 overlays for a price series.
// The result has one point per bar; NaN warm-up values become nil pointers so
// they serialize as JSON null for the chart.
func ComputeIndicators(series *model.PriceSeries) (*model.IndicatorSeries, error) {
	closes := series.Closes()

	ma, err := RollingMean(closes, MAWindow)
	if err != nil {
		return nil, fmt.Errorf("rolling mean: %w", err)
	}
	rsi, err := RollingRSI(closes, RSIWindow)
	if err != nil {
		return nil, fmt.Errorf("rolling rsi: %w", err)
	}

	points := make([]model.IndicatorPoint, len(closes))
	for i := range closes {
		points[i] = model.IndicatorPoint{
			MA200: floatPtr(ma[i]),
			RSI14: floatPtr(rsi[i]),
		}
	}
	return &model.IndicatorSeries{Points: points}, nil
}

func floatPtr(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
