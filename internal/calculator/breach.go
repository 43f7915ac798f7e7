package calculator

import (
	"math"

	"quantpulse/internal/model"
)

// ClassifyBreach compares the last close price against the last MA value.
// Returns BreachUnknown when the series is empty or the MA never filled.
func ClassifyBreach(series *model.PriceSeries, ma []float64) model.BreachStatus {
	lastClose, ok := series.LastClose()
	if !ok || len(ma) == 0 {
		return model.BreachUnknown
	}
	return classifyLast(lastClose, ma[len(ma)-1])
}

// BreachFromIndicators derives the breach status from an already-computed
// overlay, so callers holding an IndicatorSeries need not rebuild the MA.
func BreachFromIndicators(series *model.PriceSeries, ind *model.IndicatorSeries) model.BreachStatus {
	lastClose, ok := series.LastClose()
	if !ok || len(ind.Points) == 0 {
		return model.BreachUnknown
	}
	lastMA := ind.Points[len(ind.Points)-1].MA200
	if lastMA == nil {
		return model.BreachUnknown
	}
	return classifyLast(lastClose, *lastMA)
}

func classifyLast(lastClose, lastMA float64) model.BreachStatus {
	if math.IsNaN(lastMA) {
		return model.BreachUnknown
	}
	if lastClose < lastMA {
		return model.BreachBelowMA
	}
	return model.BreachAtOrAboveMA
}
