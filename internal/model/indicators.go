package model

// IndicatorPoint holds the derived values for one bar. A nil field means the
// rolling window behind that indicator has not filled yet.
type IndicatorPoint struct {
	MA200 *float64 `json:"ma200"`
	RSI14 *float64 `json:"rsi14"`
}

// IndicatorSeries is aligned 1:1 with the price series it was computed from.
type IndicatorSeries struct {
	Points []IndicatorPoint `json:"points"`
}

// BreachStatus classifies the last close against the last defined MA200 value.
type BreachStatus string

const (
	BreachBelowMA     BreachStatus = "BELOW_MA"
	BreachAtOrAboveMA BreachStatus = "AT_OR_ABOVE_MA"
	BreachUnknown     BreachStatus = "UNKNOWN"
)
