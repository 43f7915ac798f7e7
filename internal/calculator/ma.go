package calculator

import (
	"errors"
	"math"
)

// Default indicator windows used across the dashboard.
const (
	MAWindow  = 200
	RSIWindow = 14
)

// RollingMean computes the simple moving average of prices over the given
// window, aligned 1:1 with the input. Entries before the window has filled
// are NaN; a short series is an expected state, not an error.
func RollingMean(prices []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}
	out := make([]float64, len(prices))
	sum := 0.0
	for i, p := range prices {
		sum += p
		if i >= window {
			sum -= prices[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		} else {
			out[i] = math.NaN()
		}
	}
	return out, nil
}
