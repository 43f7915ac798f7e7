package calculator

import (
	"errors"
	"math"
)

// RollingRSI computes the simple-mean relative strength index over the given
// window, aligned 1:1 with the input. The average gain and loss are plain
// rolling means of the close-to-close deltas, so the first defined value sits
// at index `window` (the first delta exists at index 1).
//
// Degenerate cases never leak NaN: zero average loss with gains present
// yields 100, and flat prices (zero gain and zero loss) yield the neutral 50.
func RollingRSI(prices []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}
	out := make([]float64, len(prices))
	for i := range out {
		out[i] = math.NaN()
	}

	gains := make([]float64, len(prices))
	losses := make([]float64, len(prices))
	var gainSum, lossSum float64

	for i := 1; i < len(prices); i++ {
		delta := prices[i] - prices[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
		gainSum += gains[i]
		lossSum += losses[i]
		if i > window {
			gainSum -= gains[i-window]
			lossSum -= losses[i-window]
		}
		if i < window {
			continue
		}

		avgGain := gainSum / float64(window)
		avgLoss := lossSum / float64(window)
		switch {
		case avgLoss == 0 && avgGain == 0:
			out[i] = 50.0
		case avgLoss == 0:
			out[i] = 100.0
		default:
			rs := avgGain / avgLoss
			out[i] = 100.0 - 100.0/(1.0+rs)
		}
	}
	return out, nil
}
