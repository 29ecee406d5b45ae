package calculator

import (
	"math"

	"ScalpRadar/internal/model"
)

// CalculateATR returns the rolling mean of the true range over exactly
// `period` bars. True range is max(high-low, |high-prevClose|, |low-prevClose|);
// the first bar has no previous close and uses high-low. Values are NaN until
// `period` bars of history exist, and the whole series is NaN for an invalid
// period.
func CalculateATR(bars []model.Bar, period int) []float64 {
	out := make([]float64, len(bars))
	if period <= 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}

	tr := make([]float64, len(bars))
	for i, b := range bars {
		if i == 0 {
			tr[0] = b.High - b.Low
			continue
		}
		prevClose := bars[i-1].Close
		tr[i] = math.Max(b.High-b.Low,
			math.Max(math.Abs(b.High-prevClose), math.Abs(b.Low-prevClose)))
	}

	var sum float64
	for i := range bars {
		sum += tr[i]
		if i >= period {
			sum -= tr[i-period]
		}
		if i < period-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = sum / float64(period)
	}
	return out
}
