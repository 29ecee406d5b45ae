package calculator

import "math"

// CalculateEMA returns the exponential moving average of the values with
// smoothing factor 2/(span+1). The first output equals the first input, so
// there is no warm-up region. An invalid span yields an all-NaN series.
func CalculateEMA(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	if span <= 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	if len(values) == 0 {
		return out
	}

	alpha := 2.0 / float64(span+1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}
