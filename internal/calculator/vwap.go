// Package calculator provides stateless indicator primitives over bar series.
// Undefined values (warm-up regions, zero cumulative volume) are NaN, and
// callers are expected to treat NaN comparisons as "not triggered".
package calculator

import (
	"math"

	"ScalpRadar/internal/model"
)

// CalculateVWAP returns the cumulative volume-weighted average of the typical
// price (high+low+close)/3. The value at a bar is NaN while cumulative volume
// is zero.
func CalculateVWAP(bars []model.Bar) []float64 {
	out := make([]float64, len(bars))
	var cumPV, cumVol float64
	for i, b := range bars {
		tp := (b.High + b.Low + b.Close) / 3.0
		cumPV += tp * b.Volume
		cumVol += b.Volume
		if cumVol > 0 {
			out[i] = cumPV / cumVol
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}
