package strategy

import (
	"math"
	"sort"
)

// baseEvents holds the final-bar event detections feeding the scoring table.
// Every field defaults to "not triggered"; NaN inputs fail the comparisons
// and therefore never trigger anything.
type baseEvents struct {
	vwapReclaim  bool
	vwapReject   bool
	rsiSnap      bool
	rsiDownshift bool
	macdTurnUp   bool
	macdTurnDown bool
	volumeOK     bool
}

// at returns series[idx], or NaN when idx is out of range.
func at(series []float64, idx int) float64 {
	if idx < 0 || idx >= len(series) {
		return math.NaN()
	}
	return series[idx]
}

// detectVWAPEvents checks for a reclaim (close below VWAP 3 or 5 bars ago,
// above it now, with the prior bar at/below) and the mirrored rejection.
func detectVWAPEvents(closes, vwap []float64) (reclaim, reject bool) {
	n := len(closes)

	wasBelow := at(closes, n-4) < at(vwap, n-4) || at(closes, n-6) < at(vwap, n-6)
	crossedUp := at(closes, n-1) > at(vwap, n-1) && at(closes, n-2) <= at(vwap, n-2)
	reclaim = wasBelow && crossedUp

	wasAbove := at(closes, n-4) > at(vwap, n-4) || at(closes, n-6) > at(vwap, n-6)
	crossedDown := at(closes, n-1) < at(vwap, n-1) && at(closes, n-2) >= at(vwap, n-2)
	reject = wasAbove && crossedDown
	return reclaim, reject
}

// detectRSIEvents checks the fast RSI for an upward cross through 25 or 30
// (snapback) and a downward cross through 70 or 75 (downshift).
func detectRSIEvents(rsiFast []float64) (snap, downshift bool) {
	n := len(rsiFast)
	cur := at(rsiFast, n-1)
	prev := at(rsiFast, n-2)
	snap = (cur >= 30 && prev < 30) || (cur >= 25 && prev < 25)
	downshift = (cur <= 70 && prev > 70) || (cur <= 75 && prev > 75)
	return snap, downshift
}

// detectMACDTurn checks for two consecutive rising (resp. falling)
// bar-to-bar histogram steps.
func detectMACDTurn(hist []float64) (up, down bool) {
	n := len(hist)
	up = at(hist, n-1) > at(hist, n-2) && at(hist, n-2) > at(hist, n-3)
	down = at(hist, n-1) < at(hist, n-2) && at(hist, n-2) < at(hist, n-3)
	return up, down
}

// confirmVolume checks the final bar against the trailing 30-bar median
// (window includes the final bar). The median needs at least 10 samples;
// with fewer, confirmation fails.
func confirmVolume(volumes []float64, multiplier float64) bool {
	n := len(volumes)
	start := n - 30
	if start < 0 {
		start = 0
	}
	window := volumes[start:]
	if len(window) < 10 {
		return false
	}
	med := median(window)
	return volumes[n-1] >= multiplier*med
}

// median interpolates between the two middle values for even-sized input.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// lastFlagged returns the most recent value whose mask bit is set.
func lastFlagged(values []float64, mask []bool) (float64, bool) {
	for i := len(mask) - 1; i >= 0; i-- {
		if mask[i] {
			return values[i], true
		}
	}
	return 0, false
}

// minTail returns the minimum over the last `window` values.
func minTail(values []float64, window int) float64 {
	start := len(values) - window
	if start < 0 {
		start = 0
	}
	min := math.Inf(1)
	for _, v := range values[start:] {
		if v < min {
			min = v
		}
	}
	return min
}

// maxTail returns the maximum over the last `window` values.
func maxTail(values []float64, window int) float64 {
	start := len(values) - window
	if start < 0 {
		start = 0
	}
	max := math.Inf(-1)
	for _, v := range values[start:] {
		if v > max {
			max = v
		}
	}
	return max
}
