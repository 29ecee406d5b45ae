package calculator

// SwingLows flags the positions that hold the minimum of the symmetric window
// [i-left, i+right]. Positions without full context on both sides are never
// flagged.
func SwingLows(values []float64, left, right int) []bool {
	return swings(values, left, right, func(v, best float64) bool { return v < best })
}

// SwingHighs flags the positions that hold the maximum of the symmetric
// window [i-left, i+right].
func SwingHighs(values []float64, left, right int) []bool {
	return swings(values, left, right, func(v, best float64) bool { return v > best })
}

func swings(values []float64, left, right int, beats func(v, best float64) bool) []bool {
	out := make([]bool, len(values))
	if left < 0 || right < 0 {
		return out
	}
	for i := left; i < len(values)-right; i++ {
		best := values[i-left]
		for j := i - left + 1; j <= i+right; j++ {
			if beats(values[j], best) {
				best = values[j]
			}
		}
		out[i] = values[i] == best
	}
	return out
}
