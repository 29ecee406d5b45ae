package model

import (
	"math"
	"time"
)

// Point is a single observation of a timestamp-indexed oscillator series.
type Point struct {
	Time  time.Time
	Value float64
}

// Series is an ordered sequence of observations with strictly increasing
// timestamps. Oscillator series are sourced independently of the bar series
// and may be sparser than it.
type Series []Point

// ReindexFFill projects the series onto the given timestamps, carrying the
// last known value forward. Timestamps before the first observation map to
// NaN. The receiver is not modified.
func (s Series) ReindexFFill(times []time.Time) []float64 {
	out := make([]float64, len(times))
	last := math.NaN()
	j := 0
	for i, t := range times {
		for j < len(s) && !s[j].Time.After(t) {
			last = s[j].Value
			j++
		}
		out[i] = last
	}
	return out
}

// Last returns the most recent observation. ok is false for an empty series.
func (s Series) Last() (Point, bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	return s[len(s)-1], true
}
