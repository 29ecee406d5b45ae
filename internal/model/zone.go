package model

import "time"

// Zone is a price band used for order blocks and fair-value gaps.
// Low <= High always holds.
type Zone struct {
	Low  float64
	High float64
	Time time.Time // anchor bar timestamp, zero when not applicable
}

// NewZone builds a Zone from two prices in either order.
func NewZone(a, b float64, anchor time.Time) Zone {
	if a > b {
		a, b = b, a
	}
	return Zone{Low: a, High: b, Time: anchor}
}

// Width returns the price span of the zone.
func (z Zone) Width() float64 { return z.High - z.Low }
