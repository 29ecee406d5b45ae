package calculator

import (
	"math"

	"ScalpRadar/internal/model"
)

// Side selects the direction of an order-block search.
type Side string

const (
	Bullish Side = "bull"
	Bearish Side = "bear"
)

// FindOrderBlock searches the last `lookback` bars, backward, for the most
// recent opposite-colored candle followed within 1-3 bars by a close beyond
// that candle's extreme with a close-to-close move larger than the ATR at the
// candidate bar. The ATR is deliberately anchored at the candidate, not the
// breakout bar, so the displacement test reflects the volatility regime the
// block formed in.
//
// atr must be aligned with bars (atr[i] belongs to bars[i]). Candidates whose
// ATR is non-finite or zero are skipped. Returns nil when nothing qualifies.
func FindOrderBlock(bars []model.Bar, atr []float64, side Side, lookback int) *model.Zone {
	if len(bars) < 10 || len(atr) != len(bars) {
		return nil
	}
	if start := len(bars) - lookback; start > 0 {
		bars = bars[start:]
		atr = atr[start:]
	}
	n := len(bars)

	for i := n - 4; i >= 0; i-- {
		a := atr[i]
		if math.IsNaN(a) || math.IsInf(a, 0) || a == 0 {
			continue
		}
		switch side {
		case Bullish:
			if bars[i].Close >= bars[i].Open {
				continue
			}
			for j := i + 1; j < n && j <= i+3; j++ {
				if bars[j].Close > bars[i].High && bars[j].Close-bars[i].Close > a {
					z := model.NewZone(bars[i].Low, bars[i].Open, bars[i].Time)
					return &z
				}
			}
		case Bearish:
			if bars[i].Close <= bars[i].Open {
				continue
			}
			for j := i + 1; j < n && j <= i+3; j++ {
				if bars[j].Close < bars[i].Low && bars[i].Close-bars[j].Close > a {
					z := model.NewZone(bars[i].Open, bars[i].High, bars[i].Time)
					return &z
				}
			}
		}
	}
	return nil
}
