// Package oscillator derives the momentum series the strategy engine consumes
// (fast/slow RSI and the MACD histogram) from a bar series, for callers that
// have no oscillator vendor. Each series starts at the indicator's first
// defined bar, so it is genuinely sparser than the bar index and exercises the
// engine's forward-fill reconciliation.
package oscillator

import (
	"github.com/markcheno/go-talib"

	"ScalpRadar/internal/model"
)

// Standard periods used by the scanner.
const (
	FastRSIPeriod = 5
	SlowRSIPeriod = 14

	macdFastPeriod   = 12
	macdSlowPeriod   = 26
	macdSignalPeriod = 9
)

// RSI returns the timestamp-indexed RSI of the closes. Nil when there is not
// enough history for a single defined value.
func RSI(bars []model.Bar, period int) model.Series {
	if period <= 0 || len(bars) <= period {
		return nil
	}
	values := talib.Rsi(model.Closes(bars), period)
	out := make(model.Series, 0, len(bars)-period)
	for i := period; i < len(bars); i++ {
		out = append(out, model.Point{Time: bars[i].Time, Value: values[i]})
	}
	return out
}

// MACDHistogram returns the timestamp-indexed MACD(12,26,9) histogram of the
// closes. Nil when there is not enough history.
func MACDHistogram(bars []model.Bar) model.Series {
	warmup := macdSlowPeriod + macdSignalPeriod - 2 // first defined histogram index
	if len(bars) <= warmup {
		return nil
	}
	_, _, hist := talib.Macd(model.Closes(bars), macdFastPeriod, macdSlowPeriod, macdSignalPeriod)
	out := make(model.Series, 0, len(bars)-warmup)
	for i := warmup; i < len(bars); i++ {
		out = append(out, model.Point{Time: bars[i].Time, Value: hist[i]})
	}
	return out
}
