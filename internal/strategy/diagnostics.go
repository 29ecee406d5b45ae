package strategy

import (
	"ScalpRadar/internal/calculator"
	"ScalpRadar/internal/model"
)

// proDiagnostics holds the structure detections of the pro tier. They are
// computed on every evaluation so the extras map is always complete; the
// extra scoring and the trigger requirement apply only in pro mode.
type proDiagnostics struct {
	trendLongOK  bool
	trendShortOK bool

	priorSwingHigh float64
	priorSwingLow  float64
	bullSweep      bool
	bearSweep      bool

	bullFVG *model.Zone
	bearFVG *model.Zone

	bullOB       *model.Zone
	bearOB       *model.Zone
	bullOBRetest bool
	bearOBRetest bool

	displacement bool
}

func computeProDiagnostics(bars []model.Bar, atr14, ema20, ema50, closes, highs, lows []float64, lastPrice, atrLast float64) proDiagnostics {
	n := len(bars)
	var d proDiagnostics

	d.trendLongOK = at(closes, n-1) >= at(ema20, n-1) && at(ema20, n-1) >= at(ema50, n-1)
	d.trendShortOK = at(closes, n-1) <= at(ema20, n-1) && at(ema20, n-1) <= at(ema50, n-1)

	// Liquidity reference: latest flagged swing, else the 30-bar trailing
	// extreme (a wider fallback than the 12-bar stop anchor).
	if v, ok := lastFlagged(highs, calculator.SwingHighs(highs, swingWing, swingWing)); ok {
		d.priorSwingHigh = v
	} else {
		d.priorSwingHigh = maxTail(highs, 30)
	}
	if v, ok := lastFlagged(lows, calculator.SwingLows(lows, swingWing, swingWing)); ok {
		d.priorSwingLow = v
	} else {
		d.priorSwingLow = minTail(lows, 30)
	}
	d.bullSweep = at(lows, n-1) < d.priorSwingLow && at(closes, n-1) > d.priorSwingLow
	d.bearSweep = at(highs, n-1) > d.priorSwingHigh && at(closes, n-1) < d.priorSwingHigh

	fvgWindow := bars
	if n > fvgLookback {
		fvgWindow = bars[n-fvgLookback:]
	}
	d.bullFVG, d.bearFVG = calculator.DetectFairValueGaps(fvgWindow)

	d.bullOB = calculator.FindOrderBlock(bars, atr14, calculator.Bullish, obLookback)
	d.bearOB = calculator.FindOrderBlock(bars, atr14, calculator.Bearish, obLookback)

	buffer := 0.25 * atrLast
	if d.bullOB != nil {
		d.bullOBRetest = calculator.InZone(lastPrice, d.bullOB.Low, d.bullOB.High, buffer)
	}
	if d.bearOB != nil {
		d.bearOBRetest = calculator.InZone(lastPrice, d.bearOB.Low, d.bearOB.High, buffer)
	}

	lastRange := at(highs, n-1) - at(lows, n-1)
	d.displacement = atrLast > 0 && lastRange >= 1.5*atrLast

	return d
}

// extras flattens the diagnostics into the result's key/value map.
func (d proDiagnostics) extras(ema20Last, ema50Last, atrLast float64) map[string]any {
	return map[string]any{
		"ema20":                ema20Last,
		"ema50":                ema50Last,
		"trend_long_ok":        d.trendLongOK,
		"trend_short_ok":       d.trendShortOK,
		"prior_swing_high":     d.priorSwingHigh,
		"prior_swing_low":      d.priorSwingLow,
		"bull_liquidity_sweep": d.bullSweep,
		"bear_liquidity_sweep": d.bearSweep,
		"bull_fvg":             d.bullFVG,
		"bear_fvg":             d.bearFVG,
		"bull_ob":              d.bullOB,
		"bear_ob":              d.bearOB,
		"bull_ob_retest":       d.bullOBRetest,
		"bear_ob_retest":       d.bearOBRetest,
		"displacement":         d.displacement,
		"atr14":                atrLast,
	}
}
