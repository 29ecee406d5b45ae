// Package strategy evaluates intraday scalp setups. Evaluate is a pure
// function over a bar window plus oscillator series: it detects reversal
// events against VWAP/RSI/MACD/volume, layers structural diagnostics on top
// (EMA trend, liquidity sweeps, order blocks, fair-value gaps, displacement),
// scores both sides against a preset, and derives entry/stop/target levels
// for the winning side.
package strategy

import (
	"fmt"
	"math"
	"strings"
	"time"

	"ScalpRadar/internal/calculator"
	"ScalpRadar/internal/model"
	"ScalpRadar/internal/session"
)

const (
	minBars             = 60
	DefaultLookbackBars = 180

	atrPeriod   = 14
	emaFastSpan = 20
	emaSlowSpan = 50
	swingWing   = 3
	fvgLookback = 60
	obLookback  = 35

	stopATRFactor = 0.8
	maxReasons    = 6
)

// Classifier maps a bar timestamp to its trading session.
type Classifier func(time.Time) model.Session

// SessionFilter carries the caller's per-session allow flags.
type SessionFilter struct {
	AllowOpening bool
	AllowMidday  bool
	AllowPower   bool
}

func (f SessionFilter) allows(s model.Session) bool {
	switch s {
	case model.SessionOpening:
		return f.AllowOpening
	case model.SessionMidday:
		return f.AllowMidday
	case model.SessionPower:
		return f.AllowPower
	}
	return false
}

// Input bundles everything one evaluation needs. Inputs are never mutated.
type Input struct {
	Symbol   string
	Bars     []model.Bar
	RSIFast  model.Series
	RSISlow  model.Series
	MACDHist model.Series

	Preset   Preset
	ProMode  bool
	Sessions SessionFilter

	// Classify defaults to session.Classify when nil.
	Classify Classifier

	// LookbackBars defaults to DefaultLookbackBars when <= 0.
	LookbackBars int
}

// Evaluate runs the full scalp pipeline and returns exactly one result.
// It keeps no state between calls; identical inputs yield identical results.
func Evaluate(in Input) *model.ScalpSignal {
	if len(in.Bars) < minBars {
		lastPrice := math.NaN()
		var lastTS time.Time
		if n := len(in.Bars); n > 0 {
			lastPrice = in.Bars[n-1].Close
			lastTS = in.Bars[n-1].Time
		}
		return model.NewNeutral(in.Symbol, 0, "insufficient data",
			lastPrice, lastTS, model.SessionOff, map[string]any{})
	}

	bars := in.Bars
	lookback := in.LookbackBars
	if lookback <= 0 {
		lookback = DefaultLookbackBars
	}
	if len(bars) > lookback {
		bars = bars[len(bars)-lookback:]
	}
	n := len(bars)

	times := model.Times(bars)
	closes := model.Closes(bars)
	highs := model.Highs(bars)
	lows := model.Lows(bars)
	volumes := model.Volumes(bars)

	vwap := calculator.CalculateVWAP(bars)
	atr14 := calculator.CalculateATR(bars, atrPeriod)
	ema20 := calculator.CalculateEMA(closes, emaFastSpan)
	ema50 := calculator.CalculateEMA(closes, emaSlowSpan)

	rsiFast := in.RSIFast.ReindexFFill(times)
	rsiSlow := in.RSISlow.ReindexFFill(times)
	macdHist := in.MACDHist.ReindexFFill(times)

	lastBar := bars[n-1]
	lastPrice := lastBar.Close

	classify := in.Classify
	if classify == nil {
		classify = session.Classify
	}
	sess := classify(lastBar.Time)
	if !in.Sessions.allows(sess) {
		return model.NewNeutral(in.Symbol, 0,
			fmt.Sprintf("Filtered by time-of-day (%s)", sess),
			lastPrice, lastBar.Time, sess, map[string]any{})
	}

	// Base events on the final bar.
	var ev baseEvents
	ev.vwapReclaim, ev.vwapReject = detectVWAPEvents(closes, vwap)
	ev.rsiSnap, ev.rsiDownshift = detectRSIEvents(rsiFast)
	ev.macdTurnUp, ev.macdTurnDown = detectMACDTurn(macdHist)
	ev.volumeOK = confirmVolume(volumes, in.Preset.VolMultiplier)

	// Structural anchors for stop placement: latest flagged swing, else the
	// 12-bar trailing extreme.
	recentSwingLow, ok := lastFlagged(lows, calculator.SwingLows(lows, swingWing, swingWing))
	if !ok {
		recentSwingLow = minTail(lows, 12)
	}
	recentSwingHigh, ok := lastFlagged(highs, calculator.SwingHighs(highs, swingWing, swingWing))
	if !ok {
		recentSwingHigh = maxTail(highs, 12)
	}

	atrLast := at(atr14, n-1)
	if math.IsNaN(atrLast) || math.IsInf(atrLast, 0) {
		atrLast = 0
	}

	diag := computeProDiagnostics(bars, atr14, ema20, ema50, closes, highs, lows, lastPrice, atrLast)
	extras := diag.extras(at(ema20, n-1), at(ema50, n-1), atrLast)

	rsiSlowLast := at(rsiSlow, n-1)

	// Weighted scoring, both sides independently.
	longPoints, shortPoints := 0, 0
	var longReasons, shortReasons []string

	if ev.vwapReclaim {
		longPoints += 35
		longReasons = append(longReasons, "VWAP reclaim")
	}
	if ev.rsiSnap && rsiSlowLast < 60 {
		longPoints += 20
		longReasons = append(longReasons, "RSI-5 snapback (RSI-14 ok)")
	}
	if ev.macdTurnUp {
		longPoints += 20
		longReasons = append(longReasons, "MACD hist turning up")
	}
	if ev.volumeOK {
		longPoints += 15
		longReasons = append(longReasons, "Volume confirmation")
	}
	if at(lows, n-1) > minTail(lows, 12) {
		longPoints += 10
		longReasons = append(longReasons, "Higher-low micro structure")
	}

	if ev.vwapReject {
		shortPoints += 35
		shortReasons = append(shortReasons, "VWAP rejection")
	}
	if ev.rsiDownshift && rsiSlowLast > 40 {
		shortPoints += 20
		shortReasons = append(shortReasons, "RSI-5 downshift (RSI-14 ok)")
	}
	if ev.macdTurnDown {
		shortPoints += 20
		shortReasons = append(shortReasons, "MACD hist turning down")
	}
	if ev.volumeOK {
		shortPoints += 15
		shortReasons = append(shortReasons, "Volume confirmation")
	}
	if at(highs, n-1) < maxTail(highs, 12) {
		shortPoints += 10
		shortReasons = append(shortReasons, "Lower-high micro structure")
	}

	if in.ProMode {
		if diag.bullSweep {
			longPoints += 20
			longReasons = append(longReasons, "Liquidity sweep (low)")
		}
		if diag.bearSweep {
			shortPoints += 20
			shortReasons = append(shortReasons, "Liquidity sweep (high)")
		}
		if diag.bullOBRetest {
			longPoints += 15
			longReasons = append(longReasons, "Bullish order block retest")
		}
		if diag.bearOBRetest {
			shortPoints += 15
			shortReasons = append(shortReasons, "Bearish order block retest")
		}
		if diag.bullFVG != nil {
			longPoints += 10
			longReasons = append(longReasons, "Bullish FVG present")
		}
		if diag.bearFVG != nil {
			shortPoints += 10
			shortReasons = append(shortReasons, "Bearish FVG present")
		}
		if diag.displacement {
			longPoints += 5
			shortPoints += 5
		}

		// A side with neither trend alignment nor its core VWAP event pays
		// a penalty, floored at zero.
		if !diag.trendLongOK && !ev.vwapReclaim {
			longPoints -= 15
			if longPoints < 0 {
				longPoints = 0
			}
		}
		if !diag.trendShortOK && !ev.vwapReject {
			shortPoints -= 15
			if shortPoints < 0 {
				shortPoints = 0
			}
		}
	}

	// Hard requirement gating: an enabled preset flag with no matching event
	// forces NEUTRAL, reporting the better raw side.
	neutralScore := longPoints
	if shortPoints > neutralScore {
		neutralScore = shortPoints
	}
	neutral := func(reason string) *model.ScalpSignal {
		return model.NewNeutral(in.Symbol, neutralScore, reason, lastPrice, lastBar.Time, sess, extras)
	}

	if in.Preset.RequireVWAPEvent && !ev.vwapReclaim && !ev.vwapReject {
		return neutral("No VWAP reclaim/rejection event")
	}
	if in.Preset.RequireRSIEvent && !ev.rsiSnap && !ev.rsiDownshift {
		return neutral("No RSI-5 snap/downshift event")
	}
	if in.Preset.RequireMACDTurn && !ev.macdTurnUp && !ev.macdTurnDown {
		return neutral("No MACD histogram turn event")
	}
	if in.Preset.RequireVolume && !ev.volumeOK {
		return neutral("No volume confirmation")
	}
	if in.ProMode && !diag.bullSweep && !diag.bearSweep && !diag.bullOBRetest && !diag.bearOBRetest {
		return neutral("Pro mode: no liquidity sweep / OB retest trigger")
	}

	minScore := in.Preset.MinActionableScore
	if longPoints >= minScore && longPoints > shortPoints {
		stop := math.Min(recentSwingLow, lastPrice-atrLast*stopATRFactor)
		return model.NewLong(in.Symbol, longPoints, joinReasons(longReasons),
			lastPrice, stop, lastBar.Time, sess, extras)
	}
	if shortPoints >= minScore && shortPoints > longPoints {
		stop := math.Max(recentSwingHigh, lastPrice+atrLast*stopATRFactor)
		return model.NewShort(in.Symbol, shortPoints, joinReasons(shortReasons),
			lastPrice, stop, lastBar.Time, sess, extras)
	}

	return neutral(fmt.Sprintf("LongScore=%d (%s); ShortScore=%d (%s)",
		longPoints, strings.Join(longReasons, ", "),
		shortPoints, strings.Join(shortReasons, ", ")))
}

func joinReasons(reasons []string) string {
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return strings.Join(reasons, ", ")
}
