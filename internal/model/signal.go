package model

import "time"

// Bias is the directional read of a setup.
type Bias string

const (
	BiasLong    Bias = "LONG"
	BiasShort   Bias = "SHORT"
	BiasNeutral Bias = "NEUTRAL"
)

// Session identifies the intraday trading window of a bar timestamp.
type Session string

const (
	SessionOpening Session = "OPENING"
	SessionMidday  Session = "MIDDAY"
	SessionPower   Session = "POWER"
	SessionOff     Session = "OFF"
)

// Levels holds the trade prices of a directional signal. Target2R sits twice
// as far from entry as Target1R, with signs following the bias.
type Levels struct {
	Entry    float64
	Stop     float64
	Target1R float64
	Target2R float64
}

// ScalpSignal is the result of one signal evaluation. Levels is nil exactly
// when Bias is NEUTRAL; the constructors below are the only way directional
// results are built, so the invariant holds by construction.
type ScalpSignal struct {
	Symbol    string
	Bias      Bias
	Score     int // 0..100
	Reason    string
	Levels    *Levels
	LastPrice float64
	Timestamp time.Time
	Session   Session
	Extras    map[string]any // diagnostic key/value details
}

// NewNeutral builds a NEUTRAL result with no trade levels.
func NewNeutral(symbol string, score int, reason string, lastPrice float64, ts time.Time, sess Session, extras map[string]any) *ScalpSignal {
	return &ScalpSignal{
		Symbol:    symbol,
		Bias:      BiasNeutral,
		Score:     clampScore(score),
		Reason:    reason,
		LastPrice: lastPrice,
		Timestamp: ts,
		Session:   sess,
		Extras:    extras,
	}
}

// NewLong builds a LONG result. Entry is the last traded price; risk is the
// entry-to-stop distance floored at 0.01, and the targets are one and two
// risk multiples above entry.
func NewLong(symbol string, score int, reason string, entry, stop float64, ts time.Time, sess Session, extras map[string]any) *ScalpSignal {
	risk := entry - stop
	if risk < 0.01 {
		risk = 0.01
	}
	return &ScalpSignal{
		Symbol: symbol,
		Bias:   BiasLong,
		Score:  clampScore(score),
		Reason: reason,
		Levels: &Levels{
			Entry:    entry,
			Stop:     stop,
			Target1R: entry + risk,
			Target2R: entry + 2*risk,
		},
		LastPrice: entry,
		Timestamp: ts,
		Session:   sess,
		Extras:    extras,
	}
}

// NewShort builds a SHORT result with the level arithmetic mirrored.
func NewShort(symbol string, score int, reason string, entry, stop float64, ts time.Time, sess Session, extras map[string]any) *ScalpSignal {
	risk := stop - entry
	if risk < 0.01 {
		risk = 0.01
	}
	return &ScalpSignal{
		Symbol: symbol,
		Bias:   BiasShort,
		Score:  clampScore(score),
		Reason: reason,
		Levels: &Levels{
			Entry:    entry,
			Stop:     stop,
			Target1R: entry - risk,
			Target2R: entry - 2*risk,
		},
		LastPrice: entry,
		Timestamp: ts,
		Session:   sess,
		Extras:    extras,
	}
}

// Actionable reports whether the signal carries a directional setup.
func (s *ScalpSignal) Actionable() bool { return s.Bias != BiasNeutral }

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
