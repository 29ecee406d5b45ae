package strategy

import (
	"math"
	"testing"
	"time"

	"ScalpRadar/internal/model"
)

func fixtureTime(i int) time.Time {
	return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC).Add(time.Duration(i) * 5 * time.Minute)
}

func openingAlways(time.Time) model.Session { return model.SessionOpening }
func allSessions() SessionFilter {
	return SessionFilter{AllowOpening: true, AllowMidday: true, AllowPower: true}
}

// longFixture builds 64 bars that grind lower and finish with a heavy
// reversal bar closing back above VWAP with a higher low.
func longFixture() []model.Bar {
	bars := make([]model.Bar, 0, 64)
	for i := 0; i < 63; i++ {
		c := 100 - 0.05*float64(i)
		bars = append(bars, model.Bar{
			Time: fixtureTime(i), Open: c + 0.02, High: c + 0.1, Low: c - 0.1, Close: c, Volume: 1000,
		})
	}
	bars = append(bars, model.Bar{
		Time: fixtureTime(63), Open: 96.9, High: 99.8, Low: 96.95, Close: 99.5, Volume: 2500,
	})
	return bars
}

// shortFixture mirrors longFixture: a grind higher finished by a heavy
// breakdown bar closing back below VWAP with a lower high.
func shortFixture() []model.Bar {
	bars := make([]model.Bar, 0, 64)
	for i := 0; i < 63; i++ {
		c := 100 + 0.05*float64(i)
		bars = append(bars, model.Bar{
			Time: fixtureTime(i), Open: c - 0.02, High: c + 0.1, Low: c - 0.1, Close: c, Volume: 1000,
		})
	}
	bars = append(bars, model.Bar{
		Time: fixtureTime(63), Open: 103.2, High: 103.15, Low: 100.3, Close: 100.6, Volume: 2500,
	})
	return bars
}

func seriesAt(bars []model.Bar, offsets []int, values []float64) model.Series {
	out := make(model.Series, len(offsets))
	for i, off := range offsets {
		out[i] = model.Point{Time: bars[len(bars)+off].Time, Value: values[i]}
	}
	return out
}

func longInput() Input {
	bars := longFixture()
	return Input{
		Symbol:   "AAPL",
		Bars:     bars,
		RSIFast:  seriesAt(bars, []int{-2, -1}, []float64{24, 31}),
		RSISlow:  seriesAt(bars, []int{-1}, []float64{50}),
		MACDHist: seriesAt(bars, []int{-3, -2, -1}, []float64{-0.5, -0.2, 0.1}),
		Preset:   PresetByName("Cleaner signals"),
		Sessions: allSessions(),
		Classify: openingAlways,
	}
}

func shortInput() Input {
	bars := shortFixture()
	return Input{
		Symbol:   "TSLA",
		Bars:     bars,
		RSIFast:  seriesAt(bars, []int{-2, -1}, []float64{78, 72}),
		RSISlow:  seriesAt(bars, []int{-1}, []float64{50}),
		MACDHist: seriesAt(bars, []int{-3, -2, -1}, []float64{0.5, 0.2, -0.1}),
		Preset:   PresetByName("Cleaner signals"),
		Sessions: allSessions(),
		Classify: openingAlways,
	}
}

func TestEvaluate_InsufficientData(t *testing.T) {
	bars := longFixture()[:10]
	sig := Evaluate(Input{Symbol: "SPY", Bars: bars, Preset: PresetByName("Fast scalp"), Sessions: allSessions()})
	if sig.Bias != model.BiasNeutral {
		t.Fatalf("expected NEUTRAL, got %s", sig.Bias)
	}
	if sig.Score != 0 || sig.Reason != "insufficient data" {
		t.Errorf("unexpected result: score=%d reason=%q", sig.Score, sig.Reason)
	}
	if sig.Levels != nil {
		t.Error("expected nil levels")
	}
	if sig.Session != model.SessionOff {
		t.Errorf("expected OFF session, got %s", sig.Session)
	}
	if sig.LastPrice != bars[9].Close {
		t.Errorf("expected last price %v, got %v", bars[9].Close, sig.LastPrice)
	}
}

func TestEvaluate_NoBarsAtAll(t *testing.T) {
	sig := Evaluate(Input{Symbol: "SPY", Preset: PresetByName("Fast scalp"), Sessions: allSessions()})
	if sig.Bias != model.BiasNeutral {
		t.Fatalf("expected NEUTRAL, got %s", sig.Bias)
	}
	if !math.IsNaN(sig.LastPrice) {
		t.Errorf("expected NaN last price, got %v", sig.LastPrice)
	}
}

func TestEvaluate_LongReversal(t *testing.T) {
	sig := Evaluate(longInput())
	if sig.Bias != model.BiasLong {
		t.Fatalf("expected LONG, got %s (reason: %s)", sig.Bias, sig.Reason)
	}
	if sig.Score != 100 {
		t.Errorf("expected full score, got %d", sig.Score)
	}
	if sig.Levels == nil {
		t.Fatal("expected trade levels on a directional signal")
	}
	if sig.Levels.Entry != 99.5 {
		t.Errorf("expected entry at last close 99.5, got %v", sig.Levels.Entry)
	}
	if sig.Levels.Stop >= sig.Levels.Entry {
		t.Errorf("long stop %v must sit below entry %v", sig.Levels.Stop, sig.Levels.Entry)
	}
	if sig.Session != model.SessionOpening {
		t.Errorf("expected OPENING session, got %s", sig.Session)
	}
	if _, ok := sig.Extras["atr14"]; !ok {
		t.Error("expected diagnostics in extras")
	}
}

func TestEvaluate_ShortBreakdown(t *testing.T) {
	sig := Evaluate(shortInput())
	if sig.Bias != model.BiasShort {
		t.Fatalf("expected SHORT, got %s (reason: %s)", sig.Bias, sig.Reason)
	}
	if sig.Score != 100 {
		t.Errorf("expected full score, got %d", sig.Score)
	}
	if sig.Levels.Stop <= sig.Levels.Entry {
		t.Errorf("short stop %v must sit above entry %v", sig.Levels.Stop, sig.Levels.Entry)
	}
}

func TestEvaluate_TwoToOneTargetRatio(t *testing.T) {
	for _, in := range []Input{longInput(), shortInput()} {
		sig := Evaluate(in)
		if sig.Levels == nil {
			t.Fatalf("%s: expected levels", in.Symbol)
		}
		r1 := sig.Levels.Target1R - sig.Levels.Entry
		r2 := sig.Levels.Target2R - sig.Levels.Entry
		if math.Abs(r2-2*r1) > 1e-9 {
			t.Errorf("%s: 2R %v is not twice 1R %v", in.Symbol, r2, r1)
		}
	}
}

func TestEvaluate_SessionFiltered(t *testing.T) {
	in := longInput()
	in.Classify = func(time.Time) model.Session { return model.SessionMidday }
	in.Sessions = SessionFilter{AllowOpening: true, AllowPower: true}
	sig := Evaluate(in)
	if sig.Bias != model.BiasNeutral || sig.Score != 0 {
		t.Fatalf("expected filtered NEUTRAL score 0, got %s %d", sig.Bias, sig.Score)
	}
	if sig.Reason != "Filtered by time-of-day (MIDDAY)" {
		t.Errorf("unexpected reason: %q", sig.Reason)
	}
	if sig.Levels != nil {
		t.Error("expected nil levels")
	}
}

func TestEvaluate_GateForcesNeutral(t *testing.T) {
	in := longInput()
	// A flat fast RSI removes the snapback; Cleaner signals requires it.
	in.RSIFast = seriesAt(in.Bars, []int{-2, -1}, []float64{50, 50})
	sig := Evaluate(in)
	if sig.Bias != model.BiasNeutral {
		t.Fatalf("expected NEUTRAL, got %s", sig.Bias)
	}
	if sig.Reason != "No RSI-5 snap/downshift event" {
		t.Errorf("unexpected reason: %q", sig.Reason)
	}
	// The better raw side still shows through the score.
	if sig.Score != 80 {
		t.Errorf("expected raw long score 80, got %d", sig.Score)
	}
	if sig.Levels != nil {
		t.Error("expected nil levels")
	}
}

func TestEvaluate_ProModeTriggerGate(t *testing.T) {
	in := longInput()
	in.ProMode = true
	in.Preset = Preset{Name: "permissive", MinActionableScore: 20, VolMultiplier: 1.15}
	sig := Evaluate(in)
	if sig.Bias != model.BiasNeutral {
		t.Fatalf("expected NEUTRAL without a structure trigger, got %s", sig.Bias)
	}
	if sig.Reason != "Pro mode: no liquidity sweep / OB retest trigger" {
		t.Errorf("unexpected reason: %q", sig.Reason)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	in := longInput()
	a := Evaluate(in)
	b := Evaluate(in)
	if a.Bias != b.Bias || a.Score != b.Score || a.Reason != b.Reason {
		t.Errorf("repeated evaluation diverged: %+v vs %+v", a, b)
	}
	if a.Levels.Stop != b.Levels.Stop || a.Levels.Target2R != b.Levels.Target2R {
		t.Error("repeated evaluation produced different levels")
	}
}

func TestEvaluate_DoesNotMutateInputs(t *testing.T) {
	in := longInput()
	barCopy := in.Bars[30]
	rsiCopy := in.RSIFast[0]
	Evaluate(in)
	if in.Bars[30] != barCopy {
		t.Error("bars were mutated")
	}
	if in.RSIFast[0] != rsiCopy {
		t.Error("oscillator series was mutated")
	}
}
