package collector

import (
	"fmt"
	"time"

	"ScalpRadar/internal/model"
	"ScalpRadar/internal/oscillator"
)

// MockFetcher returns controllable synthetic data for development and testing.
type MockFetcher struct {
	BasePrice float64
	Bars      []model.Bar
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchIntradayBars(_ string, interval string, limit int) ([]model.Bar, error) {
	if m.Bars != nil {
		return m.Bars, nil
	}
	step, err := time.ParseDuration(interval)
	if err != nil {
		step = 5 * time.Minute
	}
	return generateMockBars(m.BasePrice, limit, step), nil
}

func generateMockBars(basePrice float64, count int, step time.Duration) []model.Bar {
	if basePrice <= 0 {
		basePrice = 100
	}
	start := time.Now().Add(-time.Duration(count) * step).Truncate(step)
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		// A gentle sawtooth around the base price so every indicator has
		// something to chew on.
		wave := float64(i%24-12) * 0.0008
		p := basePrice * (1 + wave)
		bars[i] = model.Bar{
			Time:   start.Add(time.Duration(i) * step),
			Open:   p * 0.9995,
			High:   p * 1.0015,
			Low:    p * 0.9985,
			Close:  p,
			Volume: 50000 + float64(i%7)*4000,
		}
	}
	return bars
}

// Bundle carries one symbol's bar window plus the oscillator series derived
// from it, ready for evaluation.
type Bundle struct {
	Symbol   string
	Bars     []model.Bar
	RSIFast  model.Series
	RSISlow  model.Series
	MACDHist model.Series
}

// Collector orchestrates data fetching and oscillator derivation.
type Collector struct {
	Fetcher  Fetcher
	Interval string
	Limit    int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, interval string, limit int) *Collector {
	return &Collector{Fetcher: fetcher, Interval: interval, Limit: limit}
}

// Collect fetches one symbol's bars, validates them, and derives the
// RSI and MACD histogram series.
func (c *Collector) Collect(symbol string) (*Bundle, error) {
	bars, err := c.Fetcher.FetchIntradayBars(symbol, c.Interval, c.Limit)
	if err != nil {
		return nil, fmt.Errorf("fetch intraday bars for %s: %w", symbol, err)
	}
	if err := model.ValidateBars(bars); err != nil {
		return nil, fmt.Errorf("validate bars for %s: %w", symbol, err)
	}
	return &Bundle{
		Symbol:   symbol,
		Bars:     bars,
		RSIFast:  oscillator.RSI(bars, oscillator.FastRSIPeriod),
		RSISlow:  oscillator.RSI(bars, oscillator.SlowRSIPeriod),
		MACDHist: oscillator.MACDHistogram(bars),
	}, nil
}
