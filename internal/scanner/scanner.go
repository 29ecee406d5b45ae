// Package scanner fans an evaluation out over a watchlist with bounded
// concurrency and returns deterministically ordered results.
package scanner

import (
	"log"
	"sort"
	"sync"

	"ScalpRadar/internal/collector"
	"ScalpRadar/internal/model"
	"ScalpRadar/internal/strategy"
)

// Scanner evaluates every watchlist symbol against one preset.
type Scanner struct {
	Collector *collector.Collector

	Preset       strategy.Preset
	ProMode      bool
	Sessions     strategy.SessionFilter
	Classify     strategy.Classifier
	LookbackBars int

	// Concurrency bounds the number of in-flight evaluations. Values
	// below 1 are treated as 1.
	Concurrency int
}

// Scan evaluates all symbols and returns one signal per symbol that
// collected successfully. Fetch or validation failures are logged and
// skipped rather than aborting the sweep.
func (s *Scanner) Scan(symbols []string) []*model.ScalpSignal {
	limit := s.Concurrency
	if limit < 1 {
		limit = 1
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		sem     = make(chan struct{}, limit)
		results = make([]*model.ScalpSignal, 0, len(symbols))
	)

	for _, symbol := range symbols {
		wg.Add(1)
		sem <- struct{}{}
		go func(symbol string) {
			defer wg.Done()
			defer func() { <-sem }()

			bundle, err := s.Collector.Collect(symbol)
			if err != nil {
				log.Printf("[WARN] collect %s failed: %v", symbol, err)
				return
			}
			sig := strategy.Evaluate(strategy.Input{
				Symbol:       bundle.Symbol,
				Bars:         bundle.Bars,
				RSIFast:      bundle.RSIFast,
				RSISlow:      bundle.RSISlow,
				MACDHist:     bundle.MACDHist,
				Preset:       s.Preset,
				ProMode:      s.ProMode,
				Sessions:     s.Sessions,
				Classify:     s.Classify,
				LookbackBars: s.LookbackBars,
			})

			mu.Lock()
			results = append(results, sig)
			mu.Unlock()
		}(symbol)
	}
	wg.Wait()

	sortSignals(results)
	return results
}

// sortSignals orders by score descending, directional signals ahead of
// neutral ones on equal score, then symbol ascending for a stable report.
func sortSignals(signals []*model.ScalpSignal) {
	sort.Slice(signals, func(i, j int) bool {
		a, b := signals[i], signals[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Actionable() != b.Actionable() {
			return a.Actionable()
		}
		return a.Symbol < b.Symbol
	})
}
