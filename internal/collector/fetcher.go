package collector

import "ScalpRadar/internal/model"

// Fetcher defines the interface for fetching intraday market data.
type Fetcher interface {
	FetchIntradayBars(symbol, interval string, limit int) ([]model.Bar, error)
	Name() string
}
