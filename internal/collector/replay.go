package collector

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ScalpRadar/internal/model"
)

// ReplayFetcher reads recorded bars from <Dir>/<SYMBOL>.csv files. The
// expected header is time,open,high,low,close,volume with RFC3339 timestamps.
type ReplayFetcher struct {
	Dir string
}

func (r *ReplayFetcher) Name() string { return "replay" }

func (r *ReplayFetcher) FetchIntradayBars(symbol, _ string, limit int) ([]model.Bar, error) {
	path := filepath.Join(r.Dir, strings.ToUpper(symbol)+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read replay file %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("replay file %s has no data rows", path)
	}

	bars := make([]model.Bar, 0, len(records)-1)
	for i, rec := range records[1:] {
		bar, err := parseBarRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("replay file %s row %d: %w", path, i+2, err)
		}
		bars = append(bars, bar)
	}
	if limit > 0 && len(bars) > limit {
		bars = bars[len(bars)-limit:]
	}
	return bars, nil
}

func parseBarRecord(rec []string) (model.Bar, error) {
	if len(rec) != 6 {
		return model.Bar{}, fmt.Errorf("expected 6 columns, got %d", len(rec))
	}
	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(rec[0]))
	if err != nil {
		return model.Bar{}, fmt.Errorf("parse time: %w", err)
	}
	vals := make([]float64, 5)
	for i := 0; i < 5; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[i+1]), 64)
		if err != nil {
			return model.Bar{}, fmt.Errorf("parse column %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return model.Bar{
		Time:   ts,
		Open:   vals[0],
		High:   vals[1],
		Low:    vals[2],
		Close:  vals[3],
		Volume: vals[4],
	}, nil
}
