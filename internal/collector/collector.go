package collector

import (
	"fmt"
	"time"

	"StockBoard/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	// Data maps symbol to canned bars. Symbols without an entry get a
	// deterministic generated series.
	Data      map[string][]model.OHLCV
	BasePrice float64
	// Err, when set for a symbol, makes that symbol's fetch fail.
	Err map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(symbol string, rng model.DateRange) ([]model.OHLCV, error) {
	if err := m.Err[symbol]; err != nil {
		return nil, err
	}
	if bars, ok := m.Data[symbol]; ok {
		return bars, nil
	}
	base := m.BasePrice
	if base == 0 {
		base = 100
	}
	return generateMockBars(base, rng), nil
}

func generateMockBars(basePrice float64, rng model.DateRange) []model.OHLCV {
	var bars []model.OHLCV
	for d, i := rng.Start, 0; !d.After(rng.End); d, i = d.AddDate(0, 0, 1), i+1 {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		p := basePrice * (1 + float64(i)*0.001)
		bars = append(bars, model.OHLCV{
			Time:   d,
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		})
	}
	return bars
}

// Collector fetches daily series for an ordered set of symbols.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches every symbol's series for the given range. Any failed
// symbol aborts the whole run: either all selected symbols are present
// in the result or an error is returned. A symbol with zero rows counts
// as a failure, since nothing downstream can be derived from it.
func (c *Collector) Collect(symbols []string, rng model.DateRange) (*model.MarketData, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("no symbols selected")
	}

	data := &model.MarketData{
		Symbols:   make([]string, 0, len(symbols)),
		Series:    make(map[string][]model.OHLCV, len(symbols)),
		FetchedAt: time.Now(),
	}
	for _, sym := range symbols {
		bars, err := c.Fetcher.FetchDailyBars(sym, rng)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", sym, err)
		}
		if len(bars) == 0 {
			return nil, fmt.Errorf("fetch %s: no rows in range", sym)
		}
		data.Symbols = append(data.Symbols, sym)
		data.Series[sym] = bars
	}
	return data, nil
}
