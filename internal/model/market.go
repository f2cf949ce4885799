package model

import "time"

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// DateRange bounds a historical query. Both ends are calendar dates,
// inclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// MarketData holds the fetched daily series for one dashboard run.
// Symbols preserves the order the user selected them in; every chart
// legend and table derives its row order from it.
type MarketData struct {
	Symbols   []string
	Series    map[string][]OHLCV
	FetchedAt time.Time
}

// Rows returns the total number of bars across all symbols.
func (d *MarketData) Rows() int {
	n := 0
	for _, bars := range d.Series {
		n += len(bars)
	}
	return n
}
