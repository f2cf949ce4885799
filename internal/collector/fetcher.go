package collector

import "StockBoard/internal/model"

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchDailyBars returns one symbol's daily bars for the given date
	// range, oldest first.
	FetchDailyBars(symbol string, rng model.DateRange) ([]model.OHLCV, error)
	Name() string
}
