package model

import "time"

// PreviewRow is one line of the flattened raw-data table: a daily bar
// tagged with the symbol it belongs to.
type PreviewRow struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
	Symbol string    `json:"symbol"`
}

// ChangePoint is one day-over-day percent change of the close price.
// The first day of a series has no change point at all.
type ChangePoint struct {
	Date time.Time `json:"date"`
	Pct  float64   `json:"pct"`
}

// Snapshot summarizes the most recent bar of one symbol. Price fields
// are rounded to two decimals for display.
type Snapshot struct {
	Symbol string  `json:"symbol"`
	Latest float64 `json:"latest_price"`
	Open   float64 `json:"opening_price"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Volume int64   `json:"volume"`
}
