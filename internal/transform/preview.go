package transform

import "StockBoard/internal/model"

// PreviewLimit is how many rows the on-screen raw-data preview shows.
// The CSV export always carries the full table.
const PreviewLimit = 20

// BuildPreview flattens every symbol's series into one table, each row
// tagged with its symbol. Symbol order follows the request, rows stay
// chronological within each symbol.
func BuildPreview(data *model.MarketData) []model.PreviewRow {
	rows := make([]model.PreviewRow, 0, data.Rows())
	for _, sym := range data.Symbols {
		for _, bar := range data.Series[sym] {
			rows = append(rows, model.PreviewRow{
				Date:   bar.Time,
				Open:   bar.Open,
				High:   bar.High,
				Low:    bar.Low,
				Close:  bar.Close,
				Volume: int64(bar.Volume),
				Symbol: sym,
			})
		}
	}
	return rows
}

// Head returns at most n leading rows without copying.
func Head(rows []model.PreviewRow, n int) []model.PreviewRow {
	if len(rows) <= n {
		return rows
	}
	return rows[:n]
}
