package transform

import "StockBoard/internal/model"

// PercentChange computes the day-over-day percent change of the close
// price. The first day has no previous close, so the result always has
// one point fewer than the input series; it is absent, not zero.
func PercentChange(bars []model.OHLCV) []model.ChangePoint {
	if len(bars) < 2 {
		return nil
	}
	points := make([]model.ChangePoint, 0, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		prev := bars[i-1].Close
		pct := 0.0
		if prev != 0 {
			pct = (bars[i].Close - prev) / prev * 100
		}
		points = append(points, model.ChangePoint{
			Date: bars[i].Time,
			Pct:  pct,
		})
	}
	return points
}
