package transform

import (
	"errors"
	"math"

	"StockBoard/internal/model"
)

// LatestSnapshot projects the chronologically last bar of a series into
// a display snapshot with two-decimal prices and an integer volume.
func LatestSnapshot(symbol string, bars []model.OHLCV) (model.Snapshot, error) {
	if len(bars) == 0 {
		return model.Snapshot{}, errors.New("empty series")
	}
	last := bars[len(bars)-1]
	return model.Snapshot{
		Symbol: symbol,
		Latest: round2(last.Close),
		Open:   round2(last.Open),
		High:   round2(last.High),
		Low:    round2(last.Low),
		Volume: int64(last.Volume),
	}, nil
}

// Snapshots builds one snapshot per symbol, in request order.
func Snapshots(data *model.MarketData) ([]model.Snapshot, error) {
	snaps := make([]model.Snapshot, 0, len(data.Symbols))
	for _, sym := range data.Symbols {
		snap, err := LatestSnapshot(sym, data.Series[sym])
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
