package transform

import (
	"math"
	"reflect"
	"testing"
	"time"

	"StockBoard/internal/model"
)

func day(n int) time.Time {
	return time.Date(2023, 1, n, 0, 0, 0, 0, time.UTC)
}

func bar(n int, open, close, volume float64) model.OHLCV {
	return model.OHLCV{
		Time: day(n), Open: open, High: close * 1.01, Low: open * 0.99,
		Close: close, Volume: volume,
	}
}

func TestBuildPreview_OrderAndTagging(t *testing.T) {
	data := &model.MarketData{
		Symbols: []string{"MSFT", "AAPL"}, // request order, not alphabetical
		Series: map[string][]model.OHLCV{
			"AAPL": {bar(1, 100, 102, 1000), bar(2, 102, 103, 1100)},
			"MSFT": {bar(1, 200, 201, 2000)},
		},
	}
	rows := BuildPreview(data)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	wantSymbols := []string{"MSFT", "AAPL", "AAPL"}
	for i, w := range wantSymbols {
		if rows[i].Symbol != w {
			t.Errorf("row %d: expected symbol %s, got %s", i, w, rows[i].Symbol)
		}
	}
	if !rows[1].Date.Before(rows[2].Date) {
		t.Error("rows within a symbol must stay chronological")
	}
}

func TestHead_Truncation(t *testing.T) {
	data := &model.MarketData{
		Symbols: []string{"AAPL"},
		Series:  map[string][]model.OHLCV{"AAPL": make([]model.OHLCV, 30)},
	}
	rows := BuildPreview(data)
	if got := Head(rows, PreviewLimit); len(got) != PreviewLimit {
		t.Errorf("expected %d preview rows, got %d", PreviewLimit, len(got))
	}
	if got := Head(rows[:5], PreviewLimit); len(got) != 5 {
		t.Errorf("short tables must not be padded, got %d rows", len(got))
	}
}

func TestPercentChange_FirstDayAbsent(t *testing.T) {
	bars := []model.OHLCV{bar(1, 99, 100, 500), bar(2, 100, 110, 600)}
	points := PercentChange(bars)
	if len(points) != 1 {
		t.Fatalf("expected exactly one point fewer than closes, got %d", len(points))
	}
	if math.Abs(points[0].Pct-10.0) > 1e-9 {
		t.Errorf("expected 10.0%%, got %v", points[0].Pct)
	}
	if !points[0].Date.Equal(day(2)) {
		t.Errorf("change point must carry the second day's date, got %v", points[0].Date)
	}
}

func TestPercentChange_ShortSeries(t *testing.T) {
	if got := PercentChange(nil); got != nil {
		t.Errorf("expected nil for empty series, got %v", got)
	}
	if got := PercentChange([]model.OHLCV{bar(1, 100, 102, 100)}); got != nil {
		t.Errorf("expected nil for single-bar series, got %v", got)
	}
}

func TestLatestSnapshot_SingleRow(t *testing.T) {
	bars := []model.OHLCV{bar(1, 100, 102, 1000)}
	snap, err := LatestSnapshot("AAPL", bars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Symbol != "AAPL" || snap.Latest != 102.0 || snap.Open != 100.0 || snap.Volume != 1000 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}

func TestLatestSnapshot_Rounding(t *testing.T) {
	bars := []model.OHLCV{{
		Time: day(1), Open: 100.456, High: 103.333, Low: 99.991,
		Close: 102.018, Volume: 1234.0,
	}}
	snap, err := LatestSnapshot("MSFT", bars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Latest != 102.02 || snap.Open != 100.46 || snap.High != 103.33 || snap.Low != 99.99 {
		t.Errorf("expected 2-decimal rounding, got %+v", snap)
	}
}

func TestLatestSnapshot_EmptySeries(t *testing.T) {
	if _, err := LatestSnapshot("AAPL", nil); err == nil {
		t.Error("expected error for empty series")
	}
}

func TestSnapshots_TakesLastRowPerSymbol(t *testing.T) {
	data := &model.MarketData{
		Symbols: []string{"AAPL", "MSFT"},
		Series: map[string][]model.OHLCV{
			"AAPL": {bar(1, 100, 100, 100), bar(2, 100, 110, 200)},
			"MSFT": {bar(1, 200, 201, 300)},
		},
	}
	snaps, err := Snapshots(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(snaps))
	}
	if snaps[0].Symbol != "AAPL" || snaps[0].Latest != 110.0 {
		t.Errorf("expected AAPL latest 110.0, got %+v", snaps[0])
	}
	if snaps[1].Symbol != "MSFT" || snaps[1].Latest != 201.0 {
		t.Errorf("expected MSFT latest 201.0, got %+v", snaps[1])
	}
}

func TestPipeline_Idempotent(t *testing.T) {
	data := &model.MarketData{
		Symbols: []string{"AAPL", "MSFT"},
		Series: map[string][]model.OHLCV{
			"AAPL": {bar(1, 100, 102, 1000), bar(2, 102, 104, 1100)},
			"MSFT": {bar(1, 200, 202, 2000), bar(2, 202, 199, 2100)},
		},
	}
	p1, p2 := BuildPreview(data), BuildPreview(data)
	if !reflect.DeepEqual(p1, p2) {
		t.Error("preview must be identical across reruns")
	}
	c1 := PercentChange(data.Series["AAPL"])
	c2 := PercentChange(data.Series["AAPL"])
	if !reflect.DeepEqual(c1, c2) {
		t.Error("percent change must be identical across reruns")
	}
	s1, _ := Snapshots(data)
	s2, _ := Snapshots(data)
	if !reflect.DeepEqual(s1, s2) {
		t.Error("snapshots must be identical across reruns")
	}
}
