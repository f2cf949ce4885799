package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"StockBoard/internal/model"
)

func sampleData() *model.MarketData {
	day := func(n int) time.Time { return time.Date(2023, 1, n, 0, 0, 0, 0, time.UTC) }
	return &model.MarketData{
		Symbols: []string{"AAPL", "MSFT"},
		Series: map[string][]model.OHLCV{
			"AAPL": {
				{Time: day(2), Open: 100, High: 103, Low: 99, Close: 100, Volume: 1000},
				{Time: day(3), Open: 100, High: 112, Low: 100, Close: 110, Volume: 1200},
			},
			"MSFT": {
				{Time: day(2), Open: 200, High: 203, Low: 199, Close: 202, Volume: 2000},
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	rows := []model.PreviewRow{
		{Date: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), Open: 100, High: 103, Low: 99, Close: 102.5, Volume: 1000, Symbol: "AAPL"},
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if lines[0] != "Date,Open,High,Low,Close,Volume,Symbol" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != "2023-01-02,100,103,99,102.5,1000,AAPL" {
		t.Errorf("unexpected row: %s", lines[1])
	}
}

func TestBuildCharts_OrderAndAxes(t *testing.T) {
	charts := BuildCharts(sampleData())
	if len(charts) != 4 {
		t.Fatalf("expected 4 charts, got %d", len(charts))
	}

	wantY := []string{"Opening Price (USD)", "Closing Price (USD)", "Volume", "Change (%)"}
	for i, c := range charts {
		if c.XAxis != "Date" {
			t.Errorf("chart %d: expected x-axis Date, got %s", i, c.XAxis)
		}
		if c.YAxis != wantY[i] {
			t.Errorf("chart %d: expected y-axis %s, got %s", i, wantY[i], c.YAxis)
		}
		if len(c.Series) != 2 {
			t.Fatalf("chart %d: expected one series per symbol, got %d", i, len(c.Series))
		}
		if c.Series[0].Name != "AAPL" || c.Series[1].Name != "MSFT" {
			t.Errorf("chart %d: legend order must follow request order, got %s,%s",
				i, c.Series[0].Name, c.Series[1].Name)
		}
	}

	if charts[1].Mode != "lines+markers" {
		t.Errorf("closing chart must use markers, got %s", charts[1].Mode)
	}
	if !charts[2].Stacked {
		t.Error("volume chart must be stacked")
	}
}

func TestBuildCharts_ChangeSeriesAlignment(t *testing.T) {
	charts := BuildCharts(sampleData())
	chg := charts[3]

	// AAPL: two bars, so exactly one change point, on the second date.
	aapl := chg.Series[0]
	if len(aapl.Y) != 1 || aapl.Y[0] != 10.0 {
		t.Errorf("expected AAPL change [10.0], got %v", aapl.Y)
	}
	if aapl.X[0] != "2023-01-03" {
		t.Errorf("change point must sit on the second day, got %s", aapl.X[0])
	}

	// MSFT: one bar, no change points at all.
	if msft := chg.Series[1]; len(msft.Y) != 0 {
		t.Errorf("expected empty MSFT change series, got %v", msft.Y)
	}
}
