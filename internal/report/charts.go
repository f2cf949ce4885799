package report

import (
	"StockBoard/internal/model"
	"StockBoard/internal/transform"
)

// Series is one symbol's trace within a chart. X carries ISO dates so
// the front-end can feed it straight into the plotting library.
type Series struct {
	Name string    `json:"name"`
	X    []string  `json:"x"`
	Y    []float64 `json:"y"`
}

// Chart is one renderable figure: a titled set of per-symbol series
// sharing axis labels. Mode and Stacked describe how traces are drawn.
type Chart struct {
	Title   string   `json:"title"`
	XAxis   string   `json:"xaxis"`
	YAxis   string   `json:"yaxis"`
	Mode    string   `json:"mode"`
	Stacked bool     `json:"stacked,omitempty"`
	Series  []Series `json:"series"`
}

// BuildCharts assembles the four dashboard figures in display order:
// opening price, closing price, volume, daily percent change. Legend
// order inside each chart follows the requested symbol order.
func BuildCharts(data *model.MarketData) []Chart {
	open := Chart{
		Title: "Opening Price Over Time",
		XAxis: "Date", YAxis: "Opening Price (USD)",
		Mode: "lines",
	}
	cls := Chart{
		Title: "Closing Price Over Time",
		XAxis: "Date", YAxis: "Closing Price (USD)",
		Mode: "lines+markers",
	}
	vol := Chart{
		Title: "Volume Traded Over Time",
		XAxis: "Date", YAxis: "Volume",
		Mode: "lines", Stacked: true,
	}
	chg := Chart{
		Title: "Daily Percentage Change",
		XAxis: "Date", YAxis: "Change (%)",
		Mode: "lines",
	}

	for _, sym := range data.Symbols {
		bars := data.Series[sym]

		dates := make([]string, len(bars))
		opens := make([]float64, len(bars))
		closes := make([]float64, len(bars))
		vols := make([]float64, len(bars))
		for i, b := range bars {
			dates[i] = b.Time.Format("2006-01-02")
			opens[i] = b.Open
			closes[i] = b.Close
			vols[i] = b.Volume
		}
		open.Series = append(open.Series, Series{Name: sym, X: dates, Y: opens})
		cls.Series = append(cls.Series, Series{Name: sym, X: dates, Y: closes})
		vol.Series = append(vol.Series, Series{Name: sym, X: dates, Y: vols})

		points := transform.PercentChange(bars)
		px := make([]string, len(points))
		py := make([]float64, len(points))
		for i, p := range points {
			px[i] = p.Date.Format("2006-01-02")
			py[i] = p.Pct
		}
		chg.Series = append(chg.Series, Series{Name: sym, X: px, Y: py})
	}

	return []Chart{open, cls, vol, chg}
}
