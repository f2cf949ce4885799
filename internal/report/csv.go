package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"StockBoard/internal/model"
)

// CSVFilename is the download name of the raw-data export.
const CSVFilename = "stock_data.csv"

// WriteCSV writes the full preview table as UTF-8 CSV. The first column
// is the date index of each row, mirroring the on-screen table.
func WriteCSV(w io.Writer, rows []model.PreviewRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Date", "Open", "High", "Low", "Close", "Volume", "Symbol"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.Date.Format("2006-01-02"),
			strconv.FormatFloat(r.Open, 'f', -1, 64),
			strconv.FormatFloat(r.High, 'f', -1, 64),
			strconv.FormatFloat(r.Low, 'f', -1, 64),
			strconv.FormatFloat(r.Close, 'f', -1, 64),
			strconv.FormatInt(r.Volume, 10),
			r.Symbol,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
