package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"StockBoard/internal/model"
)

func TestSQLiteRecorder_RecordAndClose(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	run := &RunRecord{
		Symbols: []string{"AAPL", "MSFT"},
		Range: model.DateRange{
			Start: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		Rows:   42,
		Source: "mock",
		Took:   120 * time.Millisecond,
	}
	if err := r.RecordRun(run); err != nil {
		t.Fatalf("record run: %v", err)
	}

	snaps := []model.Snapshot{
		{Symbol: "AAPL", Latest: 110.0, Open: 100.0, High: 112.0, Low: 99.0, Volume: 1200},
		{Symbol: "MSFT", Latest: 204.0, Open: 202.0, High: 205.0, Low: 201.0, Volume: 2100},
	}
	if err := r.RecordSnapshots(snaps); err != nil {
		t.Fatalf("record snapshots: %v", err)
	}

	var runs, rows int
	if err := r.db.QueryRow("SELECT COUNT(*), COALESCE(SUM(rows),0) FROM runs").Scan(&runs, &rows); err != nil {
		t.Fatalf("query runs: %v", err)
	}
	if runs != 1 || rows != 42 {
		t.Errorf("expected 1 run with 42 rows, got %d/%d", runs, rows)
	}
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count); err != nil {
		t.Fatalf("query snapshots: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 snapshot rows, got %d", count)
	}
}
