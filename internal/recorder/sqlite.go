package recorder

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockBoard/internal/model"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers do not block the writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			symbols    TEXT,
			range_from TEXT,
			range_to   TEXT,
			rows       INTEGER,
			source     TEXT,
			took_ms    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS snapshots (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			symbol       TEXT NOT NULL,
			latest_price REAL,
			open_price   REAL,
			high         REAL,
			low          REAL,
			volume       INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON snapshots(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(run *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO runs
		(timestamp, symbols, range_from, range_to, rows, source, took_ms)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), strings.Join(run.Symbols, ","),
		run.Range.Start.Format("2006-01-02"), run.Range.End.Format("2006-01-02"),
		run.Rows, run.Source, run.Took.Milliseconds(),
	)
	return err
}

func (r *SQLiteRecorder) RecordSnapshots(snaps []model.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	for _, s := range snaps {
		_, err := r.db.Exec(`INSERT INTO snapshots
			(timestamp, symbol, latest_price, open_price, high, low, volume)
			VALUES (?,?,?,?,?,?,?)`,
			now, s.Symbol, s.Latest, s.Open, s.High, s.Low, s.Volume,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
