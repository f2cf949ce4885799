package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"StockBoard/internal/collector"
	"StockBoard/internal/model"
	"StockBoard/internal/recorder"
	"StockBoard/internal/transform"
)

// Scheduler periodically runs the fetch pipeline for a fixed symbol set
// and records the latest snapshots. It is an optional background job;
// the interactive dashboard never depends on it.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Symbols   []string
	Lookback  int
	Log       *zap.SugaredLogger
}

// NewScheduler creates a new Scheduler over the given symbols, fetching
// a trailing window of lookback calendar days on each tick.
func NewScheduler(col *collector.Collector, rec recorder.Recorder, symbols []string, lookback int, log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(),
		Collector: col,
		Recorder:  rec,
		Symbols:   symbols,
		Lookback:  lookback,
		Log:       log,
	}
}

// Register adds the snapshot task under the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.snapshotTask); err != nil {
		return fmt.Errorf("register snapshot task: %w", err)
	}
	return nil
}

func (s *Scheduler) Start() { s.Cron.Start() }
func (s *Scheduler) Stop()  { s.Cron.Stop() }

func (s *Scheduler) snapshotTask() {
	end := time.Now()
	rng := model.DateRange{Start: end.AddDate(0, 0, -s.Lookback), End: end}

	started := time.Now()
	data, err := s.Collector.Collect(s.Symbols, rng)
	if err != nil {
		s.Log.Warnw("scheduled fetch failed", "err", err)
		return
	}

	snaps, err := transform.Snapshots(data)
	if err != nil {
		s.Log.Warnw("snapshot derivation failed", "err", err)
		return
	}

	if err := s.Recorder.RecordRun(&recorder.RunRecord{
		Symbols: data.Symbols,
		Range:   rng,
		Rows:    data.Rows(),
		Source:  s.Collector.Fetcher.Name(),
		Took:    time.Since(started),
	}); err != nil {
		s.Log.Warnw("record run failed", "err", err)
	}
	if err := s.Recorder.RecordSnapshots(snaps); err != nil {
		s.Log.Warnw("record snapshots failed", "err", err)
		return
	}
	s.Log.Infow("scheduled snapshots recorded", "symbols", len(snaps), "rows", data.Rows())
}
