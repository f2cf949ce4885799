package recorder

import (
	"time"

	"StockBoard/internal/model"
)

// RunRecord holds audit data for one completed dashboard run.
type RunRecord struct {
	Symbols []string
	Range   model.DateRange
	Rows    int
	Source  string
	Took    time.Duration
}

// Recorder persists an append-only history of dashboard runs. Nothing
// is ever read back into a response: the pipeline itself stays
// stateless between runs.
type Recorder interface {
	RecordRun(run *RunRecord) error
	RecordSnapshots(snaps []model.Snapshot) error
	Close() error
}
