package recorder

import "StockBoard/internal/model"

// NoopRecorder discards all records. Used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(*RunRecord) error             { return nil }
func (n *NoopRecorder) RecordSnapshots([]model.Snapshot) error { return nil }
func (n *NoopRecorder) Close() error                           { return nil }
