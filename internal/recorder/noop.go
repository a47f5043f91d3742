package recorder

import "StockScope/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSnapshot(_ *model.AnalysisReport) error { return nil }
func (n *NoopRecorder) RecordSignalEvent(_ *SignalEvent) error       { return nil }
func (n *NoopRecorder) Close() error                                 { return nil }
