package recorder

import "StockScope/internal/model"

// SignalEvent records an overall-signal flip detected between two runs.
type SignalEvent struct {
	Symbol     string
	PrevSignal string
	NewSignal  string
	RiskLevel  string
	Price      float64
}

// Recorder persists analysis history.
type Recorder interface {
	RecordSnapshot(report *model.AnalysisReport) error
	RecordSignalEvent(evt *SignalEvent) error
	Close() error
}
