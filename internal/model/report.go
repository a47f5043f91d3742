package model

import "time"

// AnalysisReport bundles everything computed for one symbol in a single run.
// Fundamentals is nil when no snapshot was supplied.
type AnalysisReport struct {
	Symbol       string
	GeneratedAt  time.Time
	CurrentPrice float64
	Indicators   *IndicatorSet
	Signals      *SignalSet
	Risk         *RiskMetrics
	Rating       *RiskRating
	Fundamentals *FundamentalReport
}
