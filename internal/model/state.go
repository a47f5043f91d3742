package model

import "time"

// SymbolState tracks analysis history for one symbol between runs.
type SymbolState struct {
	LastSignal          string    `json:"last_signal"`
	LastRating          string    `json:"last_rating"`
	RecentScores        []float64 `json:"recent_scores"`
	ConsecutiveBullish  int       `json:"consecutive_bullish"`
	LastAnalyzedAt      time.Time `json:"last_analyzed_at"`
}

// TrackerState is the persisted per-symbol state map.
type TrackerState struct {
	Symbols   map[string]*SymbolState `json:"symbols"`
	UpdatedAt time.Time               `json:"updated_at"`
}
