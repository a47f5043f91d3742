// Package state persists per-symbol analysis history between runs so the
// scheduler can detect signal flips and rating changes.
package state

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"StockScope/internal/model"
)

const maxRecentScores = 12

// Tracker holds the persisted per-symbol state with concurrency safety.
type Tracker struct {
	mu       sync.Mutex
	state    *model.TrackerState
	filePath string
}

// NewTracker creates a Tracker, loading or initializing state from disk.
func NewTracker(filePath string) (*Tracker, error) {
	st, err := loadState(filePath)
	if err != nil {
		return nil, err
	}
	if st.Symbols == nil {
		st.Symbols = make(map[string]*model.SymbolState)
	}
	return &Tracker{state: st, filePath: filePath}, nil
}

// Get returns a copy of the state for one symbol; the second return reports
// whether the symbol has been seen before.
func (t *Tracker) Get(symbol string) (model.SymbolState, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.state.Symbols[symbol]
	if !ok {
		return model.SymbolState{}, false
	}
	return *s, true
}

// Update records the latest analysis outcome for a symbol and reports whether
// the overall signal flipped since the previous run.
func (t *Tracker) Update(report *model.AnalysisReport) (flipped bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.state.Symbols[report.Symbol]
	if !ok {
		s = &model.SymbolState{}
		t.state.Symbols[report.Symbol] = s
	}

	newSignal := string(report.Signals.Overall)
	flipped = ok && s.LastSignal != "" && s.LastSignal != newSignal
	s.LastSignal = newSignal
	s.LastRating = string(report.Rating.Level)

	if newSignal == string(model.DirectionBullish) {
		s.ConsecutiveBullish++
	} else {
		s.ConsecutiveBullish = 0
	}

	if report.Fundamentals != nil {
		s.RecentScores = append(s.RecentScores, report.Fundamentals.Scores.Overall)
		if len(s.RecentScores) > maxRecentScores {
			s.RecentScores = s.RecentScores[len(s.RecentScores)-maxRecentScores:]
		}
	}
	s.LastAnalyzedAt = report.GeneratedAt

	if err := t.save(); err != nil {
		log.Printf("[ERROR] failed to save tracker state: %v", err)
	}
	return flipped
}

func (t *Tracker) save() error {
	t.state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(t.state, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(t.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(t.filePath, data, 0644)
}

// loadState reads the tracker state from a JSON file. Returns a zero state if
// the file doesn't exist.
func loadState(filePath string) (*model.TrackerState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.TrackerState{}, nil
		}
		return nil, err
	}
	var st model.TrackerState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, err
	}
	return &st, nil
}
