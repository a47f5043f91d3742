package series

import (
	"errors"
	"math"
	"testing"
	"time"
)

func validTable(n int) *RawTable {
	t := &RawTable{
		Time:   make([]time.Time, n),
		Open:   make([]float64, n),
		High:   make([]float64, n),
		Low:    make([]float64, n),
		Close:  make([]float64, n),
		Volume: make([]float64, n),
	}
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		p := 100.0 + float64(i)
		t.Time[i] = base.AddDate(0, 0, i)
		t.Open[i] = p
		t.High[i] = p + 1
		t.Low[i] = p - 1
		t.Close[i] = p + 0.5
		t.Volume[i] = 1000
	}
	return t
}

func reason(t *testing.T, err error) string {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	return verr.Reason
}

func TestPrepare_Valid(t *testing.T) {
	s, err := Prepare("TEST", validTable(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Symbol != "TEST" {
		t.Errorf("symbol = %q", s.Symbol)
	}
	if s.Len() != 10 {
		t.Errorf("expected 10 bars, got %d", s.Len())
	}
	if s.Last().Close != 109.5 {
		t.Errorf("last close = %v", s.Last().Close)
	}
}

func TestPrepare_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RawTable) *RawTable
		reason string
	}{
		{"nil table", func(_ *RawTable) *RawTable { return nil }, ReasonEmptyDataset},
		{"empty table", func(_ *RawTable) *RawTable { return validTable(0) }, ReasonEmptyDataset},
		{"missing column", func(r *RawTable) *RawTable { r.Open = nil; return r }, ReasonMissingColumns},
		{"length mismatch", func(r *RawTable) *RawTable { r.Close = r.Close[:5]; return r }, ReasonLengthMismatch},
		{"nan cell", func(r *RawTable) *RawTable { r.High[3] = math.NaN(); return r }, ReasonMissingValues},
		{"inf cell", func(r *RawTable) *RawTable { r.Low[7] = math.Inf(1); return r }, ReasonMissingValues},
		{"duplicate timestamp", func(r *RawTable) *RawTable { r.Time[4] = r.Time[3]; return r }, ReasonUnorderedTimestamps},
		{"backwards timestamp", func(r *RawTable) *RawTable { r.Time[4] = r.Time[0]; return r }, ReasonUnorderedTimestamps},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Prepare("TEST", tt.mutate(validTable(10)))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := reason(t, err); got != tt.reason {
				t.Errorf("reason = %q, want %q", got, tt.reason)
			}
		})
	}
}

func TestPrepare_DoesNotMutateInput(t *testing.T) {
	raw := validTable(5)
	before := raw.Close[2]
	s, err := Prepare("TEST", raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Bars[2].Close = -1
	if raw.Close[2] != before {
		t.Error("input table was mutated")
	}
}

func TestForwardFill(t *testing.T) {
	raw := validTable(6)
	raw.Close[2] = math.NaN()
	raw.Close[3] = math.Inf(-1)
	raw.Volume[0] = math.NaN() // leading hole, nothing to fill from

	filled, err := ForwardFill(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filled.Close[2] != raw.Close[1] {
		t.Errorf("close[2] = %v, want carried %v", filled.Close[2], raw.Close[1])
	}
	if filled.Close[3] != raw.Close[1] {
		t.Errorf("close[3] = %v, want carried %v", filled.Close[3], raw.Close[1])
	}
	if !math.IsNaN(filled.Volume[0]) {
		t.Errorf("leading hole should stay NaN, got %v", filled.Volume[0])
	}
	// Original untouched.
	if !math.IsNaN(raw.Close[2]) {
		t.Error("input table was mutated")
	}
}

func TestForwardFill_ThenPrepare(t *testing.T) {
	raw := validTable(6)
	raw.Close[2] = math.NaN()

	filled, err := ForwardFill(raw)
	if err != nil {
		t.Fatalf("forward fill: %v", err)
	}
	if _, err := Prepare("TEST", filled); err != nil {
		t.Fatalf("prepare after fill: %v", err)
	}
}
