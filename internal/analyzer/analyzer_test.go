package analyzer

import (
	"math"
	"testing"
	"time"

	"StockScope/internal/model"
)

func seriesFromCloses(symbol string, closes []float64) *model.PriceSeries {
	bars := make([]model.OHLCV, len(closes))
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:   base.AddDate(0, 0, i),
			Open:   c * 0.999,
			High:   c * 1.005,
			Low:    c * 0.995,
			Close:  c,
			Volume: 1000000,
		}
	}
	return &model.PriceSeries{Symbol: symbol, Bars: bars}
}

func TestAnalyze_RisingSeries(t *testing.T) {
	closes := make([]float64, 252)
	closes[0] = 100
	for i := 1; i < len(closes); i++ {
		closes[i] = closes[i-1] * 1.01
	}

	fixed := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	a := New(WithClock(func() time.Time { return fixed }))
	report := a.Analyze(Input{Series: seriesFromCloses("UP", closes)})

	if report.Symbol != "UP" {
		t.Errorf("symbol = %q", report.Symbol)
	}
	if !report.GeneratedAt.Equal(fixed) {
		t.Errorf("generated at = %v", report.GeneratedAt)
	}
	if report.CurrentPrice != closes[len(closes)-1] {
		t.Errorf("current price = %v", report.CurrentPrice)
	}
	if report.Signals.Overall != model.DirectionBullish {
		t.Errorf("overall = %q, want Bullish", report.Signals.Overall)
	}
	if report.Risk.MaxDrawdown != 0 {
		t.Errorf("max drawdown = %v, want 0", report.Risk.MaxDrawdown)
	}
	if report.Risk.Beta != nil {
		t.Error("beta should be nil without a benchmark")
	}
	if report.Rating == nil || report.Rating.Level == "" {
		t.Error("rating should always be present")
	}
	if report.Fundamentals != nil {
		t.Error("fundamentals should be nil without a snapshot")
	}
}

func TestAnalyze_WithBenchmarkAndFundamentals(t *testing.T) {
	closes := []float64{100, 102, 101, 105, 103, 108, 104, 110, 109, 115}
	pe := 12.0
	a := New()
	report := a.Analyze(Input{
		Series:       seriesFromCloses("X", closes),
		Benchmark:    seriesFromCloses("BENCH", closes),
		Fundamentals: &model.FundamentalsSnapshot{Symbol: "X", TrailingPE: &pe},
	})

	if report.Risk.Beta == nil {
		t.Fatal("beta should be computed with a benchmark")
	}
	if math.Abs(*report.Risk.Beta-1) > 1e-9 {
		t.Errorf("beta vs identical benchmark = %v, want 1", *report.Risk.Beta)
	}
	if report.Fundamentals == nil {
		t.Fatal("fundamentals should be computed from a snapshot")
	}
	if report.Fundamentals.Scores.Valuation <= 0 {
		t.Errorf("valuation score = %v", report.Fundamentals.Scores.Valuation)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	closes := []float64{100, 102, 101, 105, 103, 108, 104, 110}
	s := seriesFromCloses("X", closes)
	fixed := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	a := New(WithClock(func() time.Time { return fixed }))

	r1 := a.Analyze(Input{Series: s})
	r2 := a.Analyze(Input{Series: s})
	if r1.Signals.Overall != r2.Signals.Overall {
		t.Error("overall signal differs across identical calls")
	}
	if math.Float64bits(r1.Risk.AnnualVolatility) != math.Float64bits(r2.Risk.AnnualVolatility) {
		t.Error("risk metrics differ across identical calls")
	}
	if r1.Rating.Level != r2.Rating.Level {
		t.Error("rating differs across identical calls")
	}
}
