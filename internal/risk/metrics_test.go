package risk

import (
	"math"
	"testing"
	"time"

	"StockScope/internal/model"
)

func seriesFromCloses(closes []float64) *model.PriceSeries {
	bars := make([]model.OHLCV, len(closes))
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.OHLCV{Time: base.AddDate(0, 0, i), Open: c, High: c, Low: c, Close: c, Volume: 1000}
	}
	return &model.PriceSeries{Symbol: "TEST", Bars: bars}
}

func risingCloses(n int) []float64 {
	closes := make([]float64, n)
	closes[0] = 100
	for i := 1; i < n; i++ {
		closes[i] = closes[i-1] * 1.01
	}
	return closes
}

func TestReturns(t *testing.T) {
	r := Returns([]float64{100, 110, 99}, false)
	if len(r) != 2 {
		t.Fatalf("len = %d, want 2", len(r))
	}
	if math.Abs(r[0]-0.10) > 1e-12 {
		t.Errorf("r[0] = %v, want 0.10", r[0])
	}
	if math.Abs(r[1]-(-0.10)) > 1e-12 {
		t.Errorf("r[1] = %v, want -0.10", r[1])
	}

	lr := Returns([]float64{100, 110}, true)
	if math.Abs(lr[0]-math.Log(1.1)) > 1e-12 {
		t.Errorf("log return = %v, want ln(1.1)", lr[0])
	}

	if Returns([]float64{100}, false) != nil {
		t.Error("single close should yield no returns")
	}
}

func TestCompute_ShortSeries(t *testing.T) {
	m := Compute(seriesFromCloses([]float64{100}), seriesFromCloses(risingCloses(50)), DefaultOptions())
	for name, v := range map[string]float64{
		"daily volatility":   m.DailyVolatility,
		"annual volatility":  m.AnnualVolatility,
		"sharpe":             m.SharpeRatio,
		"sortino":            m.SortinoRatio,
		"max drawdown":       m.MaxDrawdown,
		"var95":              m.VaR95,
		"cvar95":             m.CVaR95,
		"skewness":           m.Skewness,
		"kurtosis":           m.Kurtosis,
		"downside deviation": m.DownsideDeviation,
	} {
		if !math.IsNaN(v) {
			t.Errorf("%s = %v, want NaN for a one-bar series", name, v)
		}
	}
	if m.Beta != nil {
		t.Error("beta should be nil for a one-bar series")
	}
}

func TestMaxDrawdown_NonDecreasing(t *testing.T) {
	m := Compute(seriesFromCloses(risingCloses(252)), nil, DefaultOptions())
	if m.MaxDrawdown != 0 {
		t.Errorf("max drawdown = %v, want exactly 0 for a non-decreasing series", m.MaxDrawdown)
	}
}

func TestMaxDrawdown_KnownValue(t *testing.T) {
	// Cumulative curve: 1.10, 0.55, 0.66. Deepest decline from the 1.10 peak
	// is 0.55/1.10 - 1 = -0.5.
	dd := maxDrawdown([]float64{0.10, -0.50, 0.20})
	if math.Abs(dd-(-0.5)) > 1e-12 {
		t.Errorf("max drawdown = %v, want -0.5", dd)
	}
}

func TestMaxDrawdown_NeverPositive(t *testing.T) {
	seqs := [][]float64{
		{0.01, 0.02, -0.01, 0.03},
		{-0.05, -0.05, 0.2},
		{0, 0, 0},
	}
	for _, returns := range seqs {
		if dd := maxDrawdown(returns); dd > 0 {
			t.Errorf("max drawdown %v > 0 for %v", dd, returns)
		}
	}
}

func TestVaRCVaR_Ordering(t *testing.T) {
	closes := make([]float64, 100)
	closes[0] = 100
	for i := 1; i < len(closes); i++ {
		// Deterministic mix of up and down moves with a few large losses.
		switch {
		case i%17 == 0:
			closes[i] = closes[i-1] * 0.93
		case i%3 == 0:
			closes[i] = closes[i-1] * 0.99
		default:
			closes[i] = closes[i-1] * 1.008
		}
	}
	m := Compute(seriesFromCloses(closes), nil, DefaultOptions())
	if math.IsNaN(m.VaR95) || math.IsNaN(m.CVaR95) {
		t.Fatal("VaR/CVaR should be defined")
	}
	if m.CVaR95 > m.VaR95 {
		t.Errorf("cvar %v > var %v, tail mean must not exceed the cutoff", m.CVaR95, m.VaR95)
	}
	if m.VaR95 >= 0 {
		t.Errorf("var95 = %v, expected negative for a series with losses", m.VaR95)
	}
}

func TestBeta_NilWithoutBenchmark(t *testing.T) {
	m := Compute(seriesFromCloses(risingCloses(50)), nil, DefaultOptions())
	if m.Beta != nil {
		t.Errorf("beta = %v, want nil without a benchmark", *m.Beta)
	}
}

func TestBeta_NilForFlatBenchmark(t *testing.T) {
	flat := make([]float64, 50)
	for i := range flat {
		flat[i] = 100
	}
	m := Compute(seriesFromCloses(risingCloses(50)), seriesFromCloses(flat), DefaultOptions())
	if m.Beta != nil {
		t.Errorf("beta = %v, want nil for zero benchmark variance", *m.Beta)
	}
}

func TestBeta_SelfIsOne(t *testing.T) {
	closes := []float64{100, 102, 101, 105, 103, 108, 104, 110}
	s := seriesFromCloses(closes)
	m := Compute(s, s, DefaultOptions())
	if m.Beta == nil {
		t.Fatal("beta should be defined against itself")
	}
	if math.Abs(*m.Beta-1) > 1e-9 {
		t.Errorf("beta vs self = %v, want 1", *m.Beta)
	}
}

func TestSortino_UndefinedWithoutDownside(t *testing.T) {
	m := Compute(seriesFromCloses(risingCloses(50)), nil, DefaultOptions())
	if !math.IsNaN(m.DownsideDeviation) {
		t.Errorf("downside deviation = %v, want NaN with no losing days", m.DownsideDeviation)
	}
	if !math.IsNaN(m.SortinoRatio) {
		t.Errorf("sortino = %v, want NaN with no losing days", m.SortinoRatio)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	s := seriesFromCloses(risingCloses(100))
	b := seriesFromCloses(risingCloses(100))
	m1 := Compute(s, b, DefaultOptions())
	m2 := Compute(s, b, DefaultOptions())

	pairs := [][2]float64{
		{m1.DailyVolatility, m2.DailyVolatility},
		{m1.AnnualVolatility, m2.AnnualVolatility},
		{m1.SharpeRatio, m2.SharpeRatio},
		{m1.MaxDrawdown, m2.MaxDrawdown},
		{m1.VaR95, m2.VaR95},
		{m1.CVaR95, m2.CVaR95},
		{m1.Skewness, m2.Skewness},
		{m1.Kurtosis, m2.Kurtosis},
	}
	for i, p := range pairs {
		if math.Float64bits(p[0]) != math.Float64bits(p[1]) {
			t.Errorf("metric %d differs across identical calls: %v vs %v", i, p[0], p[1])
		}
	}
}

func TestPercentile_Interpolation(t *testing.T) {
	got := percentile([]float64{1, 2, 3, 4, 5}, 50)
	if got != 3 {
		t.Errorf("median = %v, want 3", got)
	}
	got = percentile([]float64{1, 2, 3, 4}, 50)
	if math.Abs(got-2.5) > 1e-12 {
		t.Errorf("median = %v, want 2.5", got)
	}
}

func TestAnnualVolatility_Scaling(t *testing.T) {
	closes := []float64{100, 101, 100, 102, 99, 103}
	m := Compute(seriesFromCloses(closes), nil, DefaultOptions())
	if math.Abs(m.AnnualVolatility-m.DailyVolatility*math.Sqrt(252)) > 1e-12 {
		t.Errorf("annual %v != daily %v * sqrt(252)", m.AnnualVolatility, m.DailyVolatility)
	}
}
