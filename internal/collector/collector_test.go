package collector

import (
	"math"
	"testing"
	"time"

	"StockScope/internal/model"
)

func TestCollect_Mock(t *testing.T) {
	pe := 15.0
	fetcher := &MockFetcher{
		Price:        100,
		Fundamentals: &model.FundamentalsSnapshot{TrailingPE: &pe},
	}
	c := NewCollector(fetcher, "SPY", 60)

	bundle, err := c.Collect("TEST")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if bundle.Series == nil || bundle.Series.Len() != 60 {
		t.Fatalf("expected 60 prepared bars, got %v", bundle.Series)
	}
	if bundle.Series.Symbol != "TEST" {
		t.Errorf("symbol = %q", bundle.Series.Symbol)
	}
	if bundle.Benchmark == nil || bundle.Benchmark.Symbol != "SPY" {
		t.Error("benchmark series should be collected")
	}
	if bundle.Fundamentals == nil || bundle.Fundamentals.TrailingPE == nil {
		t.Error("fundamentals should be passed through")
	}
}

func TestCollect_SkipsBenchmarkForItself(t *testing.T) {
	c := NewCollector(&MockFetcher{Price: 100}, "SPY", 30)
	bundle, err := c.Collect("SPY")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if bundle.Benchmark != nil {
		t.Error("a symbol should not be its own benchmark")
	}
}

func TestBarsToTable_FillsGaps(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := []model.OHLCV{
		{Time: base, Open: 100, High: 101, Low: 99, Close: 100, Volume: 1000},
		{Time: base.AddDate(0, 0, 1), Open: 100, High: 102, Low: 99, Close: math.NaN(), Volume: 1000},
		{Time: base.AddDate(0, 0, 2), Open: 101, High: 103, Low: 100, Close: 102, Volume: 1000},
	}
	c := NewCollector(&MockFetcher{DailyData: bars}, "", 10)

	bundle, err := c.Collect("TEST")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	// The NaN close is forward-filled before preparation.
	if got := bundle.Series.Bars[1].Close; got != 100 {
		t.Errorf("filled close = %v, want 100", got)
	}
}

func TestYahooSymbol_MarketSuffix(t *testing.T) {
	f := NewYahooFetcher("", ".BK")
	tests := []struct {
		in, want string
	}{
		{"PTT", "PTT.BK"},
		{"AOT", "AOT.BK"},
		{"^GSPC", "^GSPC"},
		{"BRK.B", "BRK.B"},
		{"SPX500", "^GSPC"}, // explicit mapping wins
	}
	for _, tt := range tests {
		if got := f.yahooSymbol(tt.in); got != tt.want {
			t.Errorf("yahooSymbol(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestYahooSymbol_NoSuffix(t *testing.T) {
	f := NewYahooFetcher("", "")
	if got := f.yahooSymbol("AAPL"); got != "AAPL" {
		t.Errorf("yahooSymbol = %q, want AAPL", got)
	}
}
