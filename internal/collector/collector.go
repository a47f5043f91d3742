// Package collector fetches raw market data and hands it to the preparation
// layer, producing clean inputs for the analysis engines.
package collector

import (
	"fmt"
	"log"
	"time"

	"StockScope/internal/model"
	"StockScope/internal/series"
)

// Bundle is everything collected for one analysis run. Benchmark and
// Fundamentals may be nil when unavailable; the analysis degrades gracefully.
type Bundle struct {
	Series       *model.PriceSeries
	Benchmark    *model.PriceSeries
	Fundamentals *model.FundamentalsSnapshot
}

// Collector orchestrates data fetching and series preparation.
type Collector struct {
	Fetcher      Fetcher
	Benchmark    string
	LookbackDays int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, benchmark string, lookbackDays int) *Collector {
	return &Collector{Fetcher: fetcher, Benchmark: benchmark, LookbackDays: lookbackDays}
}

// Collect fetches and prepares everything needed to analyze one symbol. The
// primary series is required; benchmark and fundamentals failures are logged
// and degrade to nil.
func (c *Collector) Collect(symbol string) (*Bundle, error) {
	s, err := c.fetchSeries(symbol)
	if err != nil {
		return nil, err
	}
	b := &Bundle{Series: s}

	if c.Benchmark != "" && c.Benchmark != symbol {
		bench, err := c.fetchSeries(c.Benchmark)
		if err != nil {
			log.Printf("[WARN] benchmark %s fetch failed, beta will be unavailable: %v", c.Benchmark, err)
		} else {
			b.Benchmark = bench
		}
	}

	fund, err := c.Fetcher.FetchFundamentals(symbol)
	if err != nil {
		log.Printf("[WARN] fundamentals fetch for %s failed: %v", symbol, err)
	} else {
		b.Fundamentals = fund
	}
	return b, nil
}

func (c *Collector) fetchSeries(symbol string) (*model.PriceSeries, error) {
	bars, err := c.Fetcher.FetchDailyBars(symbol, c.LookbackDays)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars for %s: %w", symbol, err)
	}

	raw := barsToTable(bars)
	filled, err := series.ForwardFill(raw)
	if err != nil {
		return nil, fmt.Errorf("prepare %s: %w", symbol, err)
	}
	s, err := series.Prepare(symbol, filled)
	if err != nil {
		return nil, fmt.Errorf("prepare %s: %w", symbol, err)
	}
	return s, nil
}

func barsToTable(bars []model.OHLCV) *series.RawTable {
	t := &series.RawTable{
		Time:   make([]time.Time, len(bars)),
		Open:   make([]float64, len(bars)),
		High:   make([]float64, len(bars)),
		Low:    make([]float64, len(bars)),
		Close:  make([]float64, len(bars)),
		Volume: make([]float64, len(bars)),
	}
	for i, b := range bars {
		t.Time[i] = b.Time
		t.Open[i] = b.Open
		t.High[i] = b.High
		t.Low[i] = b.Low
		t.Close[i] = b.Close
		t.Volume[i] = b.Volume
	}
	return t
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price        float64
	DailyData    []model.OHLCV
	Fundamentals *model.FundamentalsSnapshot
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) ([]model.OHLCV, error) {
	if m.DailyData != nil {
		return m.DailyData, nil
	}
	return generateMockBars(m.Price, days), nil
}

func (m *MockFetcher) FetchFundamentals(_ string) (*model.FundamentalsSnapshot, error) {
	return m.Fundamentals, nil
}

func generateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
