// Package analyzer runs the full computation chain for one symbol: prepared
// series in, complete report out.
package analyzer

import (
	"time"

	"StockScope/internal/fundamental"
	"StockScope/internal/indicator"
	"StockScope/internal/model"
	"StockScope/internal/risk"
	"StockScope/internal/signal"
)

// Input carries everything a single analysis needs. Benchmark and
// Fundamentals are optional.
type Input struct {
	Series       *model.PriceSeries
	Benchmark    *model.PriceSeries
	Fundamentals *model.FundamentalsSnapshot
}

// Analyzer wires the calculation engines together. The zero value is not
// usable; construct with New.
type Analyzer struct {
	indicatorCfg indicator.Config
	riskOpts     risk.Options
	now          func() time.Time
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithIndicatorConfig overrides the default indicator windows.
func WithIndicatorConfig(cfg indicator.Config) Option {
	return func(a *Analyzer) { a.indicatorCfg = cfg }
}

// WithRiskOptions overrides the default risk computation options.
func WithRiskOptions(opts risk.Options) Option {
	return func(a *Analyzer) { a.riskOpts = opts }
}

// WithClock overrides the report timestamp source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		indicatorCfg: indicator.DefaultConfig(),
		riskOpts:     risk.DefaultOptions(),
		now:          time.Now,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Analyze computes indicators, signals, risk metrics, the risk rating, and,
// when a fundamentals snapshot is present, the fundamental report. The input
// series must already have passed series.Prepare; Analyze itself cannot fail.
func (a *Analyzer) Analyze(in Input) *model.AnalysisReport {
	report := &model.AnalysisReport{
		Symbol:      in.Series.Symbol,
		GeneratedAt: a.now(),
	}
	if in.Series.Len() > 0 {
		report.CurrentPrice = in.Series.Last().Close
	}

	report.Indicators = indicator.Compute(in.Series, a.indicatorCfg)
	report.Signals = signal.Classify(in.Series, report.Indicators)
	report.Risk = risk.Compute(in.Series, in.Benchmark, a.riskOpts)
	report.Rating = risk.Rate(report.Risk)

	if in.Fundamentals != nil {
		report.Fundamentals = fundamental.BuildReport(in.Fundamentals)
	}
	return report
}
