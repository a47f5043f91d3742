// Package risk computes return-based risk statistics and classifies them
// into a discrete risk rating.
package risk

import (
	"math"

	"StockScope/internal/model"
)

const tradingDays = 252

// Options configures the risk metric computation.
type Options struct {
	// Annual risk-free rate used by Sharpe and Sortino.
	RiskFreeRate float64
	// LogReturns switches from simple percentage changes to log returns.
	LogReturns bool
	// TargetReturn is the threshold below which a return counts as downside.
	TargetReturn float64
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{RiskFreeRate: 0.02}
}

// Compute derives all risk metrics from the series, optionally relative to a
// benchmark of the same granularity. With fewer than two closes every metric
// is NaN and Beta is nil; a missing or degenerate benchmark only nils Beta
// and never aborts the rest.
func Compute(s *model.PriceSeries, benchmark *model.PriceSeries, opts Options) *model.RiskMetrics {
	m := &model.RiskMetrics{
		DailyVolatility:   math.NaN(),
		AnnualVolatility:  math.NaN(),
		SharpeRatio:       math.NaN(),
		SortinoRatio:      math.NaN(),
		MaxDrawdown:       math.NaN(),
		VaR95:             math.NaN(),
		CVaR95:            math.NaN(),
		Skewness:          math.NaN(),
		Kurtosis:          math.NaN(),
		DownsideDeviation: math.NaN(),
	}

	returns := Returns(s.Closes(), opts.LogReturns)
	if len(returns) == 0 {
		return m
	}

	m.DailyVolatility = sampleStd(returns)
	m.AnnualVolatility = m.DailyVolatility * math.Sqrt(tradingDays)

	excess := mean(returns)*tradingDays - opts.RiskFreeRate
	if m.AnnualVolatility > 0 {
		m.SharpeRatio = excess / m.AnnualVolatility
	}

	m.DownsideDeviation = downsideDeviation(returns, opts.TargetReturn)
	if m.DownsideDeviation > 0 {
		m.SortinoRatio = excess / (m.DownsideDeviation * math.Sqrt(tradingDays))
	}

	m.MaxDrawdown = maxDrawdown(returns)
	m.VaR95 = percentile(returns, 5)
	m.CVaR95 = cvar(returns, m.VaR95)
	m.Skewness = skewness(returns)
	m.Kurtosis = excessKurtosis(returns)

	if benchmark != nil {
		m.Beta = beta(returns, Returns(benchmark.Closes(), opts.LogReturns))
	}
	return m
}

// Returns computes per-bar returns between consecutive closes: simple
// percentage changes, or log returns when logMode is set. A zero previous
// close makes that return NaN.
func Returns(closes []float64, logMode bool) []float64 {
	if len(closes) < 2 {
		return nil
	}
	out := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			out[i-1] = math.NaN()
			continue
		}
		if logMode {
			out[i-1] = math.Log(closes[i] / closes[i-1])
		} else {
			out[i-1] = closes[i]/closes[i-1] - 1
		}
	}
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func sampleStd(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	mu := mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - mu
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}

// downsideDeviation is the root-mean-square of returns below the target.
// With no downside returns there is nothing to average and the result is NaN,
// which in turn leaves Sortino undefined.
func downsideDeviation(returns []float64, target float64) float64 {
	sumSq := 0.0
	count := 0
	for _, r := range returns {
		if r < target {
			sumSq += r * r
			count++
		}
	}
	if count == 0 {
		return math.NaN()
	}
	return math.Sqrt(sumSq / float64(count))
}

// maxDrawdown is the deepest peak-to-trough decline of the cumulative return
// curve; always <= 0, and exactly 0 only for a series that never declines.
func maxDrawdown(returns []float64) float64 {
	cum := 1.0
	peak := 1.0
	worst := 0.0
	for _, r := range returns {
		cum *= 1 + r
		if cum > peak {
			peak = cum
		}
		dd := cum/peak - 1
		if dd < worst {
			worst = dd
		}
	}
	return worst
}

// percentile computes the p-th percentile with linear interpolation between
// order statistics.
func percentile(values []float64, p float64) float64 {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return math.NaN()
	}
	sortFloats(clean)
	rank := p / 100 * float64(len(clean)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return clean[lo]
	}
	frac := rank - float64(lo)
	return clean[lo]*(1-frac) + clean[hi]*frac
}

// cvar is the mean of returns at or below the VaR cutoff.
func cvar(returns []float64, varCutoff float64) float64 {
	if math.IsNaN(varCutoff) {
		return math.NaN()
	}
	sum := 0.0
	count := 0
	for _, r := range returns {
		if !math.IsNaN(r) && r <= varCutoff {
			sum += r
			count++
		}
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

// beta is the covariance of stock vs. benchmark returns over the benchmark
// variance. Series are aligned on their most recent overlap. A benchmark with
// zero return variance (or too little overlap) yields nil.
func beta(returns, benchReturns []float64) *float64 {
	n := len(returns)
	if len(benchReturns) < n {
		n = len(benchReturns)
	}
	if n < 2 {
		return nil
	}
	a := returns[len(returns)-n:]
	b := benchReturns[len(benchReturns)-n:]

	meanA := mean(a)
	meanB := mean(b)
	var cov, varB float64
	for i := 0; i < n; i++ {
		cov += (a[i] - meanA) * (b[i] - meanB)
		varB += (b[i] - meanB) * (b[i] - meanB)
	}
	cov /= float64(n - 1)
	varB /= float64(n - 1)
	if varB == 0 || math.IsNaN(varB) {
		return nil
	}
	v := cov / varB
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

// skewness is the bias-corrected sample skewness. NaN below three samples.
func skewness(values []float64) float64 {
	n := float64(len(values))
	if n < 3 {
		return math.NaN()
	}
	mu := mean(values)
	var m2, m3 float64
	for _, v := range values {
		d := v - mu
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= n
	m3 /= n
	if m2 == 0 {
		return math.NaN()
	}
	g1 := m3 / math.Pow(m2, 1.5)
	return g1 * math.Sqrt(n*(n-1)) / (n - 2)
}

// excessKurtosis is the bias-corrected sample excess kurtosis. NaN below four
// samples.
func excessKurtosis(values []float64) float64 {
	n := float64(len(values))
	if n < 4 {
		return math.NaN()
	}
	mu := mean(values)
	var m2, m4 float64
	for _, v := range values {
		d := v - mu
		m2 += d * d
		m4 += d * d * d * d
	}
	m2 /= n
	m4 /= n
	if m2 == 0 {
		return math.NaN()
	}
	g2 := m4/(m2*m2) - 3
	return ((n-1)/((n-2)*(n-3)))*((n+1)*g2+6)
}

func sortFloats(values []float64) {
	// Insertion sort; return windows are at most a few thousand entries and
	// this path runs once per analysis.
	for i := 1; i < len(values); i++ {
		v := values[i]
		j := i - 1
		for j >= 0 && values[j] > v {
			values[j+1] = values[j]
			j--
		}
		values[j+1] = v
	}
}
