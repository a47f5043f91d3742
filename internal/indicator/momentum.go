package indicator

import "math"

// RSI computes the Relative Strength Index from rolling means of gains and
// losses over the given period. Values before index period are NaN.
//
// When the average loss over the window is zero the ratio is undefined; the
// documented policy is to report maximal strength, 100.
func RSI(prices []float64, period int) []float64 {
	out := nanSeries(len(prices))
	if period <= 0 || len(prices) <= period {
		return out
	}

	changes := diff(prices)
	gains := nanSeries(len(prices))
	losses := nanSeries(len(prices))
	for i := 1; i < len(prices); i++ {
		if changes[i] > 0 {
			gains[i] = changes[i]
			losses[i] = 0
		} else {
			gains[i] = 0
			losses[i] = -changes[i]
		}
	}

	avgGain := rollingMean(gains, period)
	avgLoss := rollingMean(losses, period)
	for i := period; i < len(prices); i++ {
		if math.IsNaN(avgGain[i]) || math.IsNaN(avgLoss[i]) {
			continue
		}
		if avgLoss[i] == 0 {
			out[i] = 100.0
			continue
		}
		rs := avgGain[i] / avgLoss[i]
		out[i] = 100.0 - 100.0/(1.0+rs)
	}
	return out
}

// StochasticResult holds the %K and %D lines of the stochastic oscillator.
type StochasticResult struct {
	K []float64
	D []float64
}

// Stochastic computes %K over kPeriod and %D as a rolling mean of %K over
// dPeriod. A flat high-low range makes %K undefined for that bar; the value
// stays NaN and propagates into %D rather than raising a failure.
func Stochastic(highs, lows, closes []float64, kPeriod, dPeriod int) StochasticResult {
	k := nanSeries(len(closes))
	lowest := rollingMin(lows, kPeriod)
	highest := rollingMax(highs, kPeriod)
	for i := range closes {
		if math.IsNaN(lowest[i]) || math.IsNaN(highest[i]) {
			continue
		}
		spread := highest[i] - lowest[i]
		if spread == 0 {
			continue
		}
		k[i] = 100.0 * (closes[i] - lowest[i]) / spread
	}
	return StochasticResult{K: k, D: rollingMean(k, dPeriod)}
}

// WilliamsR computes Williams %R over the given period, in [-100, 0].
// A flat range leaves the value NaN.
func WilliamsR(highs, lows, closes []float64, period int) []float64 {
	out := nanSeries(len(closes))
	lowest := rollingMin(lows, period)
	highest := rollingMax(highs, period)
	for i := range closes {
		if math.IsNaN(lowest[i]) || math.IsNaN(highest[i]) {
			continue
		}
		spread := highest[i] - lowest[i]
		if spread == 0 {
			continue
		}
		out[i] = -100.0 * (highest[i] - closes[i]) / spread
	}
	return out
}

// ROC computes the rate of change: percent change of the close versus period
// bars earlier.
func ROC(prices []float64, period int) []float64 {
	out := nanSeries(len(prices))
	for i := period; i < len(prices); i++ {
		if prices[i-period] == 0 {
			continue
		}
		out[i] = (prices[i] - prices[i-period]) / prices[i-period] * 100.0
	}
	return out
}

// CCI computes the Commodity Channel Index over the given period using the
// typical price and its mean absolute deviation with the conventional 0.015
// scaling constant. A zero deviation (flat window) leaves the value NaN.
func CCI(highs, lows, closes []float64, period int) []float64 {
	out := nanSeries(len(closes))
	tp := typicalPrices(highs, lows, closes)
	tpMean := rollingMean(tp, period)
	for i := period - 1; i < len(tp); i++ {
		if math.IsNaN(tpMean[i]) {
			continue
		}
		dev := 0.0
		for j := i - period + 1; j <= i; j++ {
			dev += math.Abs(tp[j] - tpMean[i])
		}
		dev /= float64(period)
		if dev == 0 {
			continue
		}
		out[i] = (tp[i] - tpMean[i]) / (0.015 * dev)
	}
	return out
}

func typicalPrices(highs, lows, closes []float64) []float64 {
	out := make([]float64, len(closes))
	for i := range closes {
		out[i] = (highs[i] + lows[i] + closes[i]) / 3.0
	}
	return out
}
