package indicator

import "math"

// BollingerResult holds the three Bollinger band lines.
type BollingerResult struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// BollingerBands computes the middle SMA band and upper/lower bands offset by
// stdDev rolling standard deviations.
func BollingerBands(prices []float64, period int, stdDev float64) BollingerResult {
	middle := rollingMean(prices, period)
	std := rollingStd(prices, period)

	upper := nanSeries(len(prices))
	lower := nanSeries(len(prices))
	for i := range prices {
		if math.IsNaN(middle[i]) || math.IsNaN(std[i]) {
			continue
		}
		upper[i] = middle[i] + stdDev*std[i]
		lower[i] = middle[i] - stdDev*std[i]
	}
	return BollingerResult{Upper: upper, Middle: middle, Lower: lower}
}

// TrueRange computes the per-bar true range:
// max(high-low, |high-prevClose|, |low-prevClose|). The first bar has no
// previous close, so its true range is simply high-low.
func TrueRange(highs, lows, closes []float64) []float64 {
	out := make([]float64, len(closes))
	for i := range closes {
		tr := highs[i] - lows[i]
		if i > 0 {
			tr = math.Max(tr, math.Abs(highs[i]-closes[i-1]))
			tr = math.Max(tr, math.Abs(lows[i]-closes[i-1]))
		}
		out[i] = tr
	}
	return out
}

// ATR computes the Average True Range as a rolling mean of the true range.
func ATR(highs, lows, closes []float64, period int) []float64 {
	return rollingMean(TrueRange(highs, lows, closes), period)
}

// KeltnerResult holds the Keltner channel lines.
type KeltnerResult struct {
	Upper []float64
	Lower []float64
}

// KeltnerChannel computes an EMA midline of the typical price offset by a
// multiple of the ATR.
func KeltnerChannel(highs, lows, closes []float64, emaPeriod, atrPeriod int, multiplier float64) KeltnerResult {
	mid := EMA(typicalPrices(highs, lows, closes), emaPeriod)
	atr := ATR(highs, lows, closes, atrPeriod)

	upper := nanSeries(len(closes))
	lower := nanSeries(len(closes))
	for i := range closes {
		if math.IsNaN(mid[i]) || math.IsNaN(atr[i]) {
			continue
		}
		upper[i] = mid[i] + multiplier*atr[i]
		lower[i] = mid[i] - multiplier*atr[i]
	}
	return KeltnerResult{Upper: upper, Lower: lower}
}

// AnnualizedVolatility returns the standard deviation of daily percent
// changes scaled by sqrt(252). NaN with fewer than three prices.
func AnnualizedVolatility(prices []float64) float64 {
	if len(prices) < 3 {
		return math.NaN()
	}
	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] == 0 {
			continue
		}
		returns = append(returns, prices[i]/prices[i-1]-1)
	}
	if len(returns) < 2 {
		return math.NaN()
	}
	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))
	sumSq := 0.0
	for _, r := range returns {
		d := r - mean
		sumSq += d * d
	}
	std := math.Sqrt(sumSq / float64(len(returns)-1))
	return std * math.Sqrt(252)
}
