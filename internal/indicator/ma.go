package indicator

// SMA computes the simple moving average of prices over the given period.
// The first period-1 values are NaN.
func SMA(prices []float64, period int) []float64 {
	return rollingMean(prices, period)
}

// EMA computes the exponentially weighted moving average with the standard
// span smoothing factor 2/(period+1). The recursion is seeded with the first
// price and every value is defined; early values are naturally noisier and
// not masked.
func EMA(prices []float64, period int) []float64 {
	out := nanSeries(len(prices))
	if len(prices) == 0 || period <= 0 {
		return out
	}
	alpha := 2.0 / (float64(period) + 1.0)
	out[0] = prices[0]
	for i := 1; i < len(prices); i++ {
		out[i] = alpha*prices[i] + (1-alpha)*out[i-1]
	}
	return out
}

// MACDResult holds the MACD line, its signal line, and the histogram.
type MACDResult struct {
	Line      []float64
	Signal    []float64
	Histogram []float64
}

// MACD computes EMA(fast) - EMA(slow), an EMA of that line as the signal,
// and the line-minus-signal histogram.
func MACD(prices []float64, fast, slow, signal int) MACDResult {
	fastEMA := EMA(prices, fast)
	slowEMA := EMA(prices, slow)

	line := make([]float64, len(prices))
	for i := range prices {
		line[i] = fastEMA[i] - slowEMA[i]
	}
	sig := EMA(line, signal)

	hist := make([]float64, len(prices))
	for i := range prices {
		hist[i] = line[i] - sig[i]
	}
	return MACDResult{Line: line, Signal: sig, Histogram: hist}
}
