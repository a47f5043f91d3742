package indicator

import "math"

// nanSeries returns a slice of n NaN values. NaN is the engine-wide marker for
// "not computable here" and is never confused with a genuine zero.
func nanSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// rollingMean computes the rolling mean over the given window. The first
// window-1 values are NaN; a NaN inside the window propagates.
func rollingMean(values []float64, window int) []float64 {
	out := nanSeries(len(values))
	if window <= 0 || len(values) < window {
		return out
	}
	for i := window - 1; i < len(values); i++ {
		sum := 0.0
		ok := true
		for j := i - window + 1; j <= i; j++ {
			if math.IsNaN(values[j]) {
				ok = false
				break
			}
			sum += values[j]
		}
		if ok {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// rollingStd computes the rolling sample standard deviation (n-1 denominator).
func rollingStd(values []float64, window int) []float64 {
	out := nanSeries(len(values))
	if window <= 1 || len(values) < window {
		return out
	}
	means := rollingMean(values, window)
	for i := window - 1; i < len(values); i++ {
		if math.IsNaN(means[i]) {
			continue
		}
		sumSq := 0.0
		for j := i - window + 1; j <= i; j++ {
			d := values[j] - means[i]
			sumSq += d * d
		}
		out[i] = math.Sqrt(sumSq / float64(window-1))
	}
	return out
}

// rollingSum computes the rolling sum over the given window.
func rollingSum(values []float64, window int) []float64 {
	out := nanSeries(len(values))
	if window <= 0 || len(values) < window {
		return out
	}
	for i := window - 1; i < len(values); i++ {
		sum := 0.0
		ok := true
		for j := i - window + 1; j <= i; j++ {
			if math.IsNaN(values[j]) {
				ok = false
				break
			}
			sum += values[j]
		}
		if ok {
			out[i] = sum
		}
	}
	return out
}

// rollingMin computes the rolling minimum over the given window.
func rollingMin(values []float64, window int) []float64 {
	return rollingExtreme(values, window, func(a, b float64) bool { return a < b })
}

// rollingMax computes the rolling maximum over the given window.
func rollingMax(values []float64, window int) []float64 {
	return rollingExtreme(values, window, func(a, b float64) bool { return a > b })
}

func rollingExtreme(values []float64, window int, better func(a, b float64) bool) []float64 {
	out := nanSeries(len(values))
	if window <= 0 || len(values) < window {
		return out
	}
	for i := window - 1; i < len(values); i++ {
		best := values[i-window+1]
		ok := !math.IsNaN(best)
		for j := i - window + 2; j <= i && ok; j++ {
			if math.IsNaN(values[j]) {
				ok = false
				break
			}
			if better(values[j], best) {
				best = values[j]
			}
		}
		if ok {
			out[i] = best
		}
	}
	return out
}

// diff returns values[i] - values[i-1] with a NaN at index 0.
func diff(values []float64) []float64 {
	out := nanSeries(len(values))
	for i := 1; i < len(values); i++ {
		out[i] = values[i] - values[i-1]
	}
	return out
}
