package indicator

import "math"

// OBV computes On-Balance Volume: a running sum of volume signed by the
// direction of the close-to-close change. The first bar starts the sum at 0.
func OBV(closes, volumes []float64) []float64 {
	out := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		switch {
		case closes[i] > closes[i-1]:
			out[i] = out[i-1] + volumes[i]
		case closes[i] < closes[i-1]:
			out[i] = out[i-1] - volumes[i]
		default:
			out[i] = out[i-1]
		}
	}
	return out
}

// VWAP computes the cumulative volume-weighted average price over the typical
// price. Bars before any volume has traded have no defined VWAP and stay NaN;
// a later zero-volume bar simply carries the cumulative ratio forward.
func VWAP(highs, lows, closes, volumes []float64) []float64 {
	out := nanSeries(len(closes))
	tp := typicalPrices(highs, lows, closes)
	var cumPV, cumVol float64
	for i := range closes {
		cumPV += tp[i] * volumes[i]
		cumVol += volumes[i]
		if cumVol > 0 {
			out[i] = cumPV / cumVol
		}
	}
	return out
}

// MFI computes the Money Flow Index over the given period, splitting typical
// price × volume into positive and negative flow by the sign of the typical
// price change. Like RSI, a zero negative flow resolves to 100; a window with
// no flow at all stays NaN.
func MFI(highs, lows, closes, volumes []float64, period int) []float64 {
	n := len(closes)
	out := nanSeries(n)
	if period <= 0 || n <= period {
		return out
	}

	tp := typicalPrices(highs, lows, closes)
	posFlow := nanSeries(n)
	negFlow := nanSeries(n)
	for i := 1; i < n; i++ {
		flow := tp[i] * volumes[i]
		posFlow[i] = 0
		negFlow[i] = 0
		if tp[i] > tp[i-1] {
			posFlow[i] = flow
		} else if tp[i] < tp[i-1] {
			negFlow[i] = flow
		}
	}

	posSum := rollingSum(posFlow, period)
	negSum := rollingSum(negFlow, period)
	for i := period; i < n; i++ {
		if math.IsNaN(posSum[i]) || math.IsNaN(negSum[i]) {
			continue
		}
		if negSum[i] == 0 {
			if posSum[i] == 0 {
				continue
			}
			out[i] = 100.0
			continue
		}
		ratio := posSum[i] / negSum[i]
		out[i] = 100.0 - 100.0/(1.0+ratio)
	}
	return out
}
