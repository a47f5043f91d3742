package indicator

import "math"

// ADXResult holds the ADX line and the positive/negative directional indexes.
type ADXResult struct {
	ADX   []float64
	DIPos []float64
	DINeg []float64
}

// ADX computes the Average Directional Index with Wilder smoothing. The DI
// lines become defined after period bars and ADX after roughly twice that,
// reflecting the nested smoothing; earlier values are NaN.
func ADX(highs, lows, closes []float64, period int) ADXResult {
	n := len(closes)
	res := ADXResult{ADX: nanSeries(n), DIPos: nanSeries(n), DINeg: nanSeries(n)}
	if period <= 0 || n < period+1 {
		return res
	}

	tr := TrueRange(highs, lows, closes)
	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	for i := 1; i < n; i++ {
		up := highs[i] - highs[i-1]
		down := lows[i-1] - lows[i]
		if up > down && up > 0 {
			plusDM[i] = up
		}
		if down > up && down > 0 {
			minusDM[i] = down
		}
	}

	// Wilder smoothing seeded with the sum over the first period of changes.
	var smTR, smPlus, smMinus float64
	for i := 1; i <= period; i++ {
		smTR += tr[i]
		smPlus += plusDM[i]
		smMinus += minusDM[i]
	}

	dx := nanSeries(n)
	for i := period; i < n; i++ {
		if i > period {
			smTR = smTR - smTR/float64(period) + tr[i]
			smPlus = smPlus - smPlus/float64(period) + plusDM[i]
			smMinus = smMinus - smMinus/float64(period) + minusDM[i]
		}
		if smTR == 0 {
			continue
		}
		diPos := 100.0 * smPlus / smTR
		diNeg := 100.0 * smMinus / smTR
		res.DIPos[i] = diPos
		res.DINeg[i] = diNeg
		if diPos+diNeg == 0 {
			continue
		}
		dx[i] = 100.0 * math.Abs(diPos-diNeg) / (diPos + diNeg)
	}

	// ADX is a Wilder-smoothed DX, seeded with the mean of the first period
	// defined DX values.
	start := 2 * period
	if start >= n {
		return res
	}
	sum := 0.0
	count := 0
	for i := period; i < start; i++ {
		if !math.IsNaN(dx[i]) {
			sum += dx[i]
			count++
		}
	}
	if count == 0 {
		return res
	}
	adx := sum / float64(count)
	res.ADX[start-1] = adx
	for i := start; i < n; i++ {
		if math.IsNaN(dx[i]) {
			continue
		}
		adx = (adx*float64(period-1) + dx[i]) / float64(period)
		res.ADX[i] = adx
	}
	return res
}
