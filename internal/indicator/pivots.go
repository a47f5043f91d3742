package indicator

import "StockScope/internal/model"

// PivotPoints derives classical support/resistance levels from the most
// recent bar's high, low, and close.
func PivotPoints(bar model.OHLCV) model.PivotLevels {
	pivot := (bar.High + bar.Low + bar.Close) / 3.0
	return model.PivotLevels{
		Pivot: pivot,
		R1:    2.0*pivot - bar.Low,
		R2:    pivot + (bar.High - bar.Low),
		S1:    2.0*pivot - bar.High,
		S2:    pivot - (bar.High - bar.Low),
	}
}
