// Package signal turns computed indicator values into categorical trading
// signals. Threshold rules append human-readable descriptions to the bullish
// and bearish buckets; a separate fixed panel of boolean conditions is
// majority-voted into the overall verdict. The two are intentionally
// independent and may disagree.
package signal

import (
	"math"

	"StockScope/internal/model"
)

// Classify evaluates all signal rules against the latest (and, for
// crossovers, previous) indicator values.
func Classify(s *model.PriceSeries, set *model.IndicatorSet) *model.SignalSet {
	out := &model.SignalSet{
		Bullish: []string{},
		Bearish: []string{},
		Neutral: []string{},
		Overall: model.DirectionNeutral,
	}
	if s.Len() == 0 {
		return out
	}
	latestClose := s.Last().Close

	sma50 := set.Latest("SMA_50")
	sma200 := set.Latest("SMA_200")
	if !math.IsNaN(sma50) && !math.IsNaN(sma200) {
		if sma50 > sma200 {
			out.Bullish = append(out.Bullish, "Golden Cross (SMA50 above SMA200)")
		} else if sma50 < sma200 {
			out.Bearish = append(out.Bearish, "Death Cross (SMA50 below SMA200)")
		}
	}

	rsi := set.Latest("RSI")
	if !math.IsNaN(rsi) {
		if rsi > 70 {
			out.Bearish = append(out.Bearish, "RSI Overbought (>70)")
		} else if rsi < 30 {
			out.Bullish = append(out.Bullish, "RSI Oversold (<30)")
		}
	}

	hist := set.Latest("MACD_hist")
	prevHist := set.Previous("MACD_hist")
	if !math.IsNaN(hist) && !math.IsNaN(prevHist) {
		if hist > 0 && prevHist <= 0 {
			out.Bullish = append(out.Bullish, "MACD Bullish Crossover")
		} else if hist < 0 && prevHist >= 0 {
			out.Bearish = append(out.Bearish, "MACD Bearish Crossover")
		}
	}

	bbUpper := set.Latest("BB_upper")
	bbLower := set.Latest("BB_lower")
	if !math.IsNaN(bbUpper) && !math.IsNaN(bbLower) {
		if latestClose < bbLower {
			out.Bullish = append(out.Bullish, "Price below Lower Bollinger Band")
		} else if latestClose > bbUpper {
			out.Bearish = append(out.Bearish, "Price above Upper Bollinger Band")
		}
	}

	adx := set.Latest("ADX")
	diPos := set.Latest("DI_pos")
	diNeg := set.Latest("DI_neg")
	if !math.IsNaN(adx) && adx > 25 && !math.IsNaN(diPos) && !math.IsNaN(diNeg) {
		if diPos > diNeg {
			out.Bullish = append(out.Bullish, "Strong Uptrend (ADX>25, +DI>-DI)")
		} else {
			out.Bearish = append(out.Bearish, "Strong Downtrend (ADX>25, +DI<-DI)")
		}
	}

	out.Overall = overallVerdict(latestClose, set)
	return out
}

// overallVerdict counts a fixed panel of boolean conditions for each side and
// takes the majority; a tie (including the all-NaN case) is Neutral.
func overallVerdict(latestClose float64, set *model.IndicatorSet) model.Direction {
	sma50 := set.Latest("SMA_50")
	sma200 := set.Latest("SMA_200")
	rsi := set.Latest("RSI")
	macdLine := set.Latest("MACD_line")
	macdSig := set.Latest("MACD_signal")
	volRatio := set.Scalar("Volume_Ratio")

	bullish := 0
	bearish := 0

	if !math.IsNaN(sma50) {
		if latestClose > sma50 {
			bullish++
		} else if latestClose < sma50 {
			bearish++
		}
	}
	if !math.IsNaN(sma50) && !math.IsNaN(sma200) {
		if sma50 > sma200 {
			bullish++
		} else if sma50 < sma200 {
			bearish++
		}
	}
	if !math.IsNaN(rsi) {
		if rsi >= 30 && rsi <= 70 {
			bullish++
		} else {
			bearish++
		}
	}
	if !math.IsNaN(macdLine) && !math.IsNaN(macdSig) {
		if macdLine > macdSig {
			bullish++
		} else if macdLine < macdSig {
			bearish++
		}
	}
	if !math.IsNaN(volRatio) {
		if volRatio > 1 {
			bullish++
		} else if volRatio < 1 {
			bearish++
		}
	}

	switch {
	case bullish > bearish:
		return model.DirectionBullish
	case bearish > bullish:
		return model.DirectionBearish
	default:
		return model.DirectionNeutral
	}
}
