package indicator

import (
	"fmt"
	"math"

	"StockScope/internal/model"
)

// Compute runs every configured indicator over the prepared series and
// returns a fresh IndicatorSet. It is a pure function of its inputs: the
// series is never modified and nothing is cached between calls.
//
// Indicators whose window exceeds the available history come back as NaN
// prefixes rather than errors, so a short series still yields a complete
// result structure.
func Compute(s *model.PriceSeries, cfg Config) *model.IndicatorSet {
	closes := s.Closes()
	highs := s.Highs()
	lows := s.Lows()
	volumes := s.Volumes()

	out := &model.IndicatorSet{
		Series:   make(map[string][]float64),
		Scalars:  make(map[string]float64),
		Statuses: make(map[string]string),
	}

	for _, p := range cfg.SMAPeriods {
		out.Series[fmt.Sprintf("SMA_%d", p)] = SMA(closes, p)
	}
	for _, p := range cfg.EMAPeriods {
		out.Series[fmt.Sprintf("EMA_%d", p)] = EMA(closes, p)
	}

	out.Series["RSI"] = RSI(closes, cfg.RSIPeriod)

	macd := MACD(closes, cfg.MACDFast, cfg.MACDSlow, cfg.MACDSignal)
	out.Series["MACD_line"] = macd.Line
	out.Series["MACD_signal"] = macd.Signal
	out.Series["MACD_hist"] = macd.Histogram

	bb := BollingerBands(closes, cfg.BollingerPeriod, cfg.BollingerStdDev)
	out.Series["BB_upper"] = bb.Upper
	out.Series["BB_middle"] = bb.Middle
	out.Series["BB_lower"] = bb.Lower

	out.Series["ATR"] = ATR(highs, lows, closes, cfg.ATRPeriod)

	kc := KeltnerChannel(highs, lows, closes, cfg.KeltnerEMAPeriod, cfg.KeltnerATRPeriod, cfg.KeltnerMultiplier)
	out.Series["KC_upper"] = kc.Upper
	out.Series["KC_lower"] = kc.Lower

	stoch := Stochastic(highs, lows, closes, cfg.StochasticK, cfg.StochasticD)
	out.Series["Stoch_K"] = stoch.K
	out.Series["Stoch_D"] = stoch.D

	out.Series["Williams_R"] = WilliamsR(highs, lows, closes, cfg.WilliamsRPeriod)
	out.Series["ROC"] = ROC(closes, cfg.ROCPeriod)
	out.Series["CCI"] = CCI(highs, lows, closes, cfg.CCIPeriod)

	adx := ADX(highs, lows, closes, cfg.ADXPeriod)
	out.Series["ADX"] = adx.ADX
	out.Series["DI_pos"] = adx.DIPos
	out.Series["DI_neg"] = adx.DINeg

	out.Series["OBV"] = OBV(closes, volumes)
	out.Series["VWAP"] = VWAP(highs, lows, closes, volumes)
	out.Series["MFI"] = MFI(highs, lows, closes, volumes, cfg.MFIPeriod)

	out.Scalars["Volatility"] = AnnualizedVolatility(closes)
	out.Scalars["Volume_Ratio"] = volumeRatio(volumes)
	if sup := rollingMin(lows, cfg.RangeWindow); len(sup) > 0 {
		out.Scalars["Support_Level"] = sup[len(sup)-1]
	}
	if res := rollingMax(highs, cfg.RangeWindow); len(res) > 0 {
		out.Scalars["Resistance_Level"] = res[len(res)-1]
	}

	if s.Len() > 0 {
		out.Pivots = PivotPoints(s.Last())
	}

	buildStatuses(out, closes)
	return out
}

func volumeRatio(volumes []float64) float64 {
	if len(volumes) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range volumes {
		sum += v
	}
	avg := sum / float64(len(volumes))
	if avg == 0 {
		return math.NaN()
	}
	return volumes[len(volumes)-1] / avg
}

// buildStatuses derives the descriptive status strings from the latest
// indicator values. Any status whose inputs are undefined reads "N/A".
func buildStatuses(set *model.IndicatorSet, closes []float64) {
	if len(closes) == 0 {
		return
	}
	latestClose := closes[len(closes)-1]

	sma50 := set.Latest("SMA_50")
	sma200 := set.Latest("SMA_200")
	if !math.IsNaN(sma50) {
		status := "Price below 50-day MA (Bearish)"
		if latestClose > sma50 {
			status = "Price above 50-day MA (Bullish)"
		}
		if !math.IsNaN(sma200) {
			if sma50 > sma200 {
				status += "; Golden Cross pattern (Bullish)"
			} else if sma50 < sma200 {
				status += "; Death Cross pattern (Bearish)"
			}
		}
		set.Statuses["MA_Status"] = status
	}

	if rsi := set.Latest("RSI"); !math.IsNaN(rsi) {
		switch {
		case rsi > 70:
			set.Statuses["RSI_Signal"] = "Overbought"
		case rsi < 30:
			set.Statuses["RSI_Signal"] = "Oversold"
		default:
			set.Statuses["RSI_Signal"] = "Neutral"
		}
	}

	macdLine := set.Latest("MACD_line")
	macdSig := set.Latest("MACD_signal")
	if !math.IsNaN(macdLine) && !math.IsNaN(macdSig) {
		if macdLine > macdSig {
			set.Statuses["MACD_Signal"] = "Bullish"
		} else {
			set.Statuses["MACD_Signal"] = "Bearish"
		}
	}

	bbUpper := set.Latest("BB_upper")
	bbLower := set.Latest("BB_lower")
	if !math.IsNaN(bbUpper) && !math.IsNaN(bbLower) {
		switch {
		case latestClose > bbUpper:
			set.Statuses["BB_Status"] = "Price above upper band (Overbought)"
		case latestClose < bbLower:
			set.Statuses["BB_Status"] = "Price below lower band (Oversold)"
		default:
			set.Statuses["BB_Status"] = "Price within bands (Neutral)"
		}
	}

	if ratio := set.Scalar("Volume_Ratio"); !math.IsNaN(ratio) {
		switch {
		case ratio > 2:
			set.Statuses["Volume_Signal"] = "Unusually high volume"
		case ratio < 0.5:
			set.Statuses["Volume_Signal"] = "Unusually low volume"
		default:
			set.Statuses["Volume_Signal"] = "Normal volume"
		}
	}

	if trend, ok := trendPct(closes, 5); ok {
		set.Statuses["Short_Term_Trend"] = formatTrend(trend)
	}
	if trend, ok := trendPct(closes, 20); ok {
		set.Statuses["Medium_Term_Trend"] = formatTrend(trend)
	}
}

func trendPct(closes []float64, lookback int) (float64, bool) {
	n := len(closes)
	if n < lookback || closes[n-lookback] == 0 {
		return 0, false
	}
	return (closes[n-1] - closes[n-lookback]) / closes[n-lookback] * 100.0, true
}

func formatTrend(pct float64) string {
	dir := "down"
	if pct > 0 {
		dir = "up"
	}
	return fmt.Sprintf("%.1f%% %s", pct, dir)
}
