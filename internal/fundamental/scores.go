package fundamental

import "StockScope/internal/model"

// Category weights for the overall score.
const (
	weightValuation     = 0.30
	weightProfitability = 0.25
	weightGrowth        = 0.25
	weightHealth        = 0.20
)

// Score derives the 0-100 composite scores from the snapshot. Absent fields
// substitute 0 rather than aborting; a non-positive P/E forces the valuation
// score to the neutral 50 since a negative earnings multiple is not
// comparably "cheap". Every score is clamped to [0,100].
func Score(f *model.FundamentalsSnapshot) model.FundamentalScores {
	s := model.FundamentalScores{
		Valuation:       valuationScore(value(f.TrailingPE), value(f.PriceToBook)),
		Profitability:   clamp(value(f.ProfitMargin)*100*3 + value(f.ReturnOnEquity)*100*2),
		Growth:          clamp((value(f.RevenueGrowth)*100 + value(f.EarningsGrowth)*100) * 2.5),
		FinancialHealth: clamp(value(f.CurrentRatio)*30 - value(f.DebtToEquity)*10 + 50),
	}
	s.Overall = weightValuation*s.Valuation +
		weightProfitability*s.Profitability +
		weightGrowth*s.Growth +
		weightHealth*s.FinancialHealth
	return s
}

func valuationScore(pe, pb float64) float64 {
	if pe <= 0 {
		return 50
	}
	return clamp((pe/30 + pb/3) * 50)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
