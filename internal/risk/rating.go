package risk

import (
	"math"

	"StockScope/internal/model"
)

// Rate scores the metrics on three axes (volatility, market sensitivity,
// drawdown depth) and maps the summed points to a discrete level. Each axis
// contributes 0 to 3 points; a NaN metric or nil beta contributes nothing,
// so sparse data degrades the rating toward Low rather than failing.
func Rate(m *model.RiskMetrics) *model.RiskRating {
	points := 0
	factors := []string{}

	if v := m.AnnualVolatility; !math.IsNaN(v) {
		switch {
		case v > 0.40:
			points += 3
			factors = append(factors, "Very high volatility")
		case v > 0.25:
			points += 2
			factors = append(factors, "High volatility")
		case v > 0.15:
			points++
			factors = append(factors, "Moderate volatility")
		}
	}

	if m.Beta != nil {
		switch b := *m.Beta; {
		case b > 1.5:
			points += 3
			factors = append(factors, "Very high market sensitivity")
		case b > 1.2:
			points += 2
			factors = append(factors, "High market sensitivity")
		case b > 1.0:
			points++
			factors = append(factors, "Above-market sensitivity")
		}
	}

	if d := m.MaxDrawdown; !math.IsNaN(d) {
		switch {
		case d < -0.50:
			points += 3
			factors = append(factors, "Severe historical drawdowns")
		case d < -0.30:
			points += 2
			factors = append(factors, "Significant historical drawdowns")
		case d < -0.20:
			points++
			factors = append(factors, "Moderate historical drawdowns")
		}
	}

	level := model.RiskLow
	switch {
	case points >= 7:
		level = model.RiskVeryHigh
	case points >= 5:
		level = model.RiskHigh
	case points >= 3:
		level = model.RiskModerate
	}

	return &model.RiskRating{Level: level, Factors: factors}
}
