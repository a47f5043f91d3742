package model

// RiskMetrics holds return-based risk statistics. All fields are NaN when the
// series has fewer than two closes. Beta is nil when no benchmark series was
// supplied or its return variance is zero.
type RiskMetrics struct {
	DailyVolatility   float64
	AnnualVolatility  float64
	SharpeRatio       float64
	SortinoRatio      float64
	MaxDrawdown       float64
	VaR95             float64
	CVaR95            float64
	Beta              *float64
	Skewness          float64
	Kurtosis          float64
	DownsideDeviation float64
}

// RiskLevel is a discrete overall risk rating.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low Risk"
	RiskModerate RiskLevel = "Moderate Risk"
	RiskHigh     RiskLevel = "High Risk"
	RiskVeryHigh RiskLevel = "Very High Risk"
)

// RiskRating is the classified rating plus the contributing factor strings in
// evaluation order (volatility, beta, drawdown).
type RiskRating struct {
	Level   RiskLevel
	Factors []string
}
