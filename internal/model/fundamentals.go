package model

// FundamentalsSnapshot is the company summary supplied by the data-acquisition
// collaborator. Fields are pointers because providers return sparse data; a nil
// field means "absent" and ratio computations substitute a defined default of 0
// rather than failing.
//
// Margins, growth rates and yields are fractions (0.25 = 25%).
type FundamentalsSnapshot struct {
	Symbol string

	// Valuation
	MarketCap       *float64
	EnterpriseValue *float64
	TrailingPE      *float64
	ForwardPE       *float64
	PEGRatio        *float64
	PriceToBook     *float64
	PriceToSales    *float64
	EVToEBITDA      *float64

	// Profitability
	GrossMargin     *float64
	OperatingMargin *float64
	ProfitMargin    *float64
	ReturnOnEquity  *float64
	ReturnOnAssets  *float64
	ReturnOnCapital *float64

	// Growth
	RevenueGrowth           *float64
	EarningsGrowth          *float64
	EarningsQuarterlyGrowth *float64

	// Financial strength
	CurrentRatio     *float64
	QuickRatio       *float64
	DebtToEquity     *float64
	InterestCoverage *float64
	TotalCash        *float64
	TotalDebt        *float64

	// Efficiency
	AssetTurnover     *float64
	InventoryTurnover *float64

	// Dividend
	DividendRate             *float64
	DividendYield            *float64
	PayoutRatio              *float64
	FiveYearAvgDividendYield *float64
}

// RatioEntry is one labelled ratio value. Present reports whether the
// underlying snapshot field was supplied; when false, Value is the documented
// default of 0.
type RatioEntry struct {
	Label   string
	Value   float64
	Present bool
}

// RatioGroup is an ordered list of labelled ratios for one category.
type RatioGroup []RatioEntry

// FundamentalScores holds the 0-100 composite scores per category plus the
// fixed weighted overall score.
type FundamentalScores struct {
	Valuation       float64
	Profitability   float64
	Growth          float64
	FinancialHealth float64
	Overall         float64
}

// FundamentalReport bundles the six ratio groups and the derived scores.
type FundamentalReport struct {
	Valuation         RatioGroup
	Profitability     RatioGroup
	Growth            RatioGroup
	FinancialStrength RatioGroup
	Efficiency        RatioGroup
	Dividend          RatioGroup
	Scores            FundamentalScores
}
