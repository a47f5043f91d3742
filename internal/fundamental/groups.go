// Package fundamental arranges sparse company fundamentals into labelled
// ratio groups and composite 0-100 scores.
package fundamental

import "StockScope/internal/model"

// BuildReport assembles the six ratio groups and attaches the derived scores.
func BuildReport(f *model.FundamentalsSnapshot) *model.FundamentalReport {
	return &model.FundamentalReport{
		Valuation: group(
			entry("Market Cap", f.MarketCap),
			entry("Enterprise Value", f.EnterpriseValue),
			entry("Trailing P/E", f.TrailingPE),
			entry("Forward P/E", f.ForwardPE),
			entry("PEG Ratio", f.PEGRatio),
			entry("Price/Book", f.PriceToBook),
			entry("Price/Sales", f.PriceToSales),
			entry("EV/EBITDA", f.EVToEBITDA),
		),
		Profitability: group(
			entry("Gross Margin", f.GrossMargin),
			entry("Operating Margin", f.OperatingMargin),
			entry("Profit Margin", f.ProfitMargin),
			entry("Return on Equity", f.ReturnOnEquity),
			entry("Return on Assets", f.ReturnOnAssets),
			entry("Return on Capital", f.ReturnOnCapital),
		),
		Growth: group(
			entry("Revenue Growth", f.RevenueGrowth),
			entry("Earnings Growth", f.EarningsGrowth),
			entry("Earnings Growth (Quarterly)", f.EarningsQuarterlyGrowth),
		),
		FinancialStrength: group(
			entry("Current Ratio", f.CurrentRatio),
			entry("Quick Ratio", f.QuickRatio),
			entry("Debt/Equity", f.DebtToEquity),
			entry("Interest Coverage", f.InterestCoverage),
			entry("Total Cash", f.TotalCash),
			entry("Total Debt", f.TotalDebt),
		),
		Efficiency: group(
			entry("Asset Turnover", f.AssetTurnover),
			entry("Inventory Turnover", f.InventoryTurnover),
		),
		Dividend: group(
			entry("Dividend Rate", f.DividendRate),
			entry("Dividend Yield", f.DividendYield),
			entry("Payout Ratio", f.PayoutRatio),
			entry("5Y Avg Dividend Yield", f.FiveYearAvgDividendYield),
		),
		Scores: Score(f),
	}
}

func group(entries ...model.RatioEntry) model.RatioGroup {
	return model.RatioGroup(entries)
}

func entry(label string, v *float64) model.RatioEntry {
	e := model.RatioEntry{Label: label}
	if v != nil {
		e.Value = *v
		e.Present = true
	}
	return e
}
