package collector

import "StockScope/internal/model"

// Fetcher defines the interface for fetching market data. FetchFundamentals
// may return (nil, nil) when the provider has no fundamentals for a symbol;
// the analysis then simply omits the fundamental report.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.OHLCV, error)
	FetchFundamentals(symbol string) (*model.FundamentalsSnapshot, error)
	Name() string
}
