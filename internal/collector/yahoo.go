package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"StockScope/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance public API.
type YahooFetcher struct {
	Client    *http.Client
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
	// MarketSuffix is appended to bare tickers not in SymbolMap, e.g. ".BK"
	// for symbols listed on the Thai exchange.
	MarketSuffix string
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher(proxyURL, marketSuffix string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		SymbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		},
		MarketSuffix: marketSuffix,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	// Index tickers and already-suffixed symbols pass through unchanged.
	if f.MarketSuffix != "" && !strings.HasPrefix(symbol, "^") && !strings.Contains(symbol, ".") {
		return symbol + f.MarketSuffix
	}
	return symbol
}

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (f *YahooFetcher) fetchChart(symbol, interval, rng string) ([]model.OHLCV, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=%s&range=%s",
		url.PathEscape(f.yahooSymbol(symbol)), interval, rng)

	body, err := f.get(u)
	if err != nil {
		return nil, err
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	bars := make([]model.OHLCV, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

func (f *YahooFetcher) get(u string) ([]byte, error) {
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func (f *YahooFetcher) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	// Yahoo range: max "2y" for daily interval
	rng := "2y"
	if days <= 30 {
		rng = "1mo"
	} else if days <= 90 {
		rng = "3mo"
	} else if days <= 180 {
		rng = "6mo"
	} else if days <= 365 {
		rng = "1y"
	}
	bars, err := f.fetchChart(symbol, "1d", rng)
	if err != nil {
		return nil, err
	}
	// Trim to requested count
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}

// yahooSummary is the response structure from the quoteSummary API. Yahoo
// wraps every numeric field in an object whose "raw" key holds the value;
// absent fields decode to nil pointers.
type yahooSummary struct {
	QuoteSummary struct {
		Result []struct {
			SummaryDetail map[string]yahooValue `json:"summaryDetail"`
			KeyStatistics map[string]yahooValue `json:"defaultKeyStatistics"`
			FinancialData map[string]yahooValue `json:"financialData"`
		} `json:"result"`
		Error *struct {
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

type yahooValue struct {
	Raw *float64 `json:"raw"`
}

func (f *YahooFetcher) FetchFundamentals(symbol string) (*model.FundamentalsSnapshot, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=summaryDetail,defaultKeyStatistics,financialData",
		url.PathEscape(f.yahooSymbol(symbol)))

	body, err := f.get(u)
	if err != nil {
		return nil, err
	}

	var summary yahooSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("yahoo decode summary: %w", err)
	}
	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, nil
	}

	r := summary.QuoteSummary.Result[0]
	pick := func(field string, modules ...map[string]yahooValue) *float64 {
		for _, m := range modules {
			if v, ok := m[field]; ok && v.Raw != nil {
				return v.Raw
			}
		}
		return nil
	}

	return &model.FundamentalsSnapshot{
		Symbol:                   symbol,
		MarketCap:                pick("marketCap", r.SummaryDetail, r.KeyStatistics),
		EnterpriseValue:          pick("enterpriseValue", r.KeyStatistics),
		TrailingPE:               pick("trailingPE", r.SummaryDetail),
		ForwardPE:                pick("forwardPE", r.SummaryDetail, r.KeyStatistics),
		PEGRatio:                 pick("pegRatio", r.KeyStatistics),
		PriceToBook:              pick("priceToBook", r.KeyStatistics),
		PriceToSales:             pick("priceToSalesTrailing12Months", r.SummaryDetail),
		EVToEBITDA:               pick("enterpriseToEbitda", r.KeyStatistics),
		GrossMargin:              pick("grossMargins", r.FinancialData),
		OperatingMargin:          pick("operatingMargins", r.FinancialData),
		ProfitMargin:             pick("profitMargins", r.FinancialData, r.KeyStatistics),
		ReturnOnEquity:           pick("returnOnEquity", r.FinancialData),
		ReturnOnAssets:           pick("returnOnAssets", r.FinancialData),
		RevenueGrowth:            pick("revenueGrowth", r.FinancialData),
		EarningsGrowth:           pick("earningsGrowth", r.FinancialData),
		EarningsQuarterlyGrowth:  pick("earningsQuarterlyGrowth", r.KeyStatistics),
		CurrentRatio:             pick("currentRatio", r.FinancialData),
		QuickRatio:               pick("quickRatio", r.FinancialData),
		DebtToEquity:             pick("debtToEquity", r.FinancialData),
		TotalCash:                pick("totalCash", r.FinancialData),
		TotalDebt:                pick("totalDebt", r.FinancialData),
		DividendRate:             pick("dividendRate", r.SummaryDetail),
		DividendYield:            pick("dividendYield", r.SummaryDetail),
		PayoutRatio:              pick("payoutRatio", r.SummaryDetail),
		FiveYearAvgDividendYield: pick("fiveYearAvgDividendYield", r.SummaryDetail),
	}, nil
}
