package series

import (
	"fmt"
	"math"
	"time"

	"StockScope/internal/model"
)

// Validation failure reasons.
const (
	ReasonMissingColumns       = "missing_columns"
	ReasonEmptyDataset         = "empty_dataset"
	ReasonLengthMismatch       = "length_mismatch"
	ReasonMissingValues        = "missing_values"
	ReasonUnorderedTimestamps  = "unordered_timestamps"
)

// ValidationError reports structurally invalid input data. It is the only hard
// failure the computation pipeline surfaces; all numeric edge cases inside
// well-formed data degrade to NaN markers instead.
type ValidationError struct {
	Reason string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid price data: %s", e.Reason)
	}
	return fmt.Sprintf("invalid price data: %s (%s)", e.Reason, e.Detail)
}

// RawTable is the column-oriented table handed over by the data-acquisition
// layer. A nil column means the provider omitted it entirely; NaN marks a
// missing cell within a column.
type RawTable struct {
	Time   []time.Time
	Open   []float64
	High   []float64
	Low    []float64
	Close  []float64
	Volume []float64
}

// Prepare validates a raw table and returns a clean PriceSeries. The input is
// never modified. Infinite values are treated as missing before validation, so
// a table containing +Inf/-Inf fails with missing_values like any other hole;
// callers that want gap handling must apply ForwardFill explicitly first.
func Prepare(symbol string, raw *RawTable) (*model.PriceSeries, error) {
	if err := checkShape(raw); err != nil {
		return nil, err
	}

	n := len(raw.Time)
	for _, c := range columns(raw) {
		name, col := c.name, c.values
		for i, v := range col {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &ValidationError{
					Reason: ReasonMissingValues,
					Detail: fmt.Sprintf("%s[%d]", name, i),
				}
			}
		}
	}

	for i := 1; i < n; i++ {
		if !raw.Time[i].After(raw.Time[i-1]) {
			return nil, &ValidationError{
				Reason: ReasonUnorderedTimestamps,
				Detail: fmt.Sprintf("index %d", i),
			}
		}
	}

	bars := make([]model.OHLCV, n)
	for i := 0; i < n; i++ {
		bars[i] = model.OHLCV{
			Time:   raw.Time[i],
			Open:   raw.Open[i],
			High:   raw.High[i],
			Low:    raw.Low[i],
			Close:  raw.Close[i],
			Volume: raw.Volume[i],
		}
	}

	return &model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}, nil
}

// ForwardFill returns a copy of the table with infinite values treated as
// missing and every missing cell replaced by the previous value in its column.
// Rows are never dropped, which preserves index alignment for rolling windows.
// Leading holes (no previous value) are left as NaN and still fail Prepare.
func ForwardFill(raw *RawTable) (*RawTable, error) {
	if err := checkShape(raw); err != nil {
		return nil, err
	}

	out := &RawTable{
		Time:   append([]time.Time(nil), raw.Time...),
		Open:   fillColumn(raw.Open),
		High:   fillColumn(raw.High),
		Low:    fillColumn(raw.Low),
		Close:  fillColumn(raw.Close),
		Volume: fillColumn(raw.Volume),
	}
	return out, nil
}

func fillColumn(col []float64) []float64 {
	out := make([]float64, len(col))
	last := math.NaN()
	for i, v := range col {
		if math.IsInf(v, 0) {
			v = math.NaN()
		}
		if math.IsNaN(v) && !math.IsNaN(last) {
			v = last
		}
		out[i] = v
		if !math.IsNaN(v) {
			last = v
		}
	}
	return out
}

func checkShape(raw *RawTable) error {
	if raw == nil {
		return &ValidationError{Reason: ReasonEmptyDataset}
	}

	var missing []string
	for _, c := range columns(raw) {
		if c.values == nil {
			missing = append(missing, c.name)
		}
	}
	if raw.Time == nil {
		missing = append(missing, "time")
	}
	if len(missing) > 0 {
		return &ValidationError{Reason: ReasonMissingColumns, Detail: fmt.Sprint(missing)}
	}

	n := len(raw.Time)
	if n == 0 {
		return &ValidationError{Reason: ReasonEmptyDataset}
	}
	for _, c := range columns(raw) {
		if len(c.values) != n {
			return &ValidationError{
				Reason: ReasonLengthMismatch,
				Detail: fmt.Sprintf("%s has %d rows, time has %d", c.name, len(c.values), n),
			}
		}
	}
	return nil
}

type column struct {
	name   string
	values []float64
}

func columns(raw *RawTable) []column {
	return []column{
		{"open", raw.Open},
		{"high", raw.High},
		{"low", raw.Low},
		{"close", raw.Close},
		{"volume", raw.Volume},
	}
}
