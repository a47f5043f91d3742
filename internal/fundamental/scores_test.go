package fundamental

import (
	"math"
	"testing"

	"StockScope/internal/model"
)

func ptr(v float64) *float64 { return &v }

func TestScore_TypicalSnapshot(t *testing.T) {
	f := &model.FundamentalsSnapshot{
		TrailingPE:     ptr(15),
		PriceToBook:    ptr(1.5),
		ProfitMargin:   ptr(0.20),
		ReturnOnEquity: ptr(0.15),
		RevenueGrowth:  ptr(0.10),
		EarningsGrowth: ptr(0.10),
		CurrentRatio:   ptr(2.0),
		DebtToEquity:   ptr(3.0),
	}
	s := Score(f)

	if s.Valuation != 50 {
		t.Errorf("valuation = %v, want 50", s.Valuation)
	}
	if s.Profitability != 90 {
		t.Errorf("profitability = %v, want 90", s.Profitability)
	}
	if s.Growth != 50 {
		t.Errorf("growth = %v, want 50", s.Growth)
	}
	if s.FinancialHealth != 80 {
		t.Errorf("financial health = %v, want 80", s.FinancialHealth)
	}
	want := 0.30*50 + 0.25*90 + 0.25*50 + 0.20*80
	if math.Abs(s.Overall-want) > 1e-12 {
		t.Errorf("overall = %v, want %v", s.Overall, want)
	}
}

func TestScore_NegativePE(t *testing.T) {
	f := &model.FundamentalsSnapshot{
		TrailingPE:  ptr(-5),
		PriceToBook: ptr(10),
	}
	s := Score(f)
	if s.Valuation != 50 {
		t.Errorf("valuation = %v, want exactly 50 for non-positive P/E", s.Valuation)
	}
}

func TestScore_EmptySnapshot(t *testing.T) {
	s := Score(&model.FundamentalsSnapshot{})
	// Absent P/E defaults to 0, which is non-positive, so valuation is neutral.
	if s.Valuation != 50 {
		t.Errorf("valuation = %v, want 50", s.Valuation)
	}
	if s.Profitability != 0 {
		t.Errorf("profitability = %v, want 0", s.Profitability)
	}
	if s.Growth != 0 {
		t.Errorf("growth = %v, want 0", s.Growth)
	}
	if s.FinancialHealth != 50 {
		t.Errorf("financial health = %v, want 50", s.FinancialHealth)
	}
	if want := 0.30*50 + 0.20*50; math.Abs(s.Overall-want) > 1e-12 {
		t.Errorf("overall = %v, want %v", s.Overall, want)
	}
}

func TestScore_Clamping(t *testing.T) {
	extremes := []*model.FundamentalsSnapshot{
		{
			TrailingPE:     ptr(1e6),
			PriceToBook:    ptr(1e6),
			ProfitMargin:   ptr(1e6),
			ReturnOnEquity: ptr(1e6),
			RevenueGrowth:  ptr(1e6),
			EarningsGrowth: ptr(1e6),
			CurrentRatio:   ptr(1e6),
			DebtToEquity:   ptr(-1e6),
		},
		{
			TrailingPE:     ptr(0.0001),
			PriceToBook:    ptr(-1e6),
			ProfitMargin:   ptr(-1e6),
			ReturnOnEquity: ptr(-1e6),
			RevenueGrowth:  ptr(-1e6),
			EarningsGrowth: ptr(-1e6),
			CurrentRatio:   ptr(-1e6),
			DebtToEquity:   ptr(1e6),
		},
	}
	for i, f := range extremes {
		s := Score(f)
		for name, v := range map[string]float64{
			"valuation":        s.Valuation,
			"profitability":    s.Profitability,
			"growth":           s.Growth,
			"financial health": s.FinancialHealth,
			"overall":          s.Overall,
		} {
			if v < 0 || v > 100 {
				t.Errorf("snapshot %d: %s = %v out of [0,100]", i, name, v)
			}
		}
	}
}

func TestBuildReport_PresenceFlags(t *testing.T) {
	f := &model.FundamentalsSnapshot{
		Symbol:     "TEST",
		TrailingPE: ptr(22.5),
	}
	r := BuildReport(f)

	var pe, pb model.RatioEntry
	for _, e := range r.Valuation {
		switch e.Label {
		case "Trailing P/E":
			pe = e
		case "Price/Book":
			pb = e
		}
	}
	if !pe.Present || pe.Value != 22.5 {
		t.Errorf("trailing P/E = %+v, want present 22.5", pe)
	}
	if pb.Present || pb.Value != 0 {
		t.Errorf("price/book = %+v, want absent with default 0", pb)
	}

	if len(r.Valuation) != 8 || len(r.Profitability) != 6 || len(r.Growth) != 3 ||
		len(r.FinancialStrength) != 6 || len(r.Efficiency) != 2 || len(r.Dividend) != 4 {
		t.Error("unexpected group sizes")
	}
	if r.Scores.Valuation == 0 && r.Scores.Overall == 0 {
		t.Error("scores should be attached to the report")
	}
}
