package notifier

import (
	"fmt"
	"math"
	"strings"

	"StockScope/internal/model"
)

// FormatReport renders a full analysis report as a Telegram HTML message.
func FormatReport(r *model.AnalysisReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n\n", r.Symbol, r.GeneratedAt.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Price: %.2f\n", r.CurrentPrice))

	if s := r.Indicators.Status("MA_Status"); s != "N/A" {
		b.WriteString(s + "\n")
	}
	b.WriteString(fmt.Sprintf("RSI: %s (%s)\n",
		num(r.Indicators.Latest("RSI")), r.Indicators.Status("RSI_Signal")))
	b.WriteString(fmt.Sprintf("MACD: %s\n", r.Indicators.Status("MACD_Signal")))
	b.WriteString(fmt.Sprintf("Volume: %s\n\n", r.Indicators.Status("Volume_Signal")))

	b.WriteString(FormatSignals(r.Signals))
	b.WriteString("\n")
	b.WriteString(FormatRisk(r.Risk, r.Rating))

	if r.Fundamentals != nil {
		b.WriteString("\n")
		b.WriteString(FormatScores(&r.Fundamentals.Scores))
	}
	return b.String()
}

// FormatSignals renders the signal buckets and the overall verdict.
func FormatSignals(s *model.SignalSet) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🎯 <b>Overall: %s</b>\n", s.Overall))
	for _, sig := range s.Bullish {
		b.WriteString("  🟢 " + sig + "\n")
	}
	for _, sig := range s.Bearish {
		b.WriteString("  🔴 " + sig + "\n")
	}
	if len(s.Bullish) == 0 && len(s.Bearish) == 0 {
		b.WriteString("  No active signals\n")
	}
	return b.String()
}

// FormatRisk renders the risk metrics and the rating with its factors.
func FormatRisk(m *model.RiskMetrics, rating *model.RiskRating) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("⚖️ <b>%s</b>\n", rating.Level))
	b.WriteString(fmt.Sprintf("  Annual Volatility: %s\n", pct(m.AnnualVolatility)))
	b.WriteString(fmt.Sprintf("  Sharpe: %s | Sortino: %s\n", num(m.SharpeRatio), num(m.SortinoRatio)))
	b.WriteString(fmt.Sprintf("  Max Drawdown: %s\n", pct(m.MaxDrawdown)))
	b.WriteString(fmt.Sprintf("  VaR 95%%: %s | CVaR 95%%: %s\n", pct(m.VaR95), pct(m.CVaR95)))
	if m.Beta != nil {
		b.WriteString(fmt.Sprintf("  Beta: %.2f\n", *m.Beta))
	} else {
		b.WriteString("  Beta: N/A\n")
	}
	for _, f := range rating.Factors {
		b.WriteString("  • " + f + "\n")
	}
	return b.String()
}

// FormatScores renders the fundamental category scores.
func FormatScores(s *model.FundamentalScores) string {
	var b strings.Builder
	b.WriteString("🏦 <b>Fundamental Scores</b>\n")
	b.WriteString(fmt.Sprintf("  Valuation: %.0f | Profitability: %.0f\n", s.Valuation, s.Profitability))
	b.WriteString(fmt.Sprintf("  Growth: %.0f | Financial Health: %.0f\n", s.Growth, s.FinancialHealth))
	b.WriteString(fmt.Sprintf("  <b>Overall: %.0f / 100</b>\n", s.Overall))
	return b.String()
}

// FormatFundamentals renders every ratio group in full.
func FormatFundamentals(r *model.FundamentalReport) string {
	var b strings.Builder
	b.WriteString("🏦 <b>Fundamentals</b>\n\n")
	groups := []struct {
		title string
		group model.RatioGroup
	}{
		{"Valuation", r.Valuation},
		{"Profitability", r.Profitability},
		{"Growth", r.Growth},
		{"Financial Strength", r.FinancialStrength},
		{"Efficiency", r.Efficiency},
		{"Dividend", r.Dividend},
	}
	for _, g := range groups {
		b.WriteString("<b>" + g.title + "</b>\n")
		for _, e := range g.group {
			if e.Present {
				b.WriteString(fmt.Sprintf("  %s: %.2f\n", e.Label, e.Value))
			} else {
				b.WriteString(fmt.Sprintf("  %s: N/A\n", e.Label))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(FormatScores(&r.Scores))
	return b.String()
}

// FormatSignalFlip renders a flip alert for one symbol.
func FormatSignalFlip(symbol, prev, next string, price float64) string {
	return fmt.Sprintf("🔔 <b>Signal flip: %s</b>\n%s to %s at %.2f", symbol, prev, next, price)
}

func num(v float64) string {
	if math.IsNaN(v) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v)
}

func pct(v float64) string {
	if math.IsNaN(v) {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", v*100)
}
