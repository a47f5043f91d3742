package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Watchlist.Benchmark != "SPY" {
		t.Errorf("benchmark = %q, want SPY", cfg.Watchlist.Benchmark)
	}
	if cfg.Analysis.RiskFreeRate != 0.02 {
		t.Errorf("risk free rate = %v, want 0.02", cfg.Analysis.RiskFreeRate)
	}
	if cfg.Analysis.LookbackDays != 365 {
		t.Errorf("lookback = %d, want 365", cfg.Analysis.LookbackDays)
	}
	if cfg.DataSource.Provider != "yahoo" {
		t.Errorf("provider = %q, want yahoo", cfg.DataSource.Provider)
	}
	if cfg.Schedule.DailyCron == "" {
		t.Error("daily cron should have a default")
	}
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
watchlist:
  symbols: [AAPL, MSFT]
  benchmark: QQQ
analysis:
  risk_free_rate: 0.03
data_source:
  base_url: http://localhost:9000
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BENCHMARK_SYMBOL", "IWM")
	t.Setenv("WATCHLIST_SYMBOLS", "NVDA, AMD")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// Env wins over file.
	if cfg.Watchlist.Benchmark != "IWM" {
		t.Errorf("benchmark = %q, want IWM", cfg.Watchlist.Benchmark)
	}
	if len(cfg.Watchlist.Symbols) != 2 || cfg.Watchlist.Symbols[0] != "NVDA" || cfg.Watchlist.Symbols[1] != "AMD" {
		t.Errorf("symbols = %v", cfg.Watchlist.Symbols)
	}
	// File values survive where no env is set.
	if cfg.Analysis.RiskFreeRate != 0.03 {
		t.Errorf("risk free rate = %v, want 0.03", cfg.Analysis.RiskFreeRate)
	}
	// base_url implies the rest provider.
	if cfg.DataSource.Provider != "rest" {
		t.Errorf("provider = %q, want rest", cfg.DataSource.Provider)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.Watchlist.Symbols = []string{"AAPL"}
		cfg.Telegram.BotToken = "token"
		cfg.Telegram.ChatID = "chat"
		cfg.DataSource.Provider = "yahoo"
		cfg.Analysis.RiskFreeRate = 0.02
		return cfg
	}

	if err := base().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no symbols", func(c *Config) { c.Watchlist.Symbols = nil }},
		{"no bot token", func(c *Config) { c.Telegram.BotToken = "" }},
		{"no chat id", func(c *Config) { c.Telegram.ChatID = "" }},
		{"rest without base url", func(c *Config) { c.DataSource.Provider = "rest" }},
		{"bad risk free rate", func(c *Config) { c.Analysis.RiskFreeRate = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
