package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"StockScope/internal/analyzer"
	"StockScope/internal/collector"
	"StockScope/internal/config"
	"StockScope/internal/indicator"
	"StockScope/internal/narrative"
	"StockScope/internal/notifier"
	"StockScope/internal/recorder"
	"StockScope/internal/risk"
	"StockScope/internal/scheduler"
	"StockScope/internal/state"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockScope starting...")

	// Optional .env for local development; a missing file is fine.
	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.Provider == "rest" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy, cfg.Watchlist.MarketSuffix)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector
	col := collector.NewCollector(fetcher, cfg.Watchlist.Benchmark, cfg.Analysis.LookbackDays)

	// Init analyzer
	riskOpts := risk.DefaultOptions()
	riskOpts.RiskFreeRate = cfg.Analysis.RiskFreeRate
	anOpts := []analyzer.Option{analyzer.WithRiskOptions(riskOpts)}
	if cfg.Analysis.FullDetail {
		anOpts = append(anOpts, analyzer.WithIndicatorConfig(indicator.FullDetailConfig()))
	}
	an := analyzer.New(anOpts...)

	// Init state tracker
	tracker, err := state.NewTracker(cfg.State.File)
	if err != nil {
		log.Fatalf("[FATAL] init state tracker: %v", err)
	}

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, an, tracker, tn, rec, cfg.Watchlist.Symbols)
	if cfg.Narrative.Enabled {
		sched.Narrator = narrative.NewWriter(cfg.Narrative.Model, cfg.Narrative.MaxTokens)
		log.Printf("[INFO] narrative enabled: %s", cfg.Narrative.Model)
	}
	if err := sched.RegisterAll(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing daily analysis now")
		go sched.RunNow()
	}

	log.Println("[INFO] StockScope is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockScope stopped")
}
