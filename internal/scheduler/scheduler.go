package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"StockScope/internal/analyzer"
	"StockScope/internal/collector"
	"StockScope/internal/model"
	"StockScope/internal/narrative"
	"StockScope/internal/notifier"
	"StockScope/internal/recorder"
	"StockScope/internal/state"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the daily analysis cycle and serves on-demand commands.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Analyzer  *analyzer.Analyzer
	Tracker   *state.Tracker
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Narrator  *narrative.Writer // nil when narrative is disabled
	Symbols   []string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, an *analyzer.Analyzer, tr *state.Tracker, tn *notifier.TelegramNotifier, rec recorder.Recorder, symbols []string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Analyzer:  an,
		Tracker:   tr,
		Notifier:  tn,
		Recorder:  rec,
		Symbols:   symbols,
		Ctx:       ctx,
	}
}

// RegisterAll registers the daily analysis task.
func (s *Scheduler) RegisterAll(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the daily task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily analysis")
	for _, symbol := range s.Symbols {
		report, err := s.analyze(symbol)
		if err != nil {
			log.Printf("[ERROR] analyze %s: %v", symbol, err)
			s.trySend(fmt.Sprintf("❌ Analysis failed for %s: %v", symbol, err))
			continue
		}

		msg := notifier.FormatReport(report)
		if s.Narrator != nil {
			if commentary, err := s.Narrator.Commentary(s.Ctx, report); err != nil {
				log.Printf("[WARN] narrative for %s: %v", symbol, err)
			} else {
				msg += "\n💬 " + commentary
			}
		}
		s.trySend(msg)

		s.record(report)
	}
}

// analyze runs the full pipeline for one symbol.
func (s *Scheduler) analyze(symbol string) (*model.AnalysisReport, error) {
	bundle, err := s.Collector.Collect(symbol)
	if err != nil {
		return nil, err
	}
	return s.Analyzer.Analyze(analyzer.Input{
		Series:       bundle.Series,
		Benchmark:    bundle.Benchmark,
		Fundamentals: bundle.Fundamentals,
	}), nil
}

// record persists the snapshot and, on a signal flip, the event plus an alert.
func (s *Scheduler) record(report *model.AnalysisReport) {
	prev, _ := s.Tracker.Get(report.Symbol)
	flipped := s.Tracker.Update(report)

	if err := s.Recorder.RecordSnapshot(report); err != nil {
		log.Printf("[ERROR] record snapshot for %s: %v", report.Symbol, err)
	}
	if flipped {
		newSignal := string(report.Signals.Overall)
		if err := s.Recorder.RecordSignalEvent(&recorder.SignalEvent{
			Symbol:     report.Symbol,
			PrevSignal: prev.LastSignal,
			NewSignal:  newSignal,
			RiskLevel:  string(report.Rating.Level),
			Price:      report.CurrentPrice,
		}); err != nil {
			log.Printf("[ERROR] record signal event for %s: %v", report.Symbol, err)
		}
		s.trySend(notifier.FormatSignalFlip(report.Symbol, prev.LastSignal, newSignal, report.CurrentPrice))
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return s.helpText()
	}

	symbol := ""
	if len(fields) > 1 {
		symbol = strings.ToUpper(fields[1])
	} else if len(s.Symbols) > 0 {
		symbol = s.Symbols[0]
	}

	switch fields[0] {
	case "/analyze":
		report, err := s.analyze(symbol)
		if err != nil {
			return fmt.Sprintf("Analysis failed for %s: %v", symbol, err)
		}
		s.record(report)
		return notifier.FormatReport(report)
	case "/risk":
		report, err := s.analyze(symbol)
		if err != nil {
			return fmt.Sprintf("Analysis failed for %s: %v", symbol, err)
		}
		return fmt.Sprintf("📊 <b>%s</b>\n\n%s", symbol, notifier.FormatRisk(report.Risk, report.Rating))
	case "/signals":
		report, err := s.analyze(symbol)
		if err != nil {
			return fmt.Sprintf("Analysis failed for %s: %v", symbol, err)
		}
		return fmt.Sprintf("📊 <b>%s</b>\n\n%s", symbol, notifier.FormatSignals(report.Signals))
	case "/fundamentals":
		report, err := s.analyze(symbol)
		if err != nil {
			return fmt.Sprintf("Analysis failed for %s: %v", symbol, err)
		}
		if report.Fundamentals == nil {
			return fmt.Sprintf("No fundamentals available for %s", symbol)
		}
		return notifier.FormatFundamentals(report.Fundamentals)
	default:
		return s.helpText()
	}
}

func (s *Scheduler) helpText() string {
	return "Commands:\n" +
		"• /analyze [SYMBOL]: full report\n" +
		"• /risk [SYMBOL]: risk metrics and rating\n" +
		"• /signals [SYMBOL]: signal breakdown\n" +
		"• /fundamentals [SYMBOL]: fundamental ratios and scores"
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
