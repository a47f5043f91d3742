package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockScope/internal/model"
)

// SQLiteRecorder persists analysis history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read while
	// the scheduler writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_snapshots (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp         INTEGER NOT NULL,
			symbol            TEXT NOT NULL,
			price             REAL,
			sma_50            REAL,
			sma_200           REAL,
			rsi               REAL,
			macd_hist         REAL,
			annual_volatility REAL,
			sharpe_ratio      REAL,
			max_drawdown      REAL,
			beta              REAL,
			overall_signal    TEXT,
			risk_level        TEXT,
			fundamental_score REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_symbol_ts ON analysis_snapshots(symbol, timestamp)`,

		`CREATE TABLE IF NOT EXISTS signal_events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			symbol      TEXT NOT NULL,
			prev_signal TEXT,
			new_signal  TEXT,
			risk_level  TEXT,
			price       REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_symbol_ts ON signal_events(symbol, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSnapshot(report *model.AnalysisReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var fundScore sql.NullFloat64
	if report.Fundamentals != nil {
		fundScore = sql.NullFloat64{Float64: report.Fundamentals.Scores.Overall, Valid: true}
	}
	var beta sql.NullFloat64
	if report.Risk.Beta != nil {
		beta = sql.NullFloat64{Float64: *report.Risk.Beta, Valid: true}
	}

	_, err := r.db.Exec(`INSERT INTO analysis_snapshots
		(timestamp, symbol, price, sma_50, sma_200, rsi, macd_hist,
		 annual_volatility, sharpe_ratio, max_drawdown, beta,
		 overall_signal, risk_level, fundamental_score)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		report.GeneratedAt.Unix(), report.Symbol, report.CurrentPrice,
		nullable(report.Indicators.Latest("SMA_50")),
		nullable(report.Indicators.Latest("SMA_200")),
		nullable(report.Indicators.Latest("RSI")),
		nullable(report.Indicators.Latest("MACD_hist")),
		nullable(report.Risk.AnnualVolatility),
		nullable(report.Risk.SharpeRatio),
		nullable(report.Risk.MaxDrawdown),
		beta,
		string(report.Signals.Overall), string(report.Rating.Level),
		fundScore,
	)
	return err
}

func (r *SQLiteRecorder) RecordSignalEvent(evt *SignalEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO signal_events
		(timestamp, symbol, prev_signal, new_signal, risk_level, price)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Symbol, evt.PrevSignal, evt.NewSignal,
		evt.RiskLevel, evt.Price,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

// nullable maps the NaN "missing" marker to SQL NULL so queries can filter on
// populated values.
func nullable(v float64) sql.NullFloat64 {
	if math.IsNaN(v) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}
