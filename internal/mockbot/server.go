// Package mockbot is a development stand-in for the remote trading bot
// server: it serves the full /api surface the console consumes, backed by
// sqlite so trades and settings survive restarts.
package mockbot

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"

	"github.com/criptobot/gobot/internal/domain"
)

// Config for the mock server.
type Config struct {
	DBPath string
	Name   string // bot display name
}

// Server implements the bot API over gin + sqlite.
type Server struct {
	cfg Config
	db  *sql.DB

	mu        sync.Mutex
	active    bool
	state     domain.BotState
	startedAt time.Time
}

// New opens the database, migrates it, and seeds it on first run.
func New(cfg Config) (*Server, error) {
	if cfg.DBPath == "" {
		return nil, errors.New("db path is required")
	}
	if cfg.Name == "" {
		cfg.Name = "CriptoBot"
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite: single connection is the stable setup
	db.SetMaxIdleConns(1)

	s := &Server{cfg: cfg, db: db, state: domain.BotStateStopped}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := s.seed(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Server) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Server) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS trades (
			id TEXT PRIMARY KEY,
			symbol TEXT NOT NULL,
			type TEXT NOT NULL,
			entry_price REAL NOT NULL,
			exit_price REAL,
			quantity REAL NOT NULL,
			entry_time INTEGER NOT NULL,
			exit_time INTEGER,
			profit REAL,
			profit_pct REAL,
			status TEXT NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			confidence REAL NOT NULL DEFAULT 0,
			ai_model TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_entry_time ON trades(entry_time DESC)`,
		`CREATE TABLE IF NOT EXISTS settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			api_key TEXT NOT NULL DEFAULT '',
			api_secret TEXT NOT NULL DEFAULT '',
			broker_type TEXT NOT NULL DEFAULT 'binance',
			risk_pct REAL NOT NULL DEFAULT 2,
			max_drawdown REAL NOT NULL DEFAULT 10,
			daily_loss_limit REAL NOT NULL DEFAULT 500,
			position_size REAL NOT NULL DEFAULT 0.1,
			notifications INTEGER NOT NULL DEFAULT 1,
			data_logging INTEGER NOT NULL DEFAULT 1,
			update_interval INTEGER NOT NULL DEFAULT 5000
		)`,
		`INSERT OR IGNORE INTO settings (id) VALUES (1)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Router builds the gin handler for the /api surface.
func (s *Server) Router() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")

	bot := api.Group("/bot")
	bot.GET("/status", s.handleBotStatus)
	bot.POST("/start", s.handleBotStart)
	bot.POST("/stop", s.handleBotStop)
	bot.POST("/pause", s.handleBotPause)

	api.GET("/trades", s.handleTradesList)
	api.GET("/trades/:tradeID", s.handleTradeGet)
	api.POST("/trades/:tradeID/close", s.handleTradeClose)

	api.GET("/market/:symbol", s.handleMarketData)
	api.POST("/market/multiple", s.handleMarketDataMultiple)

	api.GET("/settings", s.handleSettingsGet)
	api.PUT("/settings", s.handleSettingsUpdate)

	api.GET("/performance", s.handlePerformance)
	api.GET("/logs", s.handleLogs)
	api.GET("/ai/decisions", s.handleAIDecisions)

	api.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	return r
}
