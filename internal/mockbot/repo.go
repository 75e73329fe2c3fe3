package mockbot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/criptobot/gobot/internal/domain"
)

const tradeColumns = `id,symbol,type,entry_price,exit_price,quantity,entry_time,exit_time,profit,profit_pct,status,reason,confidence,ai_model`

func (s *Server) insertTrade(ctx context.Context, t domain.Trade) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO trades (`+tradeColumns+`)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)
`, t.ID, t.Symbol, t.Type, t.EntryPrice, t.ExitPrice, t.Quantity, t.EntryTime,
		t.ExitTime, t.Profit, t.ProfitPercentage, t.Status, t.Reason, t.Confidence, t.AIModel)
	if err != nil {
		return fmt.Errorf("insert trade: %w", err)
	}
	return nil
}

// scanTrade reads one row selected with tradeColumns; the Scan targets
// below must stay in that column order.
func scanTrade(row interface{ Scan(...interface{}) error }) (*domain.Trade, error) {
	var t domain.Trade
	var exitPrice, profit, profitPct sql.NullFloat64
	var exitTime sql.NullInt64
	err := row.Scan(&t.ID, &t.Symbol, &t.Type, &t.EntryPrice, &exitPrice, &t.Quantity,
		&t.EntryTime, &exitTime, &profit, &profitPct, &t.Status, &t.Reason, &t.Confidence, &t.AIModel)
	if err != nil {
		return nil, err
	}
	if exitPrice.Valid {
		t.ExitPrice = &exitPrice.Float64
	}
	if exitTime.Valid {
		t.ExitTime = &exitTime.Int64
	}
	if profit.Valid {
		t.Profit = &profit.Float64
	}
	if profitPct.Valid {
		t.ProfitPercentage = &profitPct.Float64
	}
	return &t, nil
}

func (s *Server) listTrades(ctx context.Context, limit int) ([]domain.Trade, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT `+tradeColumns+` FROM trades ORDER BY entry_time DESC LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Trade, 0, limit)
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (s *Server) getTrade(ctx context.Context, tradeID string) (*domain.Trade, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT `+tradeColumns+` FROM trades WHERE id=?
`, tradeID)
	t, err := scanTrade(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return t, err
}

// closeTrade marks an open trade closed at price, computing its P&L.
func (s *Server) closeTrade(ctx context.Context, tradeID string, price float64) (bool, error) {
	t, err := s.getTrade(ctx, tradeID)
	if err != nil || t == nil {
		return false, err
	}
	if t.Status != domain.TradeStatusOpen {
		return false, nil
	}

	profit := (price - t.EntryPrice) * t.Quantity
	if t.Type == domain.TradeTypeSell {
		profit = -profit
	}
	profitPct := 0.0
	if t.EntryPrice != 0 {
		profitPct = profit / (t.EntryPrice * t.Quantity) * 100
	}
	now := time.Now().UnixMilli()

	_, err = s.db.ExecContext(ctx, `
UPDATE trades SET status=?, exit_price=?, exit_time=?, profit=?, profit_pct=? WHERE id=?
`, domain.TradeStatusClosed, price, now, profit, profitPct, tradeID)
	if err != nil {
		return false, fmt.Errorf("close trade: %w", err)
	}
	return true, nil
}

func (s *Server) tradeStats(ctx context.Context) (total, wins, losses int, totalProfit, winSum, lossSum float64, err error) {
	row := s.db.QueryRowContext(ctx, `
SELECT COUNT(*),
       COALESCE(SUM(CASE WHEN profit > 0 THEN 1 ELSE 0 END), 0),
       COALESCE(SUM(CASE WHEN profit < 0 THEN 1 ELSE 0 END), 0),
       COALESCE(SUM(profit), 0),
       COALESCE(SUM(CASE WHEN profit > 0 THEN profit ELSE 0 END), 0),
       COALESCE(SUM(CASE WHEN profit < 0 THEN profit ELSE 0 END), 0)
FROM trades WHERE status='closed'
`)
	err = row.Scan(&total, &wins, &losses, &totalProfit, &winSum, &lossSum)
	return
}

func (s *Server) getSettings(ctx context.Context) (*domain.Settings, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT api_key,api_secret,broker_type,risk_pct,max_drawdown,daily_loss_limit,
       position_size,notifications,data_logging,update_interval
FROM settings WHERE id=1
`)
	var st domain.Settings
	var notifications, dataLogging int
	err := row.Scan(&st.APIKey, &st.APISecret, &st.BrokerType, &st.RiskPercentage,
		&st.MaxDrawdown, &st.DailyLossLimit, &st.PositionSize,
		&notifications, &dataLogging, &st.UpdateInterval)
	if err != nil {
		return nil, err
	}
	st.EnableNotifications = notifications != 0
	st.EnableDataLogging = dataLogging != 0
	return &st, nil
}

func (s *Server) putSettings(ctx context.Context, st domain.Settings) error {
	_, err := s.db.ExecContext(ctx, `
UPDATE settings SET api_key=?, api_secret=?, broker_type=?, risk_pct=?, max_drawdown=?,
       daily_loss_limit=?, position_size=?, notifications=?, data_logging=?, update_interval=?
WHERE id=1
`, st.APIKey, st.APISecret, st.BrokerType, st.RiskPercentage, st.MaxDrawdown,
		st.DailyLossLimit, st.PositionSize, boolToInt(st.EnableNotifications),
		boolToInt(st.EnableDataLogging), st.UpdateInterval)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// seed populates a fresh database with a plausible trade history.
func (s *Server) seed() error {
	ctx := context.Background()
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trades`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	for i, row := range seedTrades {
		entry := now.Add(-time.Duration(len(seedTrades)-i) * 37 * time.Minute)
		t := domain.Trade{
			ID:         uuid.NewString(),
			Symbol:     row.symbol,
			Type:       row.side,
			EntryPrice: row.entry,
			Quantity:   row.qty,
			EntryTime:  entry.UnixMilli(),
			Status:     row.status,
			Reason:     row.reason,
			Confidence: row.confidence,
			AIModel:    "prophet-v2.3",
		}
		if row.status == domain.TradeStatusClosed {
			exit := row.entry * (1 + row.movePct/100)
			profit := (exit - row.entry) * row.qty
			pct := row.movePct
			if row.side == domain.TradeTypeSell {
				profit = -profit
				pct = -pct
			}
			exitTime := entry.Add(25 * time.Minute).UnixMilli()
			t.ExitPrice = &exit
			t.ExitTime = &exitTime
			t.Profit = &profit
			t.ProfitPercentage = &pct
		}
		if err := s.insertTrade(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

type seedTrade struct {
	symbol     string
	side       domain.TradeType
	entry      float64
	qty        float64
	status     domain.TradeStatus
	movePct    float64
	confidence float64
	reason     string
}

var seedTrades = []seedTrade{
	{"BTCUSDT", domain.TradeTypeBuy, 64120.50, 0.05, domain.TradeStatusClosed, 1.8, 82, "momentum breakout above 4h resistance"},
	{"ETHUSDT", domain.TradeTypeBuy, 3180.25, 0.8, domain.TradeStatusClosed, -0.9, 64, "oversold bounce setup"},
	{"BTCUSDT", domain.TradeTypeSell, 65480.00, 0.04, domain.TradeStatusClosed, -1.2, 71, "rejection at range high"},
	{"SOLUSDT", domain.TradeTypeBuy, 142.80, 12, domain.TradeStatusClosed, 3.4, 88, "volume surge with funding reset"},
	{"ETHUSDT", domain.TradeTypeSell, 3305.10, 0.6, domain.TradeStatusCancelled, 0, 55, "signal invalidated before fill"},
	{"BTCUSDT", domain.TradeTypeBuy, 63890.00, 0.06, domain.TradeStatusOpen, 0, 77, "higher-low structure intact"},
	{"SOLUSDT", domain.TradeTypeBuy, 147.15, 10, domain.TradeStatusOpen, 0, 69, "pullback to breakout level"},
}
