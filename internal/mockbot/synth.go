package mockbot

import (
	"encoding/json"
	"hash/fnv"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/criptobot/gobot/internal/domain"
)

// Synthesized market data: a per-symbol base price plus a slow sine walk,
// deterministic for a given symbol and minute so repeated quotes look
// consistent.

var basePrices = map[string]float64{
	"BTCUSDT": 64000,
	"ETHUSDT": 3200,
	"SOLUSDT": 145,
}

func symbolBase(symbol string) float64 {
	if p, ok := basePrices[symbol]; ok {
		return p
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(symbol))
	return 10 + float64(h.Sum32()%100000)/100
}

func synthQuote(symbol string, now time.Time) domain.MarketData {
	base := symbolBase(symbol)
	phase := float64(now.Unix()) / 900 // one full wave per ~1.5h
	drift := math.Sin(phase) * 0.01 * base
	price := base + drift
	spread := price * 0.0004

	change := drift - math.Sin(phase-96)*0.01*base // vs ~24h ago
	return domain.MarketData{
		Symbol:              symbol,
		Price:               round2(price),
		Bid:                 round2(price - spread/2),
		Ask:                 round2(price + spread/2),
		Timestamp:           now.UnixMilli(),
		High24h:             round2(base * 1.012),
		Low24h:              round2(base * 0.988),
		Volume24h:           round2(base * 1800),
		Change24h:           round2(change),
		ChangePercentage24h: round2(change / base * 100),
	}
}

func synthDrawdown(totalProfit float64) float64 {
	if totalProfit >= 0 {
		return 2.1
	}
	return round2(2.1 + math.Abs(totalProfit)/100)
}

func buildMetrics(total, wins, losses int, totalProfit, winSum, lossSum float64) domain.PerformanceMetrics {
	m := domain.PerformanceMetrics{
		TotalTrades: total,
		WinTrades:   wins,
		LossTrades:  losses,
		TotalProfit: round2(totalProfit),
		MaxDrawdown: synthDrawdown(totalProfit),
		SharpeRatio: 1.42,
	}
	if total > 0 {
		m.WinRate = round2(float64(wins) / float64(total) * 100)
	}
	if wins > 0 {
		m.AverageWin = round2(winSum / float64(wins))
	}
	if losses > 0 {
		m.AverageLoss = round2(lossSum / float64(losses))
	}
	if lossSum != 0 {
		m.ProfitFactor = round2(winSum / math.Abs(lossSum))
	}
	if m.MaxDrawdown != 0 {
		m.RecoveryFactor = round2(totalProfit / m.MaxDrawdown)
	}
	m.ROI = round2(totalProfit / 10000 * 100)
	return m
}

var logMessages = []struct {
	level domain.LogLevel
	msg   string
}{
	{domain.LogLevelInfo, "strategy cycle completed"},
	{domain.LogLevelDebug, "order book snapshot refreshed"},
	{domain.LogLevelInfo, "position sizing recalculated"},
	{domain.LogLevelWarning, "funding rate above threshold, reducing exposure"},
	{domain.LogLevelInfo, "model inference finished"},
	{domain.LogLevelError, "exchange request throttled, backing off"},
}

func synthLogs(limit int) []domain.BotLog {
	now := time.Now()
	out := make([]domain.BotLog, 0, limit)
	for i := 0; i < limit; i++ {
		entry := logMessages[i%len(logMessages)]
		payload, _ := json.Marshal(map[string]interface{}{"seq": i, "cycle": i / len(logMessages)})
		out = append(out, domain.BotLog{
			ID:        uuid.NewString(),
			Timestamp: now.Add(-time.Duration(i) * 45 * time.Second).UnixMilli(),
			Level:     entry.level,
			Message:   entry.msg,
			Data:      payload,
		})
	}
	return out
}

func synthDecisions(limit int) []domain.AIDecision {
	symbols := []string{"BTCUSDT", "ETHUSDT", "SOLUSDT"}
	actions := []domain.AIAction{domain.AIActionBuy, domain.AIActionHold, domain.AIActionSell, domain.AIActionHold}
	now := time.Now()

	out := make([]domain.AIDecision, 0, limit)
	for i := 0; i < limit; i++ {
		action := actions[i%len(actions)]
		direction := "neutral"
		switch action {
		case domain.AIActionBuy:
			direction = "up"
		case domain.AIActionSell:
			direction = "down"
		}
		confidence := 55 + float64((i*13)%40)
		out = append(out, domain.AIDecision{
			ID:         uuid.NewString(),
			Timestamp:  now.Add(-time.Duration(i) * 3 * time.Minute).UnixMilli(),
			Symbol:     symbols[i%len(symbols)],
			Action:     action,
			Confidence: confidence,
			Prediction: domain.AIPrediction{
				Direction:   direction,
				Probability: round2(confidence / 100),
			},
			Factors: []domain.AIFactor{
				{Name: "momentum", Weight: 0.4, Value: round2(confidence / 100), Contribution: 0.31},
				{Name: "order-flow", Weight: 0.35, Value: 0.52, Contribution: 0.18},
				{Name: "sentiment", Weight: 0.25, Value: 0.47, Contribution: 0.12},
			},
			Executed: action != domain.AIActionHold,
		})
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
