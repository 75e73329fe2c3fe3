package mockbot

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/criptobot/gobot/internal/domain"
)

func limitParam(c *gin.Context, def int) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func (s *Server) handleBotStatus(c *gin.Context) {
	s.mu.Lock()
	active := s.active
	state := s.state
	startedAt := s.startedAt
	s.mu.Unlock()

	total, wins, _, totalProfit, _, _, err := s.tradeStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	winRate := 0.0
	if total > 0 {
		winRate = float64(wins) / float64(total) * 100
	}
	var uptime int64
	var startMilli int64
	if active {
		uptime = time.Since(startedAt).Milliseconds()
		startMilli = startedAt.UnixMilli()
	}

	const baseBalance = 10000.0
	status := domain.BotStatus{
		ID:                   "mockbot-1",
		Name:                 s.cfg.Name,
		IsActive:             active,
		Status:               state,
		StartTime:            startMilli,
		Uptime:               uptime,
		TotalTrades:          total,
		WinRate:              winRate,
		ProfitLoss:           totalProfit,
		ProfitLossPercentage: totalProfit / baseBalance * 100,
		Balance:              baseBalance + totalProfit,
		Equity:               baseBalance + totalProfit,
		Drawdown:             synthDrawdown(totalProfit),
	}

	trades, err := s.listTrades(c.Request.Context(), 1)
	if err == nil && len(trades) > 0 {
		status.LastTrade = &trades[0]
	}
	c.JSON(http.StatusOK, status)
}

func (s *Server) setState(active bool, state domain.BotState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if active && !s.active {
		s.startedAt = time.Now()
	}
	s.active = active
	s.state = state
}

func (s *Server) handleBotStart(c *gin.Context) {
	s.setState(true, domain.BotStateRunning)
	c.Status(http.StatusOK)
}

func (s *Server) handleBotStop(c *gin.Context) {
	s.setState(false, domain.BotStateStopped)
	c.Status(http.StatusOK)
}

func (s *Server) handleBotPause(c *gin.Context) {
	s.setState(false, domain.BotStatePaused)
	c.Status(http.StatusOK)
}

func (s *Server) handleTradesList(c *gin.Context) {
	trades, err := s.listTrades(c.Request.Context(), limitParam(c, 50))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trades)
}

func (s *Server) handleTradeGet(c *gin.Context) {
	t, err := s.getTrade(c.Request.Context(), c.Param("tradeID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "trade not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) handleTradeClose(c *gin.Context) {
	tradeID := c.Param("tradeID")
	t, err := s.getTrade(c.Request.Context(), tradeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "trade not found"})
		return
	}

	price := synthQuote(t.Symbol, time.Now()).Price
	closed, err := s.closeTrade(c.Request.Context(), tradeID, price)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !closed {
		c.JSON(http.StatusConflict, gin.H{"error": "trade is not open"})
		return
	}
	c.Status(http.StatusOK)
}

func (s *Server) handleMarketData(c *gin.Context) {
	c.JSON(http.StatusOK, synthQuote(c.Param("symbol"), time.Now()))
}

func (s *Server) handleMarketDataMultiple(c *gin.Context) {
	var req struct {
		Symbols []string `json:"symbols"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	now := time.Now()
	out := make([]domain.MarketData, 0, len(req.Symbols))
	for _, sym := range req.Symbols {
		out = append(out, synthQuote(sym, now))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleSettingsGet(c *gin.Context) {
	st, err := s.getSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, st)
}

// handleSettingsUpdate applies a partial update and answers with the full
// resulting record, which is the client's new authoritative copy.
func (s *Server) handleSettingsUpdate(c *gin.Context) {
	var patch domain.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, err := s.getSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	applyPatch(st, patch)
	if err := s.putSettings(c.Request.Context(), *st); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, st)
}

func applyPatch(st *domain.Settings, p domain.SettingsPatch) {
	if p.APIKey != nil {
		st.APIKey = *p.APIKey
	}
	if p.APISecret != nil {
		st.APISecret = *p.APISecret
	}
	if p.BrokerType != nil {
		st.BrokerType = *p.BrokerType
	}
	if p.RiskPercentage != nil {
		st.RiskPercentage = *p.RiskPercentage
	}
	if p.MaxDrawdown != nil {
		st.MaxDrawdown = *p.MaxDrawdown
	}
	if p.DailyLossLimit != nil {
		st.DailyLossLimit = *p.DailyLossLimit
	}
	if p.PositionSize != nil {
		st.PositionSize = *p.PositionSize
	}
	if p.EnableNotifications != nil {
		st.EnableNotifications = *p.EnableNotifications
	}
	if p.EnableDataLogging != nil {
		st.EnableDataLogging = *p.EnableDataLogging
	}
	if p.UpdateInterval != nil {
		st.UpdateInterval = *p.UpdateInterval
	}
}

func (s *Server) handlePerformance(c *gin.Context) {
	total, wins, losses, totalProfit, winSum, lossSum, err := s.tradeStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, buildMetrics(total, wins, losses, totalProfit, winSum, lossSum))
}

func (s *Server) handleLogs(c *gin.Context) {
	c.JSON(http.StatusOK, synthLogs(limitParam(c, 100)))
}

func (s *Server) handleAIDecisions(c *gin.Context) {
	c.JSON(http.StatusOK, synthDecisions(limitParam(c, 50)))
}
