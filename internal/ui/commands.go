package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/criptobot/gobot/internal/domain"
)

const tradesPageSize = 100

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) fetchStatusCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.client.GetBotStatus(context.Background())
		return statusMsg{status: status, err: err}
	}
}

func (m Model) fetchTradesCmd() tea.Cmd {
	return func() tea.Msg {
		trades, err := m.client.GetTrades(context.Background(), tradesPageSize)
		return tradesMsg{trades: trades, err: err}
	}
}

func (m Model) fetchSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.client.GetSettings(context.Background())
		return settingsMsg{settings: settings, err: err}
	}
}

func (m Model) fetchMetricsCmd() tea.Cmd {
	return func() tea.Msg {
		metrics, err := m.client.GetPerformanceMetrics(context.Background())
		return metricsMsg{metrics: metrics, err: err}
	}
}

func (m Model) fetchDecisionsCmd() tea.Cmd {
	return func() tea.Msg {
		decisions, err := m.client.GetAIDecisions(context.Background(), 0)
		return decisionsMsg{decisions: decisions, err: err}
	}
}

func (m Model) healthCmd() tea.Cmd {
	return func() tea.Msg {
		return healthMsg(m.client.HealthCheck(context.Background()))
	}
}

// botCommandCmd runs one lifecycle command and names it for the notice
// line. The follow-up status refetch happens when the actionMsg lands.
func (m Model) botCommandCmd(action string, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{action: action, err: fn(context.Background())}
	}
}

func (m Model) closeTradeCmd(tradeID string) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{action: "Close trade", err: m.client.CloseTrade(context.Background(), tradeID)}
	}
}

// saveSettingsCmd submits the full draft. The server answers with the
// complete record, which replaces the cached entity wholesale.
func (m Model) saveSettingsCmd(draft domain.Settings) tea.Cmd {
	return func() tea.Msg {
		patch := domain.SettingsPatch{
			APIKey:              &draft.APIKey,
			APISecret:           &draft.APISecret,
			BrokerType:          &draft.BrokerType,
			RiskPercentage:      &draft.RiskPercentage,
			MaxDrawdown:         &draft.MaxDrawdown,
			DailyLossLimit:      &draft.DailyLossLimit,
			PositionSize:        &draft.PositionSize,
			EnableNotifications: &draft.EnableNotifications,
			EnableDataLogging:   &draft.EnableDataLogging,
			UpdateInterval:      &draft.UpdateInterval,
		}
		settings, err := m.client.UpdateSettings(context.Background(), patch)
		return settingsSavedMsg{settings: settings, err: err}
	}
}

// persistCmd mirrors the cache to storage off the UI loop.
func (m Model) persistCmd() tea.Cmd {
	return func() tea.Msg {
		m.store.SaveBotStatus()
		return persistedMsg{}
	}
}
