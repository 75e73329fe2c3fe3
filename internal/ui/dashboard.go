package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/criptobot/gobot/internal/domain"
	"github.com/criptobot/gobot/internal/ui/styles"
)

func (m Model) updateDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		return m, m.botCommandCmd("Start bot", m.client.StartBot)
	case "x":
		return m, m.botCommandCmd("Stop bot", m.client.StopBot)
	case "p":
		return m, m.botCommandCmd("Pause bot", m.client.PauseBot)
	}
	return m, nil
}

func (m Model) viewDashboard() string {
	status := m.store.BotStatus()
	if status == nil {
		if m.store.IsLoading() {
			return styles.Label.Render("Loading saved state...")
		}
		return styles.Label.Render("No bot status yet. Waiting for the server...")
	}

	stateStyle := styles.Label
	switch status.Status {
	case domain.BotStateRunning:
		stateStyle = styles.StatusOK
	case domain.BotStateError:
		stateStyle = styles.StatusErr
	case domain.BotStatePaused:
		stateStyle = styles.Neutral
	}

	head := fmt.Sprintf("%s  %s  uptime %s",
		styles.Title.Render(status.Name),
		stateStyle.Render(strings.ToUpper(string(status.Status))),
		formatUptime(status.Uptime))

	cards := []string{
		statCard("Balance", fmt.Sprintf("$%.2f", status.Balance), styles.Label),
		statCard("Equity", fmt.Sprintf("$%.2f", status.Equity), styles.Label),
		statCard("P&L", fmt.Sprintf("$%.2f (%.2f%%)", status.ProfitLoss, status.ProfitLossPercentage),
			styles.PnL(status.ProfitLoss)),
		statCard("Drawdown", fmt.Sprintf("%.2f%%", status.Drawdown), styles.Down),
		statCard("Win rate", fmt.Sprintf("%.1f%%", status.WinRate), styles.Up),
		statCard("Trades", fmt.Sprintf("%d", status.TotalTrades), styles.Label),
	}
	grid := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2]),
		lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4], cards[5]))

	out := head + "\n\n" + grid
	if status.LastTrade != nil {
		out += "\n" + styles.Label.Render("Last trade: ") + tradeLine(*status.LastTrade, false)
	}
	return out
}

func statCard(label, value string, valueStyle lipgloss.Style) string {
	inner := styles.Faint.Render(label) + "\n" + valueStyle.Render(value)
	return styles.Card.Render(lipgloss.NewStyle().Width(18).Render(inner))
}

func formatUptime(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, m)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}
