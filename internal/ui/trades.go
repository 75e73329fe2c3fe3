package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/criptobot/gobot/internal/domain"
	"github.com/criptobot/gobot/internal/ui/styles"
)

const tradesVisible = 15

func (m Model) updateTradesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	trades := m.store.Trades()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(trades)-1 {
			m.cursor++
		}
	case "c":
		if m.cursor < len(trades) {
			t := trades[m.cursor]
			if t.Status == domain.TradeStatusOpen {
				return m, m.closeTradeCmd(t.ID)
			}
			m.notice = styles.Neutral.Render("Close trade: trade is not open")
		}
	}
	return m, nil
}

func (m Model) viewTrades() string {
	trades := m.store.Trades()
	if len(trades) == 0 {
		return styles.Label.Render("No trades yet.")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(fmt.Sprintf("Trades (%d, newest first)", len(trades))))
	b.WriteString("\n\n")

	start := 0
	if m.cursor >= tradesVisible {
		start = m.cursor - tradesVisible + 1
	}
	end := start + tradesVisible
	if end > len(trades) {
		end = len(trades)
	}

	for i := start; i < end; i++ {
		line := tradeLine(trades[i], true)
		if i == m.cursor {
			line = styles.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if end < len(trades) {
		b.WriteString(styles.Faint.Render(fmt.Sprintf("  ... %d more", len(trades)-end)))
	}
	return b.String()
}

func tradeLine(t domain.Trade, withMeta bool) string {
	dir := styles.Up.Render("BUY ")
	if t.Type == domain.TradeTypeSell {
		dir = styles.Down.Render("SELL")
	}

	profit := styles.Faint.Render("open")
	if t.Profit != nil {
		pct := 0.0
		if t.ProfitPercentage != nil {
			pct = *t.ProfitPercentage
		}
		profit = styles.PnL(*t.Profit).Render(fmt.Sprintf("%+.2f (%.2f%%)", *t.Profit, pct))
	}

	line := fmt.Sprintf("%s %-10s %8.2f x%-8.4f %s %s",
		dir, t.Symbol, t.EntryPrice, t.Quantity, statusBadge(t.Status), profit)
	if withMeta {
		when := time.UnixMilli(t.EntryTime).Format("01-02 15:04")
		line += styles.Faint.Render(fmt.Sprintf("  %s  %s %.0f%%", when, t.AIModel, t.Confidence))
	}
	return line
}

func statusBadge(s domain.TradeStatus) string {
	switch s {
	case domain.TradeStatusOpen:
		return styles.Neutral.Render("[open]")
	case domain.TradeStatusClosed:
		return styles.Label.Render("[closed]")
	default:
		return styles.Faint.Render("[cancelled]")
	}
}
