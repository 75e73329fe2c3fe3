package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/criptobot/gobot/internal/domain"
	"github.com/criptobot/gobot/internal/ui/styles"
)

const decisionsVisible = 8

func (m Model) viewAnalytics() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Performance"))
	b.WriteString("\n\n")

	if m.metrics == nil {
		b.WriteString(styles.Label.Render("Fetching analytics..."))
	} else {
		p := m.metrics
		rows := [][2]string{
			{"Total trades", fmt.Sprintf("%d (%d W / %d L)", p.TotalTrades, p.WinTrades, p.LossTrades)},
			{"Win rate", fmt.Sprintf("%.1f%%", p.WinRate)},
			{"Avg win / loss", fmt.Sprintf("%.2f / %.2f", p.AverageWin, p.AverageLoss)},
			{"Profit factor", fmt.Sprintf("%.2f", p.ProfitFactor)},
			{"Sharpe ratio", fmt.Sprintf("%.2f", p.SharpeRatio)},
			{"Max drawdown", fmt.Sprintf("%.2f%%", p.MaxDrawdown)},
			{"Recovery factor", fmt.Sprintf("%.2f", p.RecoveryFactor)},
			{"Total profit", fmt.Sprintf("$%.2f", p.TotalProfit)},
			{"ROI", fmt.Sprintf("%.2f%%", p.ROI)},
		}
		var left, right strings.Builder
		for i, r := range rows {
			dst := &left
			if i >= (len(rows)+1)/2 {
				dst = &right
			}
			fmt.Fprintf(dst, "%s %s\n", styles.Faint.Render(fmt.Sprintf("%-16s", r[0])), r[1])
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			styles.Card.Render(left.String()), styles.Card.Render(right.String())))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.Title.Render("Recent AI decisions"))
	b.WriteString("\n\n")

	if len(m.decisions) == 0 {
		b.WriteString(styles.Label.Render("No decisions recorded."))
		return b.String()
	}

	count := len(m.decisions)
	if count > decisionsVisible {
		count = decisionsVisible
	}
	for _, d := range m.decisions[:count] {
		b.WriteString(decisionLine(d))
		b.WriteString("\n")
	}
	return b.String()
}

func decisionLine(d domain.AIDecision) string {
	var action string
	switch d.Action {
	case domain.AIActionBuy:
		action = styles.Up.Render("BUY ")
	case domain.AIActionSell:
		action = styles.Down.Render("SELL")
	default:
		action = styles.Neutral.Render("HOLD")
	}

	executed := styles.Faint.Render("skipped")
	if d.Executed {
		executed = styles.Label.Render("executed")
	}

	when := time.UnixMilli(d.Timestamp).Format("01-02 15:04")
	return fmt.Sprintf("%s %-10s conf %5.1f%%  %s/%.0f%%  %s  %s",
		action, d.Symbol, d.Confidence,
		d.Prediction.Direction, d.Prediction.Probability*100,
		executed, styles.Faint.Render(when))
}
