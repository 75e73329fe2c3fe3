// Package ui is the terminal front end: dashboard, trade history,
// analytics, and the settings form, all reading through the shared state
// cache and refetching from the bot server.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/criptobot/gobot/internal/api"
	"github.com/criptobot/gobot/internal/domain"
	"github.com/criptobot/gobot/internal/store"
	"github.com/criptobot/gobot/internal/ui/styles"
)

type screen int

const (
	screenDashboard screen = iota
	screenTrades
	screenAnalytics
	screenSettings
)

var screenNames = []string{"Dashboard", "Trades", "Analytics", "Settings"}

// Model is the bubbletea application state.
type Model struct {
	store   *store.Store
	client  *api.Client
	refresh time.Duration // fallback when settings carry no interval

	screen screen
	width  int
	height int

	healthy bool
	notice  string

	// trades screen
	cursor int

	// analytics screen, fetched fresh on every visit, never cached
	metrics   *domain.PerformanceMetrics
	decisions []domain.AIDecision

	// settings draft
	draft       domain.Settings
	draftLoaded bool
	fieldIdx    int
	editing     bool
	editBuf     string
}

// New builds the initial model. The store should already be hydrated from
// storage so the first frame can show last-known data.
func New(st *store.Store, client *api.Client, refresh time.Duration) Model {
	if refresh <= 0 {
		refresh = 5 * time.Second
	}
	return Model{store: st, client: client, refresh: refresh}
}

func (m Model) refreshInterval() time.Duration {
	if s := m.store.Settings(); s != nil && s.UpdateInterval > 0 {
		return time.Duration(s.UpdateInterval) * time.Millisecond
	}
	return m.refresh
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchStatusCmd(),
		m.fetchTradesCmd(),
		m.fetchSettingsCmd(),
		m.healthCmd(),
		tickCmd(m.refreshInterval()),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.refreshInterval()), m.healthCmd()}
		if m.screen == screenDashboard {
			cmds = append(cmds, m.fetchStatusCmd())
		}
		return m, tea.Batch(cmds...)

	case statusMsg:
		if msg.err != nil {
			m.notice = styles.StatusErr.Render("Status fetch failed: " + msg.err.Error())
			return m, nil
		}
		m.store.SetBotStatus(*msg.status)
		return m, m.persistCmd()

	case tradesMsg:
		if msg.err != nil {
			m.notice = styles.StatusErr.Render("Trades fetch failed: " + msg.err.Error())
			return m, nil
		}
		m.store.SetTrades(msg.trades)
		if m.cursor >= len(msg.trades) {
			m.cursor = 0
		}
		return m, m.persistCmd()

	case settingsMsg:
		if msg.err != nil {
			m.notice = styles.StatusErr.Render("Settings fetch failed: " + msg.err.Error())
			return m, nil
		}
		m.store.SetSettings(*msg.settings)
		if !m.draftLoaded {
			m.draft = *msg.settings
			m.draftLoaded = true
		}
		return m, nil

	case settingsSavedMsg:
		if msg.err != nil {
			m.notice = styles.StatusErr.Render("Save settings failed: " + msg.err.Error())
			return m, nil
		}
		// The server's answer is authoritative: replace draft and cache
		// with the complete record, never merge with the local draft.
		m.store.SetSettings(*msg.settings)
		m.draft = *msg.settings
		m.notice = styles.StatusOK.Render("Save settings: ok")
		return m, m.persistCmd()

	case metricsMsg:
		if msg.err != nil {
			m.notice = styles.StatusErr.Render("Analytics fetch failed: " + msg.err.Error())
			return m, nil
		}
		m.metrics = msg.metrics
		return m, nil

	case decisionsMsg:
		if msg.err != nil {
			m.notice = styles.StatusErr.Render("AI decisions fetch failed: " + msg.err.Error())
			return m, nil
		}
		m.decisions = msg.decisions
		return m, nil

	case actionMsg:
		if msg.err != nil {
			m.notice = styles.StatusErr.Render(msg.action + ": failed (" + msg.err.Error() + ")")
			return m, nil
		}
		m.notice = styles.StatusOK.Render(msg.action + ": ok")
		// Commands are fire-and-forget; the real state comes from a
		// refetch, not from trusting the command response.
		if msg.action == "Close trade" {
			return m, m.fetchTradesCmd()
		}
		return m, m.fetchStatusCmd()

	case healthMsg:
		m.healthy = bool(msg)
		return m, nil

	case persistedMsg:
		return m, nil
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An active settings edit captures everything except its own keys.
	if m.screen == screenSettings && m.editing {
		return m.updateSettingsEdit(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "1", "2", "3", "4":
		return m.switchScreen(screen(int(msg.String()[0] - '1')))

	case "tab":
		return m.switchScreen((m.screen + 1) % 4)

	case "r":
		return m.refetchCurrent()

	case "e":
		m.store.ClearError()
		m.notice = ""
		return m, nil
	}

	switch m.screen {
	case screenDashboard:
		return m.updateDashboardKey(msg)
	case screenTrades:
		return m.updateTradesKey(msg)
	case screenSettings:
		return m.updateSettingsKey(msg)
	}
	return m, nil
}

func (m Model) switchScreen(s screen) (tea.Model, tea.Cmd) {
	m.screen = s
	return m.refetchCurrent()
}

func (m Model) refetchCurrent() (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenDashboard:
		return m, tea.Batch(m.fetchStatusCmd(), m.healthCmd())
	case screenTrades:
		return m, m.fetchTradesCmd()
	case screenAnalytics:
		return m, tea.Batch(m.fetchMetricsCmd(), m.fetchDecisionsCmd())
	case screenSettings:
		return m, m.fetchSettingsCmd()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	switch m.screen {
	case screenDashboard:
		b.WriteString(m.viewDashboard())
	case screenTrades:
		b.WriteString(m.viewTrades())
	case screenAnalytics:
		b.WriteString(m.viewAnalytics())
	case screenSettings:
		b.WriteString(m.viewSettings())
	}

	b.WriteString("\n")
	if err := m.store.Err(); err != "" {
		b.WriteString(styles.StatusErr.Render("storage: "+err) + "  " + styles.Faint.Render("(e to dismiss)"))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n")
	}
	b.WriteString(styles.Faint.Render(m.helpLine()))
	return b.String()
}

func (m Model) viewHeader() string {
	tabs := make([]string, 0, len(screenNames))
	for i, name := range screenNames {
		label := fmt.Sprintf("%d:%s", i+1, name)
		if screen(i) == m.screen {
			tabs = append(tabs, styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, styles.InactiveTab.Render(label))
		}
	}

	health := styles.StatusErr.Render("● offline")
	if m.healthy {
		health = styles.StatusOK.Render("● online")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Header.Render("CriptoBot"), "  ",
		strings.Join(tabs, "  "), "  ", health)
}

func (m Model) helpLine() string {
	switch m.screen {
	case screenDashboard:
		return "s start  x stop  p pause  r refresh  tab screens  q quit"
	case screenTrades:
		return "↑/↓ select  c close trade  r refresh  tab screens  q quit"
	case screenAnalytics:
		return "r refresh  tab screens  q quit"
	case screenSettings:
		return "↑/↓ field  enter edit/toggle  ctrl+s save  r reload  q quit"
	}
	return ""
}
