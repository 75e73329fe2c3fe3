package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/criptobot/gobot/internal/domain"
	"github.com/criptobot/gobot/internal/ui/styles"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldSecret
	fieldBroker
	fieldFloat
	fieldInt
	fieldBool
)

type settingsField struct {
	label string
	kind  fieldKind
	get   func(*domain.Settings) string
	set   func(*domain.Settings, string) error
}

var brokerOrder = []domain.BrokerType{
	domain.BrokerInteractiveBrokers,
	domain.BrokerBinance,
	domain.BrokerMT5,
	domain.BrokerOther,
}

var settingsFields = []settingsField{
	{"API key", fieldSecret,
		func(s *domain.Settings) string { return s.APIKey },
		func(s *domain.Settings, v string) error { s.APIKey = v; return nil }},
	{"API secret", fieldSecret,
		func(s *domain.Settings) string { return s.APISecret },
		func(s *domain.Settings, v string) error { s.APISecret = v; return nil }},
	{"Broker", fieldBroker,
		func(s *domain.Settings) string { return string(s.BrokerType) },
		nil},
	{"Risk per trade (%)", fieldFloat,
		func(s *domain.Settings) string { return formatFloat(s.RiskPercentage) },
		func(s *domain.Settings, v string) error { return parseFloatInto(v, &s.RiskPercentage) }},
	{"Max drawdown (%)", fieldFloat,
		func(s *domain.Settings) string { return formatFloat(s.MaxDrawdown) },
		func(s *domain.Settings, v string) error { return parseFloatInto(v, &s.MaxDrawdown) }},
	{"Daily loss limit", fieldFloat,
		func(s *domain.Settings) string { return formatFloat(s.DailyLossLimit) },
		func(s *domain.Settings, v string) error { return parseFloatInto(v, &s.DailyLossLimit) }},
	{"Position size", fieldFloat,
		func(s *domain.Settings) string { return formatFloat(s.PositionSize) },
		func(s *domain.Settings, v string) error { return parseFloatInto(v, &s.PositionSize) }},
	{"Notifications", fieldBool,
		func(s *domain.Settings) string { return formatBool(s.EnableNotifications) },
		nil},
	{"Data logging", fieldBool,
		func(s *domain.Settings) string { return formatBool(s.EnableDataLogging) },
		nil},
	{"Update interval (ms)", fieldInt,
		func(s *domain.Settings) string { return strconv.FormatInt(s.UpdateInterval, 10) },
		func(s *domain.Settings, v string) error {
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return err
			}
			s.UpdateInterval = n
			return nil
		}},
}

func (m Model) updateSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.fieldIdx > 0 {
			m.fieldIdx--
		}
	case "down", "j":
		if m.fieldIdx < len(settingsFields)-1 {
			m.fieldIdx++
		}
	case "enter", " ":
		f := settingsFields[m.fieldIdx]
		switch f.kind {
		case fieldBool:
			m.toggleBool(m.fieldIdx)
		case fieldBroker:
			m.draft.BrokerType = nextBroker(m.draft.BrokerType)
		default:
			m.editing = true
			m.editBuf = f.get(&m.draft)
		}
	case "ctrl+s":
		if !m.draftLoaded {
			m.notice = styles.Neutral.Render("Save settings: nothing loaded yet")
			return m, nil
		}
		return m, m.saveSettingsCmd(m.draft)
	}
	return m, nil
}

func (m Model) updateSettingsEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.editBuf = ""
	case "enter":
		f := settingsFields[m.fieldIdx]
		if f.set != nil {
			if err := f.set(&m.draft, m.editBuf); err != nil {
				m.notice = styles.StatusErr.Render("Invalid value for " + f.label)
				return m, nil
			}
		}
		m.editing = false
		m.editBuf = ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.editBuf += string(msg.Runes)
		}
	}
	return m, nil
}

// toggleBool flips the bool field at idx in the draft.
func (m *Model) toggleBool(idx int) {
	switch settingsFields[idx].label {
	case "Notifications":
		m.draft.EnableNotifications = !m.draft.EnableNotifications
	case "Data logging":
		m.draft.EnableDataLogging = !m.draft.EnableDataLogging
	}
}

func nextBroker(b domain.BrokerType) domain.BrokerType {
	for i, candidate := range brokerOrder {
		if candidate == b {
			return brokerOrder[(i+1)%len(brokerOrder)]
		}
	}
	return brokerOrder[0]
}

func (m Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Bot settings"))
	b.WriteString("\n\n")

	if !m.draftLoaded {
		b.WriteString(styles.Label.Render("Fetching settings from the server..."))
		return b.String()
	}

	for i, f := range settingsFields {
		value := f.get(&m.draft)
		if f.kind == fieldSecret && value != "" {
			value = maskSecret(value)
		}
		if m.editing && i == m.fieldIdx {
			value = m.editBuf + "▏"
		}

		line := fmt.Sprintf("%-22s %s", f.label, value)
		if i == m.fieldIdx {
			line = styles.Selected.Render("> " + line)
		} else {
			line = "  " + styles.Label.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	// Unsaved-draft marker: the cache holds the server's record, the form
	// holds the local draft.
	if cached := m.store.Settings(); cached != nil && *cached != m.draft {
		b.WriteString("\n" + styles.Neutral.Render("Unsaved changes — ctrl+s to submit"))
	}
	return b.String()
}

func maskSecret(v string) string {
	if len(v) <= 4 {
		return strings.Repeat("*", len(v))
	}
	return strings.Repeat("*", len(v)-4) + v[len(v)-4:]
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func parseFloatInto(v string, dst *float64) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return err
	}
	*dst = f
	return nil
}
