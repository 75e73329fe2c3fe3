package ui

import (
	"time"

	"github.com/criptobot/gobot/internal/domain"
)

// tickMsg drives the dashboard auto-refresh.
type tickMsg time.Time

// statusMsg carries a status fetch result.
type statusMsg struct {
	status *domain.BotStatus
	err    error
}

// tradesMsg carries a trade list refetch result.
type tradesMsg struct {
	trades []domain.Trade
	err    error
}

// settingsMsg carries a settings fetch result.
type settingsMsg struct {
	settings *domain.Settings
	err      error
}

// settingsSavedMsg carries the server's authoritative settings after an
// update, or the failure.
type settingsSavedMsg struct {
	settings *domain.Settings
	err      error
}

// metricsMsg carries an analytics fetch result.
type metricsMsg struct {
	metrics *domain.PerformanceMetrics
	err     error
}

// decisionsMsg carries an AI decision list fetch result.
type decisionsMsg struct {
	decisions []domain.AIDecision
	err       error
}

// actionMsg reports the outcome of a user-triggered command. action is the
// plain-language name shown in the notice line.
type actionMsg struct {
	action string
	err    error
}

// healthMsg carries the health probe result.
type healthMsg bool

// persistedMsg signals that a background save finished.
type persistedMsg struct{}
