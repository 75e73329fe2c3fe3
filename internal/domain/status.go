package domain

// BotState is the lifecycle state reported by the remote bot.
type BotState string

const (
	BotStateRunning BotState = "running"
	BotStateStopped BotState = "stopped"
	BotStatePaused  BotState = "paused"
	BotStateError   BotState = "error"
)

// BotStatus is a snapshot of the bot's run state. The server replaces it
// wholesale on every status fetch; the client never merges fields.
type BotStatus struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	IsActive             bool     `json:"isActive"`
	Status               BotState `json:"status"`
	StartTime            int64    `json:"startTime"`
	Uptime               int64    `json:"uptime"` // milliseconds
	TotalTrades          int      `json:"totalTrades"`
	WinRate              float64  `json:"winRate"` // percent
	ProfitLoss           float64  `json:"profitLoss"`
	ProfitLossPercentage float64  `json:"profitLossPercentage"`
	Balance              float64  `json:"balance"`
	Equity               float64  `json:"equity"`
	Drawdown             float64  `json:"drawdown"`
	LastTrade            *Trade   `json:"lastTrade,omitempty"`
}
