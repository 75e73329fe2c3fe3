package domain

import "encoding/json"

// PerformanceMetrics is a derived analytics snapshot. It is fetched fresh
// on each view and never written to persistent storage.
type PerformanceMetrics struct {
	TotalTrades    int     `json:"totalTrades"`
	WinTrades      int     `json:"winTrades"`
	LossTrades     int     `json:"lossTrades"`
	WinRate        float64 `json:"winRate"`
	AverageWin     float64 `json:"averageWin"`
	AverageLoss    float64 `json:"averageLoss"`
	ProfitFactor   float64 `json:"profitFactor"`
	SharpeRatio    float64 `json:"sharpeRatio"`
	MaxDrawdown    float64 `json:"maxDrawdown"`
	RecoveryFactor float64 `json:"recoveryFactor"`
	TotalProfit    float64 `json:"totalProfit"`
	ROI            float64 `json:"roi"`
}

// LogLevel is the severity of a bot log entry.
type LogLevel string

const (
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
	LogLevelDebug   LogLevel = "debug"
)

// BotLog is one server-side log entry. Data is an opaque payload: the
// server imposes no schema on it, so neither do we.
type BotLog struct {
	ID        string          `json:"id"`
	Timestamp int64           `json:"timestamp"`
	Level     LogLevel        `json:"level"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// AIAction is what the AI decided to do for a symbol.
type AIAction string

const (
	AIActionBuy  AIAction = "buy"
	AIActionSell AIAction = "sell"
	AIActionHold AIAction = "hold"
)

// AIPrediction is the direction call behind a decision.
type AIPrediction struct {
	Direction   string  `json:"direction"` // up, down, neutral
	Probability float64 `json:"probability"`
}

// AIFactor is one weighted input to a decision.
type AIFactor struct {
	Name         string  `json:"name"`
	Weight       float64 `json:"weight"`
	Value        float64 `json:"value"`
	Contribution float64 `json:"contribution"`
}

// AIDecisionResult is the realized outcome fed back to the model.
type AIDecisionResult struct {
	Profit   *float64 `json:"profit,omitempty"`
	Loss     *float64 `json:"loss,omitempty"`
	Feedback float64  `json:"feedback"`
}

// AIDecision is one decision the AI engine recorded, executed or not.
type AIDecision struct {
	ID         string            `json:"id"`
	Timestamp  int64             `json:"timestamp"`
	Symbol     string            `json:"symbol"`
	Action     AIAction          `json:"action"`
	Confidence float64           `json:"confidence"` // 0-100
	Prediction AIPrediction      `json:"prediction"`
	Factors    []AIFactor        `json:"factors"`
	Executed   bool              `json:"executed"`
	Result     *AIDecisionResult `json:"result,omitempty"`
}
