package domain

// BrokerType identifies the broker the bot trades through.
type BrokerType string

const (
	BrokerInteractiveBrokers BrokerType = "interactive-brokers"
	BrokerBinance            BrokerType = "binance"
	BrokerMT5                BrokerType = "mt5"
	BrokerOther              BrokerType = "other"
)

// Settings is the bot configuration. The server is the source of truth:
// the client edits a local draft, submits it, and replaces the draft with
// the server's authoritative response.
type Settings struct {
	APIKey              string     `json:"apiKey"`
	APISecret           string     `json:"apiSecret"`
	BrokerType          BrokerType `json:"brokerType"`
	RiskPercentage      float64    `json:"riskPercentage"`
	MaxDrawdown         float64    `json:"maxDrawdown"`
	DailyLossLimit      float64    `json:"dailyLossLimit"`
	PositionSize        float64    `json:"positionSize"`
	EnableNotifications bool       `json:"enableNotifications"`
	EnableDataLogging   bool       `json:"enableDataLogging"`
	UpdateInterval      int64      `json:"updateInterval"` // milliseconds
}

// SettingsPatch is a partial settings update. Only non-nil fields are
// serialized, so a PUT carries exactly the fields the caller set.
type SettingsPatch struct {
	APIKey              *string     `json:"apiKey,omitempty"`
	APISecret           *string     `json:"apiSecret,omitempty"`
	BrokerType          *BrokerType `json:"brokerType,omitempty"`
	RiskPercentage      *float64    `json:"riskPercentage,omitempty"`
	MaxDrawdown         *float64    `json:"maxDrawdown,omitempty"`
	DailyLossLimit      *float64    `json:"dailyLossLimit,omitempty"`
	PositionSize        *float64    `json:"positionSize,omitempty"`
	EnableNotifications *bool       `json:"enableNotifications,omitempty"`
	EnableDataLogging   *bool       `json:"enableDataLogging,omitempty"`
	UpdateInterval      *int64      `json:"updateInterval,omitempty"`
}
