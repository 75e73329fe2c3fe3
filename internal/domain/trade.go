package domain

// TradeType is the direction of a trade.
type TradeType string

const (
	TradeTypeBuy  TradeType = "buy"
	TradeTypeSell TradeType = "sell"
)

// TradeStatus is the lifecycle state of a trade.
type TradeStatus string

const (
	TradeStatusOpen      TradeStatus = "open"
	TradeStatusClosed    TradeStatus = "closed"
	TradeStatusCancelled TradeStatus = "cancelled"
)

// Trade is one executed or pending order recorded by the bot. Trades are
// created server-side; the client only lists them and requests closes.
type Trade struct {
	ID               string      `json:"id"`
	Symbol           string      `json:"symbol"`
	Type             TradeType   `json:"type"`
	EntryPrice       float64     `json:"entryPrice"`
	ExitPrice        *float64    `json:"exitPrice,omitempty"`
	Quantity         float64     `json:"quantity"`
	EntryTime        int64       `json:"entryTime"`
	ExitTime         *int64      `json:"exitTime,omitempty"`
	Profit           *float64    `json:"profit,omitempty"`
	ProfitPercentage *float64    `json:"profitPercentage,omitempty"`
	Status           TradeStatus `json:"status"`
	Reason           string      `json:"reason"`     // free text from the AI
	Confidence       float64     `json:"confidence"` // 0-100
	AIModel          string      `json:"aiModel"`
}

// Key returns the trade's id. Uniqueness is not enforced client-side: a
// manual add racing a refetch can leave duplicates in the list.
func (t *Trade) Key() string {
	return t.ID
}
