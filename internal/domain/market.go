package domain

// MarketData is a single-symbol quote snapshot.
type MarketData struct {
	Symbol              string  `json:"symbol"`
	Price               float64 `json:"price"`
	Bid                 float64 `json:"bid"`
	Ask                 float64 `json:"ask"`
	Timestamp           int64   `json:"timestamp"`
	High24h             float64 `json:"high24h"`
	Low24h              float64 `json:"low24h"`
	Volume24h           float64 `json:"volume24h"`
	Change24h           float64 `json:"change24h"`
	ChangePercentage24h float64 `json:"changePercentage24h"`
}

// Position is an open holding inside a portfolio snapshot.
type Position struct {
	Symbol           string  `json:"symbol"`
	Quantity         float64 `json:"quantity"`
	EntryPrice       float64 `json:"entryPrice"`
	CurrentPrice     float64 `json:"currentPrice"`
	Profit           float64 `json:"profit"`
	ProfitPercentage float64 `json:"profitPercentage"`
}

// Portfolio is the account-level view the bot reports.
type Portfolio struct {
	TotalBalance float64    `json:"totalBalance"`
	TotalEquity  float64    `json:"totalEquity"`
	UsedMargin   float64    `json:"usedMargin"`
	FreeMargin   float64    `json:"freeMargin"`
	MarginLevel  float64    `json:"marginLevel"`
	Positions    []Position `json:"positions"`
	OpenTrades   []Trade    `json:"openTrades"`
}
